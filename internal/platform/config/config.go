package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort               = "8080"
	defaultArticlePageSize    = 10
	defaultArticleMaxPageSize = 100
	defaultRateLimit          = "100-M"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool
	LogLevel      slog.Level

	// Article listing
	ArticlePageSize    int
	ArticleMaxPageSize int

	// RateLimit uses the limiter format "<requests>-<S|M|H|D>". Empty disables it.
	RateLimit          string
	CORSAllowedOrigins []string

	// StandardStatusCodes reports failures with 404/409/500 where they apply
	// instead of answering every failure with 400.
	StandardStatusCodes bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ARTICLE_PAGE_SIZE", defaultArticlePageSize)
	v.SetDefault("ARTICLE_MAX_PAGE_SIZE", defaultArticleMaxPageSize)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("STANDARD_STATUS_CODES", false)

	// Environment variables override .env values, which override the defaults.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:       v.GetBool("RUN_MIGRATIONS"),
		ArticlePageSize:     v.GetInt("ARTICLE_PAGE_SIZE"),
		ArticleMaxPageSize:  v.GetInt("ARTICLE_MAX_PAGE_SIZE"),
		RateLimit:           strings.TrimSpace(v.GetString("RATE_LIMIT")),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		StandardStatusCodes: v.GetBool("STANDARD_STATUS_CODES"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT environment variable not set.", slog.String("default", cfg.Port))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v.GetString("LOG_LEVEL"), err)
	}

	if cfg.ArticlePageSize <= 0 {
		slog.Warn("Invalid ARTICLE_PAGE_SIZE, using default", slog.Int("default", defaultArticlePageSize))
		cfg.ArticlePageSize = defaultArticlePageSize
	}
	if cfg.ArticleMaxPageSize < cfg.ArticlePageSize {
		cfg.ArticleMaxPageSize = cfg.ArticlePageSize
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
