package middleware

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
	"github.com/SscSPs/price_listing_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the generic failure envelope with the given
// status instead of Gin's default error page.
func Recovery(status int) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromContext(c).Error("Recovered from panic",
			slog.String("panic", fmt.Sprint(recovered)),
		)
		c.AbortWithStatusJSON(status, dto.NewFailure(apperrors.GenericMessage))
	})
}
