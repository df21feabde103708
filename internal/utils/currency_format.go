package utils

import (
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatPrice renders a price with exactly the stored number of decimals.
// Example: 100.5 returns "100.50", 3 returns "3.00".
func FormatPrice(amount decimal.Decimal) string {
	return amount.StringFixed(domain.PriceScale)
}
