package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

var oneHundred = decimal.NewFromInt(100)

// PercentOf returns base * percent / 100 using exact decimal arithmetic.
// All monetary derivations in this package go through this helper so that
// repeated sums never accumulate binary floating-point drift.
func PercentOf(base, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(oneHundred)
}
