package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project represents a row of the projects table. Financial rollups are
// never stored here; they are derived from the aggregate on read.
type Project struct {
	ProjectID         string          `db:"project_id"`
	ProjectName       string          `db:"project_name"`
	ClientName        string          `db:"client_name"`
	LocationText      string          `db:"location_text"`
	ContractAmount    decimal.Decimal `db:"contract_amount"`
	CurrencyCode      string          `db:"currency_code"`
	StartDate         *time.Time      `db:"start_date"`
	DurationDays      *int            `db:"duration_days"`
	Status            string          `db:"status"`
	CommissionPercent decimal.Decimal `db:"commission_percent"`
	AuditFields
}

// PaymentItem represents a row of the payment_items table, one stage of a
// project's base payment plan.
type PaymentItem struct {
	ItemID        string          `db:"item_id"`
	ProjectID     string          `db:"project_id"`
	Title         string          `db:"title"`
	Percent       decimal.Decimal `db:"percent"`
	DueCondition  string          `db:"due_condition"`
	InvoiceStatus string          `db:"invoice_status"`
	InvoiceDate   *time.Time      `db:"invoice_date"`
	PaidDate      *time.Time      `db:"paid_date"`
	AuditFields
}

// Variation represents a row of the variations table.
type Variation struct {
	VariationID string          `db:"variation_id"`
	ProjectID   string          `db:"project_id"`
	Title       string          `db:"title"`
	ExtraAmount decimal.Decimal `db:"extra_amount"`
	Status      string          `db:"status"`
	AuditFields
}

// VariationItem represents a row of the variation_items table, one stage
// of a variation's payment schedule.
type VariationItem struct {
	ItemID        string          `db:"item_id"`
	VariationID   string          `db:"variation_id"`
	Title         string          `db:"title"`
	Percent       decimal.Decimal `db:"percent"`
	DueCondition  string          `db:"due_condition"`
	InvoiceStatus string          `db:"invoice_status"`
	InvoiceDate   *time.Time      `db:"invoice_date"`
	PaidDate      *time.Time      `db:"paid_date"`
	AuditFields
}
