package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle state of a project. Deleting a project is
// modelled as a transition to cancelled, never as row removal.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// ValidProjectStatus reports whether s is one of the allowed states.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectPlanned, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project is the aggregate root for a contracting job: the base payment plan,
// the set of variations, and the commission percentage. Every financial
// figure below is recomputed on demand from the owned collections; nothing is
// cached, so two calls with no mutation in between return identical values.
type Project struct {
	ProjectID      string          `json:"projectID"` // Primary Key (UUID)
	ProjectName    string          `json:"projectName"`
	ClientName     string          `json:"clientName"`
	LocationText   string          `json:"locationText"`
	ContractAmount decimal.Decimal `json:"contractAmount"`
	CurrencyCode   string          `json:"currencyCode"`
	StartDate      *time.Time      `json:"startDate,omitempty"`
	DurationDays   *int            `json:"durationDays,omitempty"`
	Status         ProjectStatus   `json:"status"`
	// CommissionPercent applies to all derivations in the aggregate: changing
	// it instantly changes every derived commission figure, past and present.
	CommissionPercent decimal.Decimal `json:"commissionPercent"`

	PaymentItems []PaymentItem `json:"paymentItems"`
	Variations   []Variation   `json:"variations"`
	Tasks        []ProjectTask `json:"tasks"`
	Documents    []Document    `json:"documents"`
	AuditFields
}

// EndDate returns start date + duration, or nil when either is unset.
func (p Project) EndDate() *time.Time {
	if p.StartDate == nil || p.DurationDays == nil {
		return nil
	}
	end := p.StartDate.AddDate(0, 0, *p.DurationDays)
	return &end
}

// DaysLeft returns whole days from today until the end date, or nil.
func (p Project) DaysLeft(today time.Time) *int {
	end := p.EndDate()
	if end == nil {
		return nil
	}
	days := int(end.Sub(today).Hours() / 24)
	return &days
}

// DaysElapsed returns whole days since the start date, or nil.
func (p Project) DaysElapsed(today time.Time) *int {
	if p.StartDate == nil {
		return nil
	}
	days := int(today.Sub(*p.StartDate).Hours() / 24)
	return &days
}

// PaymentPercentTotal sums the percent share of every base payment item.
// An empty plan yields zero.
func (p Project) PaymentPercentTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.PaymentItems {
		total = total.Add(item.Percent)
	}
	return total
}

// PaidPercent sums the percent share of paid base payment items.
func (p Project) PaidPercent() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.PaymentItems {
		if item.IsPaid() {
			total = total.Add(item.Percent)
		}
	}
	return total
}

// PaidAmount sums the derived amounts of paid base payment items.
func (p Project) PaidAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.PaymentItems {
		if item.IsPaid() {
			total = total.Add(item.Amount(p.ContractAmount))
		}
	}
	return total
}

// TotalVariationsAmount sums the extra amounts of all variations.
func (p Project) TotalVariationsAmount() decimal.Decimal {
	total := decimal.Zero
	for _, v := range p.Variations {
		total = total.Add(v.ExtraAmount)
	}
	return total
}

// CommissionTotal is the full commission on the base contract,
// independent of the payment plan: contractAmount * commissionPercent / 100.
func (p Project) CommissionTotal() decimal.Decimal {
	return PercentOf(p.ContractAmount, p.CommissionPercent)
}

// CommissionReceived sums the commission on paid base payment items.
// A zero commission percent short-circuits to zero.
func (p Project) CommissionReceived() decimal.Decimal {
	if p.CommissionPercent.IsZero() {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, item := range p.PaymentItems {
		if item.IsPaid() {
			total = total.Add(PercentOf(item.Amount(p.ContractAmount), p.CommissionPercent))
		}
	}
	return total
}

// CommissionPending is the base commission not yet received.
func (p Project) CommissionPending() decimal.Decimal {
	return p.CommissionTotal().Sub(p.CommissionReceived())
}

// CommissionReceivedFromVariations sums the commission on paid variation
// items across all variations. Zero commission percent short-circuits.
func (p Project) CommissionReceivedFromVariations() decimal.Decimal {
	if p.CommissionPercent.IsZero() {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, v := range p.Variations {
		for _, item := range v.Items {
			if item.IsPaid() {
				total = total.Add(PercentOf(item.Amount(v.ExtraAmount), p.CommissionPercent))
			}
		}
	}
	return total
}

// CommissionTotalWithVariations returns base commission plus the commission
// accrued over ALL variation items (paid or not) minus the variation
// commission already received. The accrual term deliberately spans every
// item rather than only unpaid ones; see the accompanying domain test.
func (p Project) CommissionTotalWithVariations() decimal.Decimal {
	extra := decimal.Zero
	for _, v := range p.Variations {
		for _, item := range v.Items {
			extra = extra.Add(PercentOf(item.Amount(v.ExtraAmount), p.CommissionPercent))
		}
	}
	return p.CommissionTotal().Add(extra).Sub(p.CommissionReceivedFromVariations())
}
