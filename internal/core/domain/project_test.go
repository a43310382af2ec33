package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

func dec(i int64) decimal.Decimal {
	return decimal.NewFromInt(i)
}

// sampleProject is the worked example used throughout: 100000 contract,
// 10% commission, one 50% stage already paid.
func sampleProject() domain.Project {
	return domain.Project{
		ProjectID:         "prj-1",
		ProjectName:       "Villa fit-out",
		ContractAmount:    dec(100000),
		CurrencyCode:      "AED",
		CommissionPercent: dec(10),
		PaymentItems: []domain.PaymentItem{
			{
				Title:           "Advance",
				Percent:         dec(50),
				InvoiceTracking: domain.InvoiceTracking{InvoiceStatus: domain.Paid},
			},
		},
	}
}

func TestProject_EmptyPlanYieldsZeroes(t *testing.T) {
	p := domain.Project{
		ContractAmount:    dec(100000),
		CommissionPercent: dec(10),
	}

	assert.True(t, p.PaymentPercentTotal().IsZero())
	assert.True(t, p.PaidPercent().IsZero())
	assert.True(t, p.PaidAmount().IsZero())
	assert.True(t, p.TotalVariationsAmount().IsZero())

	// CommissionTotal is independent of the plan.
	assert.True(t, dec(10000).Equal(p.CommissionTotal()))
	assert.True(t, p.CommissionReceived().IsZero())
	assert.True(t, dec(10000).Equal(p.CommissionPending()))
}

func TestProject_BaseCommissionFigures(t *testing.T) {
	p := sampleProject()

	assert.True(t, dec(50).Equal(p.PaymentPercentTotal()))
	assert.True(t, dec(50).Equal(p.PaidPercent()))
	assert.True(t, dec(50000).Equal(p.PaidAmount()))
	assert.True(t, dec(10000).Equal(p.CommissionTotal()))
	assert.True(t, dec(5000).Equal(p.CommissionReceived()))
	assert.True(t, dec(5000).Equal(p.CommissionPending()))
}

func TestProject_ZeroCommissionShortCircuits(t *testing.T) {
	p := sampleProject()
	p.CommissionPercent = decimal.Zero
	p.Variations = []domain.Variation{
		{
			ExtraAmount: dec(20000),
			Items: []domain.VariationItem{
				{Percent: dec(100), InvoiceTracking: domain.InvoiceTracking{InvoiceStatus: domain.Paid}},
			},
		},
	}

	assert.True(t, p.CommissionReceived().IsZero())
	assert.True(t, p.CommissionReceivedFromVariations().IsZero())
	// Paid amounts themselves are unaffected by the commission rate.
	assert.True(t, dec(50000).Equal(p.PaidAmount()))
}

func TestProject_VariationRollups(t *testing.T) {
	v := domain.Variation{
		ExtraAmount: dec(20000),
		Items: []domain.VariationItem{
			{Percent: dec(60), InvoiceTracking: domain.InvoiceTracking{InvoiceStatus: domain.Paid}},
			{Percent: dec(40), InvoiceTracking: domain.InvoiceTracking{InvoiceStatus: domain.Invoiced}},
		},
	}

	assert.True(t, dec(100).Equal(v.PaymentPercentTotal()))
	assert.True(t, dec(60).Equal(v.PaidPercent()))
	assert.True(t, dec(12000).Equal(v.PaidAmount()))
}

func TestProject_DerivationsAreReferentiallyTransparent(t *testing.T) {
	p := sampleProject()

	first := p.CommissionReceived()
	second := p.CommissionReceived()
	assert.True(t, first.Equal(second))

	// Mutating the shared base retroactively changes every derivation.
	p.ContractAmount = dec(200000)
	assert.True(t, dec(10000).Equal(p.CommissionReceived()))
}

// CommissionTotalWithVariations keeps the legacy formula: base commission
// plus commission over ALL variation items (paid and unpaid) minus the
// variation commission already received. With one fully paid variation item
// the accrual and the subtraction cancel, leaving only the base figure.
func TestProject_CommissionTotalWithVariationsLegacyFormula(t *testing.T) {
	p := sampleProject()
	p.Variations = []domain.Variation{
		{
			ExtraAmount: dec(20000),
			Items: []domain.VariationItem{
				{Percent: dec(100), InvoiceTracking: domain.InvoiceTracking{InvoiceStatus: domain.Paid}},
			},
		},
	}

	// base 10000 + accrual 2000 - received 2000 = 10000
	assert.True(t, dec(10000).Equal(p.CommissionTotalWithVariations()))

	p.Variations[0].Items[0].InvoiceStatus = domain.NotInvoiced
	// base 10000 + accrual 2000 - received 0 = 12000
	assert.True(t, dec(12000).Equal(p.CommissionTotalWithVariations()))
}

func TestProject_ScheduleDerivations(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	duration := 90
	p := domain.Project{StartDate: &start, DurationDays: &duration}

	end := p.EndDate()
	assert.NotNil(t, end)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *end)

	today := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	left := p.DaysLeft(today)
	elapsed := p.DaysElapsed(today)
	assert.NotNil(t, left)
	assert.NotNil(t, elapsed)
	assert.Equal(t, 30, *left)
	assert.Equal(t, 60, *elapsed)

	blank := domain.Project{}
	assert.Nil(t, blank.EndDate())
	assert.Nil(t, blank.DaysLeft(today))
	assert.Nil(t, blank.DaysElapsed(today))
}
