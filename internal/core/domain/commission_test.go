package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

func TestNewCommissionStatement(t *testing.T) {
	p := sampleProject()
	p.Variations = []domain.Variation{
		{
			Title:       "Extra lighting",
			ExtraAmount: dec(20000),
			Items: []domain.VariationItem{
				{
					Title:           "On approval",
					Percent:         dec(100),
					InvoiceTracking: domain.InvoiceTracking{InvoiceStatus: domain.NotInvoiced},
				},
			},
		},
	}

	st := domain.NewCommissionStatement(p)

	require.Len(t, st.ContractStages, 1)
	base := st.ContractStages[0]
	assert.Equal(t, "Advance", base.Title)
	assert.True(t, dec(50000).Equal(base.Amount))
	assert.True(t, dec(5000).Equal(base.Commission))
	assert.True(t, base.IsPaid)

	require.Len(t, st.VariationStages, 1)
	vs := st.VariationStages[0]
	assert.Equal(t, "Extra lighting", vs.Title)
	assert.True(t, dec(20000).Equal(vs.ExtraAmount))
	require.Len(t, vs.Stages, 1)
	assert.True(t, dec(2000).Equal(vs.Stages[0].Commission))
	assert.False(t, vs.Stages[0].IsPaid)

	assert.True(t, dec(10000).Equal(st.TotalCommission))
	assert.True(t, dec(5000).Equal(st.Received))
	assert.True(t, dec(2000).Equal(st.TotalVariationCommission))
	assert.True(t, st.ReceivedFromVariations.IsZero())
	assert.True(t, dec(5000).Equal(st.TotalReceived))
	assert.True(t, dec(12000).Equal(st.GrandTotal))
	assert.True(t, dec(7000).Equal(st.GrandPending))
}

func TestNewCommissionStatement_EmptyProject(t *testing.T) {
	p := domain.Project{
		ProjectID:         "prj-2",
		ContractAmount:    dec(50000),
		CommissionPercent: dec(5),
	}

	st := domain.NewCommissionStatement(p)

	assert.Empty(t, st.ContractStages)
	assert.Empty(t, st.VariationStages)
	assert.True(t, dec(2500).Equal(st.TotalCommission))
	assert.True(t, st.Received.IsZero())
	assert.True(t, dec(2500).Equal(st.GrandTotal))
	assert.True(t, dec(2500).Equal(st.GrandPending))
}
