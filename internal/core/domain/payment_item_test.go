package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

func TestInvoiceTracking_ApplyStatus(t *testing.T) {
	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("invoiced stamps invoice date once", func(t *testing.T) {
		tr := domain.InvoiceTracking{InvoiceStatus: domain.NotInvoiced}

		require.NoError(t, tr.ApplyStatus(domain.Invoiced, day1))
		require.NotNil(t, tr.InvoiceDate)
		assert.Equal(t, day1, *tr.InvoiceDate)

		// Re-entering invoiced later must preserve the original date.
		require.NoError(t, tr.ApplyStatus(domain.Invoiced, day2))
		assert.Equal(t, day1, *tr.InvoiceDate)
	})

	t.Run("paid stamps paid date once", func(t *testing.T) {
		tr := domain.InvoiceTracking{InvoiceStatus: domain.Invoiced}

		require.NoError(t, tr.ApplyStatus(domain.Paid, day1))
		require.NotNil(t, tr.PaidDate)
		assert.Equal(t, day1, *tr.PaidDate)
		assert.True(t, tr.IsPaid())

		require.NoError(t, tr.ApplyStatus(domain.Paid, day2))
		assert.Equal(t, day1, *tr.PaidDate)
	})

	t.Run("reset clears both dates from any state", func(t *testing.T) {
		states := []domain.InvoiceStatus{domain.NotInvoiced, domain.Invoiced, domain.Paid}
		for _, from := range states {
			tr := domain.InvoiceTracking{InvoiceStatus: domain.NotInvoiced}
			require.NoError(t, tr.ApplyStatus(domain.Invoiced, day1))
			require.NoError(t, tr.ApplyStatus(from, day1))

			require.NoError(t, tr.ApplyStatus(domain.NotInvoiced, day2))
			assert.Equal(t, domain.NotInvoiced, tr.InvoiceStatus)
			assert.Nil(t, tr.InvoiceDate)
			assert.Nil(t, tr.PaidDate)
		}
	})

	t.Run("unknown target is rejected and leaves state untouched", func(t *testing.T) {
		tr := domain.InvoiceTracking{InvoiceStatus: domain.Invoiced}
		require.NoError(t, tr.ApplyStatus(domain.Invoiced, day1))

		err := tr.ApplyStatus(domain.InvoiceStatus("cancelled"), day2)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
		assert.Equal(t, domain.Invoiced, tr.InvoiceStatus)
		assert.Equal(t, day1, *tr.InvoiceDate)
	})
}

func TestPaymentItem_Amount(t *testing.T) {
	item := domain.PaymentItem{Percent: decimal.NewFromInt(50)}

	base := decimal.NewFromInt(100000)
	assert.True(t, decimal.NewFromInt(50000).Equal(item.Amount(base)))

	// No caching: a changed base changes the returned value with no
	// explicit update call.
	base = decimal.NewFromInt(200000)
	assert.True(t, decimal.NewFromInt(100000).Equal(item.Amount(base)))
}

func TestPaymentItem_AmountIndependentOfStatus(t *testing.T) {
	day := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	base := decimal.NewFromInt(80000)
	item := domain.PaymentItem{
		Percent:         decimal.NewFromInt(25),
		InvoiceTracking: domain.InvoiceTracking{InvoiceStatus: domain.NotInvoiced},
	}
	before := item.Amount(base)

	require.NoError(t, item.ApplyStatus(domain.Paid, day))
	require.NoError(t, item.ApplyStatus(domain.NotInvoiced, day))

	// Amount depends only on percent and the parent base, never on the
	// status round trip.
	assert.True(t, before.Equal(item.Amount(base)))
}
