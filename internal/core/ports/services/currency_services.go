package services

import (
	"context"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
)

// CurrencySvcFacade manages the currency reference table.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a currency by its ISO code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all registered currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// CreateCurrency registers a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
}
