package dto

import "github.com/stroyhub/fitout_crm_backend/internal/core/domain"

// CreateCurrencyRequest defines the data needed to register a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
	}
}

// ToListCurrenciesResponse converts the currency reference table.
func ToListCurrenciesResponse(currencies []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, 0, len(currencies))
	for i := range currencies {
		out = append(out, ToCurrencyResponse(&currencies[i]))
	}
	return out
}
