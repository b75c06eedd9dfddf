package dto

import (
	"github.com/SscSPs/invoice_reporting/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	SymbolFirst  bool   `json:"symbolFirst"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		SymbolFirst:  domain.IsSymbolFirst(curr.CurrencyCode),
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr)
	}
	return res
}

// FormatCurrencyQuery holds the query parameters of a single format request.
// Amount is kept as a string so malformed input degrades to zero instead of failing binding.
type FormatCurrencyQuery struct {
	Amount     string `form:"amount"`
	Code       string `form:"code"`
	ShowSymbol *bool  `form:"showSymbol"`
	ShowCode   *bool  `form:"showCode"`
	Decimals   *int   `form:"decimals" binding:"omitempty,min=0,max=20"`
}

// FormatCurrencyItem is one amount in a batch format request.
type FormatCurrencyItem struct {
	Amount       any    `json:"amount"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,max=3"`
}

// FormatCurrencyBatchRequest formats many amounts with shared options, e.g. a dashboard table.
type FormatCurrencyBatchRequest struct {
	Items      []FormatCurrencyItem `json:"items" binding:"required,min=1,max=500,dive"`
	ShowSymbol *bool                `json:"showSymbol"`
	ShowCode   *bool                `json:"showCode"`
	Decimals   *int                 `json:"decimals" binding:"omitempty,min=0,max=20"`
}

// FormatCurrencyResponse is the rendered amount.
type FormatCurrencyResponse struct {
	Formatted string `json:"formatted"`
}

// FormatCurrencyBatchResponse holds rendered amounts in request order.
type FormatCurrencyBatchResponse struct {
	Items []FormatCurrencyResponse `json:"items"`
}
