package services

import (
	"github.com/SscSPs/invoice_reporting/internal/core/domain"
)

// FormatOption customises a single FormatCurrency call.
type FormatOption func(*FormatOptions)

// FormatOptions are the resolved settings for FormatCurrency.
type FormatOptions struct {
	ShowSymbol bool
	ShowCode   bool
	Decimals   int
}

// DefaultFormatOptions shows the symbol, hides the code and uses two decimals.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{ShowSymbol: true, ShowCode: false, Decimals: 2}
}

// WithoutSymbol omits the currency symbol.
func WithoutSymbol() FormatOption {
	return func(o *FormatOptions) { o.ShowSymbol = false }
}

// WithSymbol sets whether the currency symbol is rendered.
func WithSymbol(show bool) FormatOption {
	return func(o *FormatOptions) { o.ShowSymbol = show }
}

// WithCode appends the uppercase ISO code after the amount.
func WithCode() FormatOption {
	return func(o *FormatOptions) { o.ShowCode = true }
}

// WithDecimals sets the number of fractional digits. Negative values are treated as zero.
func WithDecimals(n int) FormatOption {
	return func(o *FormatOptions) {
		if n < 0 {
			n = 0
		}
		o.Decimals = n
	}
}

// CurrencyLookupSvc defines read operations over the static currency tables.
type CurrencyLookupSvc interface {
	// CurrencySymbol returns the display symbol for code; "" yields "$".
	CurrencySymbol(code string) string

	// CurrencyName returns the curated name for code, the code itself, or "Unknown" for "".
	CurrencyName(code string) string

	// SupportedCurrencies lists the currencies offered in pickers.
	SupportedCurrencies() []domain.Currency
}

// CurrencyFormatterSvc defines amount rendering. Implementations never fail.
type CurrencyFormatterSvc interface {
	FormatCurrency(amount any, code string, opts ...FormatOption) string
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyLookupSvc
	CurrencyFormatterSvc
}
