package services

import (
	"strings"

	"github.com/SscSPs/invoice_reporting/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_reporting/internal/core/ports/services"
	"github.com/SscSPs/invoice_reporting/internal/utils"
)

// maxDecimals bounds the fractional digits a caller may request.
const maxDecimals = 100

// CurrencyFormatter renders amounts with currency symbols. None of its methods fail.
type CurrencyFormatter struct {
	numberFormat domain.NumberFormat
}

// CurrencyFormatterOption is a functional option for configuring the currency formatter
type CurrencyFormatterOption func(*CurrencyFormatter)

// WithNumberFormat sets the grouping and decimal separators.
func WithNumberFormat(nf domain.NumberFormat) CurrencyFormatterOption {
	return func(f *CurrencyFormatter) {
		if nf.DecimalSeparator != "" {
			f.numberFormat = nf
		}
	}
}

// NewCurrencyFormatter creates a currency formatter using en-US separators unless overridden.
func NewCurrencyFormatter(options ...CurrencyFormatterOption) *CurrencyFormatter {
	f := &CurrencyFormatter{numberFormat: domain.EnUSNumberFormat}
	for _, option := range options {
		option(f)
	}
	return f
}

// Ensure CurrencyFormatter implements the CurrencySvcFacade interface
var _ portssvc.CurrencySvcFacade = (*CurrencyFormatter)(nil)

// CurrencySymbol returns the symbol for code. A blank code renders as "$" and
// unknown codes are returned uppercased as their own symbol.
func (f *CurrencyFormatter) CurrencySymbol(code string) string {
	upper := normalizeCode(code)
	if upper == "" {
		return domain.DefaultCurrencySymbol
	}
	if symbol, ok := domain.LookupSymbol(upper); ok {
		return symbol
	}
	return upper
}

// FormatCurrency renders amount as a grouped decimal with the symbol placed
// according to the currency. Unparsable amounts are formatted as zero.
func (f *CurrencyFormatter) FormatCurrency(amount any, code string, opts ...portssvc.FormatOption) string {
	o := portssvc.DefaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Decimals > maxDecimals {
		o.Decimals = maxDecimals
	}

	number := utils.FormatGrouped(utils.ParseAmount(amount), o.Decimals, f.numberFormat)
	upper := normalizeCode(code)

	result := number
	if o.ShowSymbol {
		symbol := f.CurrencySymbol(upper)
		// A missing code falls back to "$", which keeps dollar placement.
		if upper == "" || domain.IsSymbolFirst(upper) {
			result = symbol + number
		} else {
			result = number + " " + symbol
		}
	}

	if o.ShowCode && upper != "" {
		result += " " + upper
	}
	return result
}

// CurrencyName returns the curated display name for code, the code itself
// when it is not curated, or "Unknown" when no code is given.
func (f *CurrencyFormatter) CurrencyName(code string) string {
	upper := normalizeCode(code)
	if upper == "" {
		return domain.UnknownCurrencyName
	}
	if c, ok := domain.FindSupportedCurrency(upper); ok {
		return c.Name
	}
	return code
}

// SupportedCurrencies returns the curated currency list.
func (f *CurrencyFormatter) SupportedCurrencies() []domain.Currency {
	return domain.SupportedCurrencies()
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
