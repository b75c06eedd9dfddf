package domain_test

import (
	"testing"

	"github.com/SscSPs/invoice_reporting/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyTables(t *testing.T) {
	supported := domain.SupportedCurrencies()
	assert.Len(t, supported, 17)

	for _, c := range supported {
		symbol, ok := domain.LookupSymbol(c.CurrencyCode)
		assert.True(t, ok, "curated currency %s should have a symbol", c.CurrencyCode)
		assert.Equal(t, symbol, c.Symbol, "symbol mismatch for %s", c.CurrencyCode)
	}

	for _, code := range []string{"USD", "EUR", "GBP", "JPY", "CNY", "AUD", "CAD", "SGD", "HKD", "NZD"} {
		assert.True(t, domain.IsSymbolFirst(code), code)
	}
	assert.False(t, domain.IsSymbolFirst("MVR"))
	assert.False(t, domain.IsSymbolFirst("usd"), "lookups expect normalized codes")
}

func TestSupportedCurrencies_ReturnsCopy(t *testing.T) {
	list := domain.SupportedCurrencies()
	list[0].Name = "changed"

	fresh := domain.SupportedCurrencies()
	assert.Equal(t, "US Dollar", fresh[0].Name)
}

func TestFindSupportedCurrency(t *testing.T) {
	c, ok := domain.FindSupportedCurrency("MVR")
	assert.True(t, ok)
	assert.Equal(t, "Maldivian Rufiyaa", c.Name)

	_, ok = domain.FindSupportedCurrency("NZD")
	assert.False(t, ok, "NZD has a symbol but is not curated")
}
