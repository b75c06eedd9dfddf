package services_test

import (
	"math"
	"testing"

	"github.com/SscSPs/invoice_reporting/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_reporting/internal/core/ports/services"
	"github.com/SscSPs/invoice_reporting/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CurrencyFormatterTestSuite struct {
	suite.Suite
	formatter *services.CurrencyFormatter
}

func (suite *CurrencyFormatterTestSuite) SetupTest() {
	suite.formatter = services.NewCurrencyFormatter()
}

func (suite *CurrencyFormatterTestSuite) TestCurrencySymbol() {
	suite.Equal("$", suite.formatter.CurrencySymbol("usd"))
	suite.Equal("$", suite.formatter.CurrencySymbol(""))
	suite.Equal("$", suite.formatter.CurrencySymbol("   "))
	suite.Equal("€", suite.formatter.CurrencySymbol("EUR"))
	suite.Equal("Rf", suite.formatter.CurrencySymbol("mvr"))
	suite.Equal("د.إ", suite.formatter.CurrencySymbol("AED"))
	suite.Equal("XYZ", suite.formatter.CurrencySymbol("XYZ"))
	suite.Equal("XYZ", suite.formatter.CurrencySymbol("xyz"))
}

func (suite *CurrencyFormatterTestSuite) TestFormatCurrency_Placement() {
	suite.Equal("$1,234.50", suite.formatter.FormatCurrency(1234.5, "USD"))
	suite.Equal("$1,234.50", suite.formatter.FormatCurrency(1234.5, "usd"))
	suite.Equal("1,234.50 Rf", suite.formatter.FormatCurrency(1234.5, "MVR"))
	suite.Equal("¥1,000.00", suite.formatter.FormatCurrency(1000, "JPY"))
	suite.Equal("NZ$12.00", suite.formatter.FormatCurrency(12, "NZD"))
	suite.Equal("5.00 kr", suite.formatter.FormatCurrency(5, "SEK"))
	suite.Equal("5.00 XYZ", suite.formatter.FormatCurrency(5, "XYZ"))
}

func (suite *CurrencyFormatterTestSuite) TestFormatCurrency_Defaults() {
	suite.Equal("$0.00", suite.formatter.FormatCurrency(0, ""))
	suite.Equal("$0.00", suite.formatter.FormatCurrency(nil, ""))
	suite.Equal("$0.00", suite.formatter.FormatCurrency("not a number", ""))
	suite.Equal("$0.00", suite.formatter.FormatCurrency(math.NaN(), ""))
	suite.Equal("0.00 Rf", suite.formatter.FormatCurrency(nil, "MVR"))
}

func (suite *CurrencyFormatterTestSuite) TestFormatCurrency_Options() {
	suite.Equal("€1,000.00 EUR", suite.formatter.FormatCurrency(1000, "EUR", portssvc.WithCode()))
	suite.Equal("1,000.00 Rf MVR", suite.formatter.FormatCurrency(1000, "mvr", portssvc.WithCode()))
	suite.Equal("1,000.00", suite.formatter.FormatCurrency(1000, "EUR", portssvc.WithoutSymbol()))
	suite.Equal("1,000.00 EUR", suite.formatter.FormatCurrency(1000, "EUR", portssvc.WithoutSymbol(), portssvc.WithCode()))
	suite.Equal("$1,235", suite.formatter.FormatCurrency(1234.5, "USD", portssvc.WithDecimals(0)))
	suite.Equal("$1,234.500", suite.formatter.FormatCurrency(1234.5, "USD", portssvc.WithDecimals(3)))
	suite.Equal("$1,235", suite.formatter.FormatCurrency(1234.5, "USD", portssvc.WithDecimals(-2)))
	suite.Equal("$0.00", suite.formatter.FormatCurrency(0, "", portssvc.WithCode()), "no code to append")
}

func (suite *CurrencyFormatterTestSuite) TestFormatCurrency_AmountTypes() {
	suite.Equal("$19.99", suite.formatter.FormatCurrency("19.99", "USD"))
	suite.Equal("$42.00", suite.formatter.FormatCurrency(decimal.NewFromInt(42), "USD"))
	suite.Equal("$0.00", suite.formatter.FormatCurrency(-0.001, "USD"), "rounds to zero without a sign")
	suite.Equal("$-1,500.25", suite.formatter.FormatCurrency(-1500.25, "USD"))
}

func (suite *CurrencyFormatterTestSuite) TestFormatCurrency_Idempotent() {
	first := suite.formatter.FormatCurrency(98765.4321, "GBP", portssvc.WithCode())
	second := suite.formatter.FormatCurrency(98765.4321, "GBP", portssvc.WithCode())
	suite.Equal("£98,765.43 GBP", first)
	suite.Equal(first, second)
}

func (suite *CurrencyFormatterTestSuite) TestFormatCurrency_CustomNumberFormat() {
	f := services.NewCurrencyFormatter(services.WithNumberFormat(domain.NumberFormat{GroupSeparator: " ", DecimalSeparator: ","}))
	suite.Equal("1 234,50 Rf", f.FormatCurrency(1234.5, "MVR"))
}

func (suite *CurrencyFormatterTestSuite) TestCurrencyName() {
	suite.Equal("Maldivian Rufiyaa", suite.formatter.CurrencyName("mvr"))
	suite.Equal("US Dollar", suite.formatter.CurrencyName("USD"))
	suite.Equal("ZZZ", suite.formatter.CurrencyName("ZZZ"))
	suite.Equal("nzd", suite.formatter.CurrencyName("nzd"), "uncurated codes come back as given")
	suite.Equal("Unknown", suite.formatter.CurrencyName(""))
}

func (suite *CurrencyFormatterTestSuite) TestSupportedCurrencies() {
	list := suite.formatter.SupportedCurrencies()
	suite.Len(list, 17)
	suite.Equal("USD", list[0].CurrencyCode)
}

func TestCurrencyFormatter(t *testing.T) {
	suite.Run(t, new(CurrencyFormatterTestSuite))
}
