package domain

// Currency represents a currency known to the display layer.
type Currency struct {
	CurrencyCode string `json:"code"`   // e.g., "USD"
	Symbol       string `json:"symbol"` // e.g., "$"
	Name         string `json:"name"`   // e.g., "US Dollar"
}

// NumberFormat holds the separators used when rendering grouped decimals.
type NumberFormat struct {
	GroupSeparator   string
	DecimalSeparator string
}

// EnUSNumberFormat groups thousands with "," and uses "." as the decimal point.
var EnUSNumberFormat = NumberFormat{GroupSeparator: ",", DecimalSeparator: "."}

// DefaultCurrencySymbol is rendered when no currency code is supplied at all.
const DefaultCurrencySymbol = "$"

// UnknownCurrencyName is returned by name lookups that receive no code.
const UnknownCurrencyName = "Unknown"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"SGD": "S$",
	"HKD": "HK$",
	"NZD": "NZ$",
	"MVR": "Rf",
	"INR": "₹",
	"LKR": "Rs",
	"PKR": "₨",
	"BDT": "৳",
	"NPR": "रू",
	"AED": "د.إ",
	"SAR": "﷼",
	"QAR": "ر.ق",
	"KWD": "د.ك",
	"BHD": ".د.ب",
	"OMR": "ر.ع.",
	"CHF": "CHF",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"RUB": "₽",
	"TRY": "₺",
	"ZAR": "R",
	"BRL": "R$",
	"MXN": "MX$",
	"KRW": "₩",
	"THB": "฿",
	"MYR": "RM",
	"IDR": "Rp",
	"PHP": "₱",
	"VND": "₫",
}

// supportedCurrencies is the curated list offered in currency pickers.
var supportedCurrencies = []Currency{
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound"},
	{CurrencyCode: "MVR", Symbol: "Rf", Name: "Maldivian Rufiyaa"},
	{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{CurrencyCode: "LKR", Symbol: "Rs", Name: "Sri Lankan Rupee"},
	{CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{CurrencyCode: "SAR", Symbol: "﷼", Name: "Saudi Riyal"},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{CurrencyCode: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	{CurrencyCode: "THB", Symbol: "฿", Name: "Thai Baht"},
	{CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{CurrencyCode: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
}

var symbolFirstCodes = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "CNY": {},
	"AUD": {}, "CAD": {}, "SGD": {}, "HKD": {}, "NZD": {},
}

// LookupSymbol returns the display symbol for an uppercase ISO code.
func LookupSymbol(code string) (string, bool) {
	symbol, ok := currencySymbols[code]
	return symbol, ok
}

// IsSymbolFirst reports whether the symbol of an uppercase ISO code precedes the amount.
func IsSymbolFirst(code string) bool {
	_, ok := symbolFirstCodes[code]
	return ok
}

// SupportedCurrencies returns a copy of the curated currency list.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// FindSupportedCurrency looks up a curated currency by uppercase ISO code.
func FindSupportedCurrency(code string) (Currency, bool) {
	for _, c := range supportedCurrencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return Currency{}, false
}
