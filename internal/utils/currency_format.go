package utils

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/SscSPs/invoice_reporting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithPrecision rounds an amount half away from zero and always renders exactly precision fractional digits.
// Example: amount 12.3456 with precision 2 returns "12.35"
// Example: amount 12 with precision 0 returns "12"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return amount.StringFixed(int32(precision))
}

// FormatGrouped renders a fixed-precision amount with thousands grouping using the given separators.
// Example: 1234567.5 with precision 2 and en-US separators returns "1,234,567.50"
func FormatGrouped(amount decimal.Decimal, precision int, nf domain.NumberFormat) string {
	fixed := FormatWithPrecision(amount, precision)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(nf.GroupSeparator)
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteString(nf.DecimalSeparator)
		b.WriteString(fracPart)
	}
	return b.String()
}

// ParseAmount converts loosely typed input into a decimal. It never fails:
// nil, NaN, infinities and anything unparsable become zero.
func ParseAmount(amount any) decimal.Decimal {
	switch v := amount.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		return *v
	case float64:
		return fromFloat(v)
	case *float64:
		if v == nil {
			return decimal.Zero
		}
		return fromFloat(*v)
	case float32:
		return fromFloat(float64(v))
	case int:
		return decimal.NewFromInt(int64(v))
	case int8:
		return decimal.NewFromInt(int64(v))
	case int16:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return fromUint(uint64(v))
	case uint16:
		return fromUint(uint64(v))
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case json.Number:
		return fromString(string(v))
	case string:
		return fromString(v)
	default:
		return decimal.Zero
	}
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
