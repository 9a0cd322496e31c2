package norm

import (
	"fmt"
	"math"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/float16"
	"github.com/shopspring/decimal"
)

// RoundDigits is the fractional-digit budget applied to every float
// and decimal value. Engines disagree on trailing precision beyond
// this point. Rounding uses decimal.Round, which rounds half away
// from zero.
const RoundDigits = 12

func float16ToString(value float16.Num) string {
	f := float64(value.Float32())
	if special, ok := specialFloatString(f); ok {
		return special
	}
	return bigDecimalToString(decimal.NewFromFloat32(value.Float32()))
}

func float32ToString(value float32) string {
	if special, ok := specialFloatString(float64(value)); ok {
		return special
	}
	return bigDecimalToString(decimal.NewFromFloat32(value))
}

func float64ToString(value float64) string {
	if special, ok := specialFloatString(value); ok {
		return special
	}
	return bigDecimalToString(decimal.NewFromFloat(value))
}

func specialFloatString(value float64) (string, bool) {
	switch {
	case math.IsNaN(value):
		// the sign bit of NaN is platform-dependent, so it is erased
		return "NaN", true
	case math.IsInf(value, 1):
		return "Infinity", true
	case math.IsInf(value, -1):
		return "-Infinity", true
	}
	return "", false
}

// decimalToString normalizes the scaled textual form of a decimal
// column value, so that DECIMAL and FLOAT columns carrying the same
// mathematical value render identically.
func decimalToString(formatted string) (string, error) {
	value, err := decimal.NewFromString(formatted)
	if err != nil {
		return "", fmt.Errorf("decimal.NewFromString: %w", err)
	}
	return bigDecimalToString(value), nil
}

// bigDecimalToString rounds the value to RoundDigits fractional digits
// and renders it as a plain string with no exponent and no trailing
// zeros.
func bigDecimalToString(value decimal.Decimal) string {
	s := value.Round(RoundDigits).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
