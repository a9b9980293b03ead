// Package format renders numeric values as Indian rupee display strings.
package format

import (
	"fmt"
	"math"
	"strings"
)

const (
	crore = 1e7
	lakh  = 1e5
)

// Abbrev renders n as an abbreviated rupee string using Indian magnitude
// units: crore (1e7) and lakh (1e5) to two decimals, thousands to one
// decimal, everything below as a grouped integer. NaN and infinities render
// as zero.
func Abbrev(n float64) string {
	n = sanitize(n)
	switch {
	case n >= crore:
		return fmt.Sprintf("₹%.2fCr", n/crore)
	case n >= lakh:
		return fmt.Sprintf("₹%.2fL", n/lakh)
	case n >= 1000:
		return fmt.Sprintf("₹%.1fK", n/1000)
	default:
		return "₹" + groupDigits(fmt.Sprintf("%.0f", n))
	}
}

// Full renders n with grouping and exactly two decimals regardless of
// magnitude. NaN and infinities render as zero.
func Full(n float64) string {
	return "₹" + groupDigits(fmt.Sprintf("%.2f", sanitize(n)))
}

// Integer renders n as a grouped whole number without a currency symbol,
// used for quantity displays.
func Integer(n float64) string {
	return groupDigits(fmt.Sprintf("%.0f", sanitize(n)))
}

func sanitize(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// groupDigits inserts comma separators into the integer part of a formatted
// number, leaving any sign and fractional part intact.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
