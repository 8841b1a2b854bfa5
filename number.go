package moneyfmt

import (
	"math"
	"strconv"
	"strings"
)

// renderFixed renders value as a plain decimal string. A non-negative
// digits count rounds half away from zero to exactly that many fractional
// digits; a negative count keeps the shortest representation that round
// trips back to value. Rounding happens on the decimal digits themselves so
// a value whose shortest form ends in 5 always rounds up in magnitude,
// regardless of its binary neighborhood.
func renderFixed(value float64, digits int) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if digits < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return s
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	switch {
	case len(frac) < digits:
		frac += strings.Repeat("0", digits-len(frac))
	case len(frac) > digits:
		up := frac[digits] >= '5'
		frac = frac[:digits]
		if up {
			intPart, frac = incrementFixed(intPart, frac)
		}
	}

	out := intPart
	if digits > 0 {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// incrementFixed adds one unit at the last fractional position, carrying
// into the integer part when the fraction is all nines or empty.
func incrementFixed(intPart, frac string) (string, string) {
	digits := []byte(frac)
	carry := true
	for i := len(digits) - 1; i >= 0 && carry; i-- {
		if digits[i] == '9' {
			digits[i] = '0'
			continue
		}
		digits[i]++
		carry = false
	}

	if carry {
		intPart = incrementInteger(intPart)
	}
	return intPart, string(digits)
}

func incrementInteger(s string) string {
	digits := []byte(s)
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] == '9' {
			digits[i] = '0'
			continue
		}
		digits[i]++
		return string(digits)
	}
	return "1" + string(digits)
}

// groupThousands joins runs of three digits, counted from the right, with
// sep. Inputs of three or fewer characters are returned untouched.
func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			result.WriteString(sep)
		}
		result.WriteByte(digits[i])
	}
	return result.String()
}

// groupFraction joins runs of three digits, counted from the left, with
// sep. Short fractions stay ungrouped: grouping only activates beyond five
// digits, mirroring the integer grouping for long tails only.
func groupFraction(frac, sep string) string {
	if sep == "" || len(frac) <= 5 {
		return frac
	}

	var result strings.Builder
	for i := 0; i < len(frac); i += 3 {
		if i > 0 {
			result.WriteString(sep)
		}
		end := i + 3
		if end > len(frac) {
			end = len(frac)
		}
		result.WriteString(frac[i:end])
	}
	return result.String()
}
