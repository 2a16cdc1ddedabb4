package token

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt parses a base 10 integer with an optional sign.
func ParseInt(v string) (int64, bool) {
	if v == "" {
		return 0, false
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// ParseFloat parses finite decimal and exponent forms, and the yaml
// spellings of infinity and not-a-number.
func ParseFloat(v string) (float64, bool) {
	switch v {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return math.Inf(1), true
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), true
	case ".nan", ".NaN", ".NAN":
		return math.NaN(), true
	}
	if !isDecimalFloat(v) {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// strconv accepts hex floats, underscores and "inf"/"nan" words; a
// document scalar only counts as a float in plain decimal notation.
func isDecimalFloat(v string) bool {
	if v == "" {
		return false
	}
	i := 0
	if v[0] == '+' || v[0] == '-' {
		i++
	}
	digits := 0
	for i < len(v) && isDigit(v[i]) {
		i++
		digits++
	}
	if i < len(v) && v[i] == '.' {
		i++
		for i < len(v) && isDigit(v[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(v) && (v[i] == 'e' || v[i] == 'E') {
		i++
		if i < len(v) && (v[i] == '+' || v[i] == '-') {
			i++
		}
		exp := 0
		for i < len(v) && isDigit(v[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(v)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// ParseBool recognizes exactly "true" and "false".
func ParseBool(v string) (bool, bool) {
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// FormatInt renders an integer in decimal.
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatFloat renders f in decimal notation, without an exponent, so that
// ParseFloat gives it back as the same float and never as an integer.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatBool renders the literal tokens true and false.
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
