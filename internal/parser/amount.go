package parser

import (
	"fmt"
	"strings"
	"unicode"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// ParseAmount parses an amount as written in a posting.
// Valid formats:
//   - $123.45, $ 123.45, -$123.45, $-123.45 (prefix commodity)
//   - 123.45 USD, -123.45 USD, USD 123.45, USD -123.45
//   - 1,234.56 EUR (thousands separators are dropped)
//   - 123.45 (no commodity)
//
// Invalid formats:
//   - $- 123.45 (space between sign and digits)
//   - $12 3.45 (space within digits)
func ParseAmount(s string) (core.Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Amount{}, fmt.Errorf("empty amount")
	}

	sign := ""
	rest := s
	if rest[0] == '-' || rest[0] == '+' {
		sign = rest[:1]
		rest = rest[1:]
	}

	var commodity, number string
	if startsNumber(rest) {
		number, rest = takeNumber(rest)
		commodity = strings.TrimSpace(rest)
		if strings.ContainsFunc(commodity, unicode.IsSpace) || startsNumber(commodity) || strings.HasPrefix(commodity, "-") {
			return core.Amount{}, fmt.Errorf("invalid amount %q", s)
		}
	} else {
		commodity, rest = takeCommodity(rest)
		if commodity == "" {
			return core.Amount{}, fmt.Errorf("invalid amount %q", s)
		}
		rest = strings.TrimLeft(rest, " ")
		if sign == "" && rest != "" && (rest[0] == '-' || rest[0] == '+') {
			sign = rest[:1]
			rest = rest[1:]
		}
		if !startsNumber(rest) {
			return core.Amount{}, fmt.Errorf("invalid amount %q", s)
		}
		number, rest = takeNumber(rest)
		if rest != "" {
			return core.Amount{}, fmt.Errorf("invalid amount %q", s)
		}
	}

	if !grouped(number) {
		return core.Amount{}, fmt.Errorf("invalid amount %q: misplaced thousands separator", s)
	}

	if sign == "+" {
		sign = ""
	}
	amount, err := core.NewAmount(core.Commodity(commodity), sign+strings.ReplaceAll(number, ",", ""))
	if err != nil {
		return core.Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

func startsNumber(s string) bool {
	return s != "" && (unicode.IsDigit(rune(s[0])) || s[0] == '.')
}

func takeNumber(s string) (string, string) {
	i := 0
	for i < len(s) && (unicode.IsDigit(rune(s[i])) || s[i] == '.' || s[i] == ',') {
		i++
	}
	return s[:i], s[i:]
}

// grouped reports whether the commas in number split the integer part into
// groups of three digits, as in "1,234,567.89".
func grouped(number string) bool {
	if !strings.Contains(number, ",") {
		return true
	}
	integer, fraction, _ := strings.Cut(number, ".")
	if strings.Contains(fraction, ",") {
		return false
	}
	groups := strings.Split(integer, ",")
	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

func takeCommodity(s string) (string, string) {
	for i, r := range s {
		if unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' || r == '+' || r == '.' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
