package currency

import (
	"fmt"
	"math"
	"strings"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// Format renders a whole-unit price the way results are displayed, e.g.
// "$1,234" or "CHF 1,234" for currencies without a known symbol.
func Format(amount float64, code string) string {
	if math.Round(amount) < 0 {
		return "-" + Symbol(code) + Number(-amount)
	}
	return Symbol(code) + Number(amount)
}

// Number rounds amount to whole units and groups thousands with commas.
func Number(amount float64) string {
	rounded := math.Round(amount)
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	formatted := addThousandsSeparator(fmt.Sprintf("%.0f", rounded), ",")
	if negative {
		return "-" + formatted
	}
	return formatted
}

// Symbol returns the display prefix for a currency code.
func Symbol(code string) string {
	code = strings.ToUpper(code)
	if code == "" {
		code = "USD"
	}
	if sym, ok := symbols[code]; ok {
		return sym
	}
	return code + " "
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
