package services

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBRL formats an amount in Brazilian Real notation: "R$ 1.234,56".
// Thousands are grouped with "." and the decimal separator is ",". The
// result always carries exactly 2 decimal places. The same formatting is
// applied to unit prices, line totals and the grand total.
func FormatBRL(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "R$ " + groupThousands(intPart) + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts "." separators every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}

// FormatQty renders a quantity with the fewest digits needed ("28", "39.6"),
// followed by the optional unit label.
func FormatQty(qty float64, unit string) string {
	s := strconv.FormatFloat(qty, 'f', -1, 64)
	if unit != "" {
		return s + " " + unit
	}
	return s
}
