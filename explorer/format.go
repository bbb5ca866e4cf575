package explorer

import (
	"fmt"
	"strings"
)

// FormatAmount formats a number with thousands separators and exactly two
// decimal places (e.g., 1234567.8 -> "1,234,567.80"), the notation the KPI
// cards and tables display.
func FormatAmount(v float64) string {
	negative := false
	if v < 0 {
		negative = true
		v = -v
	}

	raw := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(raw, ".", 2)
	result := groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}
