package web

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders a numeric value with thousands separators for
// display. Values that do not look numeric come back unchanged, so templates
// can pass "N/A" and friends straight through.
func FormatCurrency(v any) string {
	switch n := v.(type) {
	case int:
		return humanize.Comma(int64(n))
	case int64:
		return humanize.Comma(n)
	case float64:
		return humanize.Commaf(n)
	case string:
		trimmed := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return humanize.Comma(i)
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return humanize.Commaf(f)
		}
		return n
	default:
		return fmt.Sprint(v)
	}
}
