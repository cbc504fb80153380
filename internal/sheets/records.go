package sheets

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one worksheet row keyed by column header. Cell values are int64,
// float64 or string depending on what the cell looked like; the typed
// accessors below apply the defaulting rules so aggregation code never has to
// coerce per field.
type Record map[string]any

// Str returns the value under key formatted as a string, or def when the
// column is absent.
func (r Record) Str(key, def string) string {
	v, ok := r[key]
	if !ok {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the value under key as an int. Absent, non-numeric or
// fractional-string values become 0.
func (r Record) Int(key string) int {
	v, ok := r[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// Float returns the value under key as a float64, defaulting to 0.
func (r Record) Float(key string) float64 {
	v, ok := r[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// coerceCell mimics the auto-coercion spreadsheet clients apply to formatted
// cell values: integer-looking strings become int64, decimal-looking strings
// become float64, everything else stays a string.
func coerceCell(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return s
}

// RecordsFromValues converts a raw value grid into Records. The first row is
// the header row; short data rows leave their trailing columns absent and
// cells beyond the header width are dropped.
func RecordsFromValues(values [][]any) []Record {
	if len(values) < 1 {
		return nil
	}

	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(h))
	}

	records := make([]Record, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := make(Record, len(headers))
		for i, cell := range row {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			rec[headers[i]] = coerceCell(cell)
		}
		records = append(records, rec)
	}
	return records
}
