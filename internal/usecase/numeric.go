package usecase

import (
	"encoding/json"
	"strconv"
	"strings"
)

// parseAmount recovers a float from the heterogeneous numeric shapes baseline
// writers have produced over time: native numbers, json.Number, and strings
// with currency symbols, thousands separators or comma decimals.
//
// It never errors; ok=false means "not a number", which callers degrade from.
func parseAmount(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		return parseAmountString(n)
	}
	return 0, false
}

func parseAmountString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Strip currency markers writers are known to prepend.
	for _, prefix := range []string{"$", "USD", "EUR", "CLP", "MXN", "COP", "€"} {
		s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))

	// "1.234,56" (comma decimal) vs "1,234.56" (comma thousands).
	if strings.Contains(s, ",") {
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseMonthIndex parses a 1-based contract month index; anything that is not
// a positive integer comes back as ok=false.
func parseMonthIndex(v interface{}) (int, bool) {
	f, ok := parseAmount(v)
	if !ok || f < 1 {
		return 0, false
	}
	return int(f), true
}

func parseBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes", "si", "sí":
			return true
		}
	case float64:
		return b != 0
	}
	return false
}
