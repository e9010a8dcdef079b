package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseUsers reads a display user count such as "890", "2.1k", "1,200" or
// "1.5M". Placeholders without digits ("Coming", "Soon", "") count as zero.
func ParseUsers(s string) (int, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimSuffix(s, "+")
	if !strings.ContainsAny(s, "0123456789") {
		return 0, nil
	}

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		mult = 1e3
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "m"), strings.HasSuffix(s, "M"):
		mult = 1e6
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid user count %q", s)
	}
	return int(n*mult + 0.5), nil
}

// FormatUsers renders n the way ParseUsers reads it back: round thousands
// and millions get a k or M suffix.
func FormatUsers(n int) string {
	switch {
	case n <= 0:
		return ""
	case n >= 1e6 && n%1e5 == 0:
		return strconv.FormatFloat(float64(n)/1e6, 'f', -1, 64) + "M"
	case n >= 1e3 && n%100 == 0:
		return strconv.FormatFloat(float64(n)/1e3, 'f', -1, 64) + "k"
	default:
		return strconv.Itoa(n)
	}
}
