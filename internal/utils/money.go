package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatVND renders an integer amount with dot thousand separators, e.g. "45.000 ₫".
func FormatVND(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%s ₫", sign, formatThousand(amount))
}

// ParseVND parses "45.000 ₫", "45,000" or "45000" into an integer amount.
func ParseVND(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSuffix(s, "₫")
	s = strings.TrimSuffix(s, "vnd")
	replacer := strings.NewReplacer(".", "", ",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid VND amount")
	}
	return strconv.ParseInt(s, 10, 64)
}

// IsThousandMultiple reports whether amount is a non-negative multiple of 1000.
func IsThousandMultiple(amount int64) bool {
	return amount >= 0 && amount%1000 == 0
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
