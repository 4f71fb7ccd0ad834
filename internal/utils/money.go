package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDecimal reads a money field the way the dashboard always has:
// a value that does not parse counts as zero instead of failing the action.
func ParseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
