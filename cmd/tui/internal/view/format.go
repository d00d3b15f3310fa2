package view

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a decimal amount with two fraction digits.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
