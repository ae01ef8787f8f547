// Package format renders values the way the product displays them:
// Brazilian currency, dates and month names.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Currency renders a value as Brazilian reais, e.g. "R$ 1.234,56"
func Currency(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, b.String(), fracPart)
}

// Date renders a date as dd/mm/yyyy
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// MonthName returns the Portuguese name of a 1-based month, empty for
// out-of-range input
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
