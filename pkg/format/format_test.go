package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Joaolrm/racha-do-mes-fe/pkg/format"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"zero", "0", "R$ 0,00"},
		{"cents only", "0.5", "R$ 0,50"},
		{"plain", "150", "R$ 150,00"},
		{"thousands", "1234.56", "R$ 1.234,56"},
		{"millions", "1234567.89", "R$ 1.234.567,89"},
		{"negative", "-987.6", "-R$ 987,60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Currency(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2026", format.Date(d))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janeiro", format.MonthName(1))
	assert.Equal(t, "Março", format.MonthName(3))
	assert.Equal(t, "Dezembro", format.MonthName(12))
	assert.Equal(t, "", format.MonthName(0))
	assert.Equal(t, "", format.MonthName(13))
}
