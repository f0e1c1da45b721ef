package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+5582999998888"))
	assert.True(t, ValidatePhone("(82) 99999-8888"))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone("0"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5582999998888", NormalizePhone("+55 (82) 99999-8888"))
	assert.Equal(t, "123", NormalizePhone("1a2b3c"))
}

func TestValidateBillingDay(t *testing.T) {
	assert.True(t, ValidateBillingDay(1))
	assert.True(t, ValidateBillingDay(31))
	assert.False(t, ValidateBillingDay(0))
	assert.False(t, ValidateBillingDay(32))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer", "150", "150.00"},
		{"dot decimal", "99.9", "99.90"},
		{"brazilian notation", "1.234,56", "1234.56"},
		{"currency prefix", "R$ 99,90", "99.90"},
		{"rounds to two decimals", "10.005", "10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestParseAmountRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "abc", "-10", "R$ -5,00"} {
		_, err := ParseAmount(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestValidateSendTime(t *testing.T) {
	assert.True(t, ValidateSendTime("09:00"))
	assert.True(t, ValidateSendTime("23:59"))
	assert.False(t, ValidateSendTime("24:00"))
	assert.False(t, ValidateSendTime("9:00"))
	assert.False(t, ValidateSendTime("09:60"))
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 20, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, DaysBetween(start, end))
	assert.Equal(t, -5, DaysBetween(end, start))
	assert.Equal(t, 0, DaysBetween(start, start))
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)
	c := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameMonth(a, b))
	assert.False(t, SameMonth(a, c))
}
