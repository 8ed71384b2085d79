package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"12.3", "$12.30"},
		{"470", "$470.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.89", "$1,234,567.89"},
		{"-20", "-$20.00"},
		{"-1234.5", "-$1,234.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(dec(tt.in)), "input %s", tt.in)
	}
}

func TestFormatSignedMoney(t *testing.T) {
	assert.Equal(t, "+$1,380.00", FormatSignedMoney(dec("1380")))
	assert.Equal(t, "+$0.00", FormatSignedMoney(decimal.Zero))
	assert.Equal(t, "-$20.00", FormatSignedMoney(dec("-20")))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "94.0%", FormatPercent(0.94))
	assert.Equal(t, "104.0%", FormatPercent(1.04))
	assert.Equal(t, "0.0%", FormatPercent(0))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-09", FormatDate(d))
}

func TestFormatDaysLeft(t *testing.T) {
	assert.Equal(t, "12d left", FormatDaysLeft(12))
	assert.Equal(t, "due today", FormatDaysLeft(0))
	assert.Equal(t, "3d overdue", FormatDaysLeft(-3))
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", RenderSparkline(nil))
	assert.Equal(t, "▁█", RenderSparkline([]float64{0, 100}))

	line := RenderSparkline([]float64{10, 20, 30, 40})
	require.Len(t, []rune(line), 4)
}

func TestRenderHorizontalBar(t *testing.T) {
	assert.Equal(t, "██████████", RenderHorizontalBar(50, 50, 10))
	assert.Equal(t, "█████", RenderHorizontalBar(25, 50, 10))
	assert.Equal(t, "", RenderHorizontalBar(10, 0, 10))
}
