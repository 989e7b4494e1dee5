package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "31.50", FormatNumber(models.Num(31.5), 2))
	assert.Equal(t, "2600", FormatNumber(models.Num(2600), 0))
	assert.Equal(t, "N/A", FormatNumber(models.Number{}, 2))
}

func TestFormatPercentScalesConfidence(t *testing.T) {
	assert.Equal(t, "98.7", FormatPercent(models.Num(0.98654)))
	assert.Equal(t, "100.0", FormatPercent(models.Num(1)))
	assert.Equal(t, "0.0", FormatPercent(models.Num(0)))
	assert.Equal(t, "N/A", FormatPercent(models.Number{}))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-06-14T09:30:00", "14-06-2025"},
		{"2025-06-14T09:30:00Z", "14-06-2025"},
		{"2025-06-14 09:30:00", "14-06-2025"},
		{"2025-06-14", "14-06-2025"},
		{"not a date", "Invalid Date"},
		{"", "Invalid Date"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatDate(tc.in), "input %q", tc.in)
	}
}

func TestFormatINRIndianGrouping(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{99999, "₹99,999"},
		{100000, "₹1,00,000"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{123456789, "₹12,34,56,789"},
		{123456.6, "₹1,23,457"},
		{-54321, "-₹54,321"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatINR(models.Num(tc.in)), "input %v", tc.in)
	}
	assert.Equal(t, "N/A", FormatINR(models.Number{}))
}

func TestListItemSkipsMissingValues(t *testing.T) {
	assert.Empty(t, listItem("Soil Type", "", ""))
	assert.Empty(t, listItem("Soil Type", "N/A", ""))
	assert.Contains(t, string(listItem("Soil Type", "Alluvial", "")), "Alluvial")
}

func TestBreakLinesEscapesThenBreaks(t *testing.T) {
	got := string(breakLines("a<b\nc\r\nd"))
	assert.Equal(t, "a&lt;b<br>c<br>d", got)
}
