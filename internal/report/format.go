// Package report renders backend payloads into HTML fragments. Renderers are
// pure: malformed-but-present data degrades to "N/A" or an omitted fragment,
// and only a completely absent payload yields an empty result.
package report

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// NotAvailable is the placeholder for missing or unparseable values.
const NotAvailable = "N/A"

// InvalidDate is the literal rendered for unparseable timestamps.
const InvalidDate = "Invalid Date"

// FormatNumber renders a tolerant number with a fixed count of decimals,
// or "N/A" when the value never parsed.
func FormatNumber(n models.Number, decimals int) string {
	if !n.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(n.Value, 'f', decimals, 64)
}

// FormatPercent renders a 0..1 confidence as a percentage with one decimal.
func FormatPercent(n models.Number) string {
	if !n.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(n.Value*100, 'f', 1, 64)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// FormatDate renders a timestamp as DD-MM-YYYY, or the literal
// "Invalid Date" for anything unparseable.
func FormatDate(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return InvalidDate
	}
	return t.Format("02-01-2006")
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatINR renders an amount as Indian rupees with en-IN digit grouping and
// no decimal places, e.g. 123456 -> "₹1,23,456".
func FormatINR(n models.Number) string {
	if !n.Valid {
		return NotAvailable
	}
	d := decimal.NewFromFloat(n.Value).Round(0)
	neg := d.IsNegative()
	digits := d.Abs().String()

	grouped := groupIndian(digits)
	if neg {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

// groupIndian applies the Indian numbering convention: the last three digits
// form one group, every group before that has two digits.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// listItem renders one "<p><strong>Label:</strong> value</p>" row, or an
// empty fragment when the value is missing.
func listItem(label, value, unit string) template.HTML {
	if value == "" || value == NotAvailable {
		return ""
	}
	return template.HTML(fmt.Sprintf(
		`<p><strong class="font-medium text-gray-800">%s:</strong> %s%s</p>`,
		template.HTMLEscapeString(label),
		template.HTMLEscapeString(value),
		template.HTMLEscapeString(unit)))
}

// breakLines escapes text and converts embedded line breaks to <br>.
func breakLines(text string) template.HTML {
	escaped := template.HTMLEscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\r\n", "<br>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}
