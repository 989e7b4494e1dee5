package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The backend's payloads are produced by a dynamically-typed service: the
// same field may arrive as a number or a numeric string, advice may be a
// list, a single error-like object, or absent, and report_data may be a JSON
// document or a string-encoded one. These variants are normalized here, at
// the decode boundary, so renderers never branch on runtime shape.

// Number is a tolerant numeric field. Valid is false for null, absent,
// non-numeric, or NaN input; renderers turn invalid numbers into "N/A".
type Number struct {
	Value float64
	Valid bool
}

// Num builds a valid Number, mostly for tests and fixtures.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.Value = v
	n.Valid = true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// AdviceList normalizes the three shapes detailed advice arrives in: an
// ordered list of sections, a single error-like object, or nothing at all.
type AdviceList struct {
	Items []AdviceItem
	// Object is true when the payload was a lone object rather than a
	// list; the crop renderer shows it as a plain error line.
	Object bool
}

func (a *AdviceList) UnmarshalJSON(b []byte) error {
	*a = AdviceList{}
	t := bytes.TrimSpace(b)
	if len(t) == 0 || string(t) == "null" {
		return nil
	}
	switch t[0] {
	case '[':
		var items []AdviceItem
		if err := json.Unmarshal(t, &items); err != nil {
			return nil
		}
		a.Items = items
	case '{':
		var item AdviceItem
		if err := json.Unmarshal(t, &item); err != nil {
			return nil
		}
		a.Items = []AdviceItem{item}
		a.Object = true
	case '"':
		// A flat string ("The plant appears healthy...") becomes one
		// untitled section.
		var s string
		if err := json.Unmarshal(t, &s); err != nil {
			return nil
		}
		if s != "" {
			a.Items = []AdviceItem{{Description: s}}
			a.Object = true
		}
	}
	return nil
}

// Empty reports whether there is nothing to render.
func (a AdviceList) Empty() bool {
	return len(a.Items) == 0
}

// AdviceText is advice that is either structured sections or pre-formatted
// text (the fertilizer plan and chat replies use both).
type AdviceText struct {
	Items []AdviceItem
	Text  string
	List  bool
}

func (a *AdviceText) UnmarshalJSON(b []byte) error {
	*a = AdviceText{}
	t := bytes.TrimSpace(b)
	if len(t) == 0 || string(t) == "null" {
		return nil
	}
	if t[0] == '[' {
		var items []AdviceItem
		if err := json.Unmarshal(t, &items); err != nil {
			return nil
		}
		a.Items = items
		a.List = true
		return nil
	}
	var s string
	if err := json.Unmarshal(t, &s); err != nil {
		// Unexpected shape; keep the raw text so something is shown.
		a.Text = string(t)
		return nil
	}
	a.Text = s
	return nil
}

// ReportPayload accepts report_data delivered either as a JSON document or
// as a JSON-encoded string and always yields the decoded report.
type ReportPayload struct {
	Report *FieldReport
}

func (p *ReportPayload) UnmarshalJSON(b []byte) error {
	*p = ReportPayload{}
	t := bytes.TrimSpace(b)
	if len(t) == 0 || string(t) == "null" {
		return nil
	}
	if t[0] == '"' {
		var encoded string
		if err := json.Unmarshal(t, &encoded); err != nil {
			return err
		}
		t = []byte(encoded)
	}
	var report FieldReport
	if err := json.Unmarshal(t, &report); err != nil {
		return err
	}
	p.Report = &report
	return nil
}
