package document

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/invoicer/bidi"
	"github.com/shopspring/decimal"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		lang  Language
	}{
		{"en", English},
		{"en-US", English},
		{"fr", French},
		{"fr-CA", French},
		{"ar", Arabic},
		{"ar-SA", Arabic},
	}
	for _, test := range tests {
		l, err := ParseLanguage(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.input, err)
			continue
		}
		if l != test.lang {
			t.Errorf("%q: expected %v, have %v", test.input, test.lang, l)
		}
	}
	if _, err := ParseLanguage("de"); err == nil {
		t.Errorf("expected German to be rejected")
	}
	if _, err := ParseLanguage("%%"); err == nil {
		t.Errorf("expected malformed tag to be rejected")
	}
}

func TestDirection(t *testing.T) {
	if Arabic.Direction() != bidi.RightToLeft {
		t.Errorf("Arabic should be right-to-left")
	}
	if French.Direction() != bidi.LeftToRight || English.Direction() != bidi.LeftToRight {
		t.Errorf("Latin languages should be left-to-right")
	}
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	if err != nil {
		t.Fatal(err)
	}
	if d.Display() != "19/10/2026" {
		t.Errorf("expected display form 19/10/2026, have %s", d.Display())
	}
	if d.String() != "2026-10-19" {
		t.Errorf("expected text form 2026-10-19, have %s", d.String())
	}
	var zero Date
	if !zero.IsZero() || zero.Display() != "" {
		t.Errorf("zero date should display empty")
	}
	if _, err := ParseDate("19.10.2026"); err == nil {
		t.Errorf("expected error for malformed date")
	}
}

func TestRGB(t *testing.T) {
	c, err := ParseRGB("#1a237e")
	if err != nil {
		t.Fatal(err)
	}
	if c != DefaultAccent {
		t.Errorf("expected %v, have %v", DefaultAccent, c)
	}
	for _, bad := range []string{"1a237e", "#1a23", "#gggggg"} {
		if _, err := ParseRGB(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

const sampleJSON = `{
	"kind": "quote",
	"number": "Q-7",
	"date": "2026-10-19",
	"supplier": {"name": "Neuratech Solutions", "address": "30 rue 6667", "tax_id": "122344"},
	"customer": {"name": "ACME"},
	"items": [{"description": "Consulting", "quantity": 3, "unit_price": "10.00", "vat_rate": 19}],
	"language": "fr",
	"accent": "#ff0000"
}`

func TestDecodeJSON(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(sampleJSON), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Kind != Quote || rec.Language != French || rec.Number != "Q-7" {
		t.Errorf("unexpected record header %v %v %q", rec.Kind, rec.Language, rec.Number)
	}
	if !rec.Due.IsZero() {
		t.Errorf("due date should be absent")
	}
	if len(rec.Items) != 1 || !rec.Items[0].UnitPrice.Equal(decimal.NewFromInt(10)) {
		t.Errorf("unexpected items %v", rec.Items)
	}
	if rec.AccentColor() != (RGB{0xff, 0, 0}) {
		t.Errorf("unexpected accent %v", rec.AccentColor())
	}
}

func TestClone(t *testing.T) {
	rec := &Record{Items: []LineItem{{Description: "a", Quantity: 1}}, Logo: &Image{Data: []byte{1}}}
	c := rec.Clone()
	c.Items[0].Description = "b"
	c.Logo.Data[0] = 2
	if rec.Items[0].Description != "a" || rec.Logo.Data[0] != 1 {
		t.Errorf("clone shares state with original")
	}
	if (&Record{}).AccentColor() != DefaultAccent {
		t.Errorf("expected default accent")
	}
}
