// Package testutil provides utilities for testing.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/npillmayer/invoicer/document"
	"github.com/shopspring/decimal"
)

// ModuleRoot returns the root directory of the module.
func ModuleRoot() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// FindTestFont locates a font by name. It searches the testdata/fonts and
// fonts directories of the module. Returns "" if the font is not present.
func FindTestFont(name string) string {
	root := ModuleRoot()
	if root == "" {
		return ""
	}
	for _, dir := range []string{"testdata/fonts", "fonts", "testdata"} {
		p := filepath.Join(root, dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// MustFindTestFont is like FindTestFont but panics if the font is not found.
func MustFindTestFont(name string) string {
	path := FindTestFont(name)
	if path == "" {
		panic("test font not found: " + name)
	}
	return path
}

// ArabicTestFont is a TrueType font bundled with the module's test data. It
// carries the Arabic presentation forms produced by package shaping.
const ArabicTestFont = "DejaVuSansCondensed.ttf"

// ArabicFont returns the path of a font for right-to-left documents. It
// prefers Amiri-Regular.ttf if present and falls back to ArabicTestFont.
func ArabicFont() string {
	if path := FindTestFont("Amiri-Regular.ttf"); path != "" {
		return path
	}
	return MustFindTestFont(ArabicTestFont)
}

// SampleRecord returns a record with n line items of 3 × 10.00 at 19% VAT.
func SampleRecord(lang document.Language, n int) *document.Record {
	rec := &document.Record{
		Kind:   document.Invoice,
		Number: "2026-0042",
		Issued: document.Date{Year: 2026, Month: 10, Day: 19},
		Due:    document.Date{Year: 2026, Month: 11, Day: 18},
		Supplier: document.Party{
			Name:    "Neuratech Solutions",
			Address: "30 rue 6667\n1002 Tunis",
			TaxID:   "122344",
			Mobile:  "+216 20 000 000",
			Email:   "billing@neuratech.example",
		},
		Customer: document.Party{
			Name:    "ACME Corp.",
			Address: "1 Main Street",
			TaxID:   "never printed",
		},
		PaymentTerms:  "30 days net",
		DeliveryTerms: "On site",
		AcceptChecks:  true,
		Language:      lang,
	}
	if lang == document.Arabic {
		rec.Supplier.Name = "شركة نيوراتك"
		rec.Supplier.Address = "شارع الحبيب بورقيبة\nتونس"
		rec.Customer.Name = "مؤسسة الأفق"
		rec.Customer.Address = "صفاقس"
		rec.PaymentTerms = "الدفع خلال 30 يوما"
		rec.DeliveryTerms = "التسليم في الموقع"
	}
	for i := 0; i < n; i++ {
		desc := "Consulting, item " + strconv.Itoa(i+1)
		if lang == document.Arabic {
			desc = "خدمات استشارية " + strconv.Itoa(i+1)
		}
		rec.Items = append(rec.Items, document.LineItem{
			Description: desc,
			Quantity:    3,
			UnitPrice:   decimal.RequireFromString("10.00"),
			VATRate:     decimal.NewFromInt(19),
		})
	}
	return rec
}
