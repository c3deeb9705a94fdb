package i18n

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/invoicer/core"
	"github.com/npillmayer/invoicer/document"
)

func TestLabelCompleteness(t *testing.T) {
	for _, lang := range document.Languages {
		d := For(lang)
		for k := Key(0); k < NumKeys; k++ {
			if d.Lookup(k) == "" {
				t.Errorf("language %v: no label for key %s", lang, k)
			}
		}
		if err := Validate(d); err != nil {
			t.Errorf("language %v: %v", lang, err)
		}
	}
}

func TestLookup(t *testing.T) {
	if l := For(document.French).Lookup(Subtotal); l != "Sous Total" {
		t.Errorf("expected 'Sous Total', have %q", l)
	}
	if l := For(document.English).Lookup(VATRate); l != "VAT (%)" {
		t.Errorf("expected 'VAT (%%)', have %q", l)
	}
	if For(document.English).Lookup(NumKeys) != "" {
		t.Errorf("lookup of out-of-range key should be empty")
	}
}

func TestShapedLabels(t *testing.T) {
	ar := For(document.Arabic)
	if ar.Shaped(Total) == ar.Lookup(Total) {
		t.Errorf("Arabic labels should be shaped")
	}
	en := For(document.English)
	if en.Shaped(Total) != "Total" {
		t.Errorf("English labels should not change by shaping")
	}
	if msg := en.Messagef(MsgLogoTooLarge, "2MB"); msg != "The logo exceeds the maximum size of 2MB." {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestValidateMissingKey(t *testing.T) {
	d := New(document.English, map[Key]string{Number: "No."})
	err := Validate(d)
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, have %v", err)
	}
	if verr.Key != "labels.document_type" {
		t.Errorf("expected first missing key to be document_type, is %s", verr.Key)
	}
	if !strings.Contains(verr.Message, "document_type") {
		t.Errorf("message should name the key: %q", verr.Message)
	}
}

func TestKeyNames(t *testing.T) {
	k, ok := KeyByName("services_products")
	if !ok || k != ServicesProducts {
		t.Errorf("expected services_products to map to ServicesProducts")
	}
	if _, ok := KeyByName("nope"); ok {
		t.Errorf("unknown name should not resolve")
	}
}
