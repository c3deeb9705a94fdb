package finance

import (
	"strconv"

	"github.com/npillmayer/invoicer/document"
	"github.com/shopspring/decimal"
)

// Line holds the derived figures of a single line item.
type Line struct {
	Subtotal decimal.Decimal // quantity × unit price
	VAT      decimal.Decimal // subtotal × rate / 100
	Total    decimal.Decimal // subtotal + VAT
}

// Totals holds the aggregate figures of a document.
type Totals struct {
	Subtotal decimal.Decimal
	VAT      decimal.Decimal
	Grand    decimal.Decimal
}

// ComputeLine derives subtotal, VAT amount and line total of item.
// Inputs are expected to be validated by the caller.
func ComputeLine(item document.LineItem) Line {
	sub := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	vat := sub.Mul(item.VATRate).Shift(-2)
	return Line{
		Subtotal: sub,
		VAT:      vat,
		Total:    sub.Add(vat),
	}
}

// ComputeTotals sums up the figures of all items. An empty list yields
// zero totals.
func ComputeTotals(items []document.LineItem) Totals {
	var t Totals
	for _, item := range items {
		l := ComputeLine(item)
		t.Subtotal = t.Subtotal.Add(l.Subtotal)
		t.VAT = t.VAT.Add(l.VAT)
	}
	t.Grand = t.Subtotal.Add(t.VAT)
	return t
}

// Amount formats d with two fractional digits.
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Rate formats a VAT rate as a percentage, e.g. "19%" or "5.5%".
func Rate(d decimal.Decimal) string {
	return d.String() + "%"
}

// Quantity formats a quantity.
func Quantity(n int) string {
	return strconv.Itoa(n)
}
