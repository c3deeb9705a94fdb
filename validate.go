package invoicer

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/npillmayer/invoicer/core"
	"github.com/npillmayer/invoicer/document"
	"github.com/npillmayer/invoicer/i18n"
	"github.com/npillmayer/invoicer/layout"
)

// Validate checks rec for an intent without generating a document. It
// returns a *core.ValidationError with a message in the record's language.
func (g *Generator) Validate(rec *document.Record, intent Intent) error {
	return g.validate(rec, i18n.For(rec.Language), intent)
}

func (g *Generator) validate(rec *document.Record, dict i18n.Dictionary, intent Intent) error {
	if err := i18n.Validate(dict); err != nil {
		return err
	}
	if intent == Download && len(rec.Items) == 0 {
		return invalid(dict, "items", i18n.MsgNoItems)
	}
	for i, item := range rec.Items {
		switch {
		case item.Quantity < 1:
			return invalid(dict, fmt.Sprintf("items[%d].quantity", i), i18n.MsgQuantity)
		case item.UnitPrice.IsNegative():
			return invalid(dict, fmt.Sprintf("items[%d].unit_price", i), i18n.MsgUnitPrice)
		case item.VATRate.IsNegative():
			return invalid(dict, fmt.Sprintf("items[%d].vat_rate", i), i18n.MsgVATRate)
		}
	}
	if rec.Logo == nil || len(rec.Logo.Data) == 0 {
		return nil
	}
	if g.maxLogo > 0 && int64(len(rec.Logo.Data)) > g.maxLogo {
		return invalid(dict, "logo", i18n.MsgLogoTooLarge, units.BytesSize(float64(g.maxLogo)))
	}
	if _, err := layout.ImageFormat(rec.Logo.Data); err != nil {
		CT().Debugf("logo %q rejected: %v", rec.Logo.Name, err)
		return invalid(dict, "logo", i18n.MsgLogoFormat)
	}
	return nil
}

func invalid(dict i18n.Dictionary, key string, msg i18n.Key, args ...interface{}) error {
	return &core.ValidationError{Key: key, Message: dict.Messagef(msg, args...)}
}
