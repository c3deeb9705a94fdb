package i18n

// Key identifies a label or message.
type Key int

// Label keys used on documents.
const (
	DocumentType Key = iota
	Number
	Date
	DueDate
	From
	To
	TaxID
	Mobile
	Email
	Details
	Description
	Quantity
	UnitPrice
	VATRate
	VATAmount
	Total
	Subtotal
	TotalVAT
	PaymentTerms
	DeliveryTerms
	AcceptChecks
	ServicesProducts
	Invoice
	Quote
	Yes
	// messages of validation and render errors
	MsgNoItems
	MsgQuantity
	MsgUnitPrice
	MsgVATRate
	MsgMissingLabel
	MsgLogoTooLarge
	MsgRowTooTall
	MsgTextTooTall
	MsgLogoFormat
	NumKeys // number of keys; not a key
)

var keyNames = [...]string{
	DocumentType:     "document_type",
	Number:           "number",
	Date:             "date",
	DueDate:          "due_date",
	From:             "from",
	To:               "to",
	TaxID:            "tax_id",
	Mobile:           "mobile",
	Email:            "email",
	Details:          "details",
	Description:      "description",
	Quantity:         "quantity",
	UnitPrice:        "unit_price",
	VATRate:          "vat_rate",
	VATAmount:        "vat_amount",
	Total:            "total",
	Subtotal:         "subtotal",
	TotalVAT:         "total_vat",
	PaymentTerms:     "payment_terms",
	DeliveryTerms:    "delivery_terms",
	AcceptChecks:     "accept_checks",
	ServicesProducts: "services_products",
	Invoice:          "invoice",
	Quote:            "quote",
	Yes:              "yes",
	MsgNoItems:       "msg_no_items",
	MsgQuantity:      "msg_quantity",
	MsgUnitPrice:     "msg_unit_price",
	MsgVATRate:       "msg_vat_rate",
	MsgMissingLabel:  "msg_missing_label",
	MsgLogoTooLarge:  "msg_logo_too_large",
	MsgRowTooTall:    "msg_row_too_tall",
	MsgTextTooTall:   "msg_text_too_tall",
	MsgLogoFormat:    "msg_logo_format",
}

// compile-time check: one name per key
const _ = uint(len(keyNames) - int(NumKeys))
const _ = uint(int(NumKeys) - len(keyNames))

func (k Key) String() string {
	if k < 0 || k >= NumKeys {
		return "?"
	}
	return keyNames[k]
}

// KeyByName returns the key for a name as returned by Key.String.
func KeyByName(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), true
		}
	}
	return NumKeys, false
}
