package document

import (
	"github.com/shopspring/decimal"
)

// Record is an invoice or a quote, ready to be turned into a document.
type Record struct {
	Kind          Kind       `json:"kind" toml:"kind"`
	Number        string     `json:"number" toml:"number"`
	Issued        Date       `json:"date" toml:"date"`
	Due           Date       `json:"due_date,omitempty" toml:"due_date"` // zero if absent
	Supplier      Party      `json:"supplier" toml:"supplier"`
	Customer      Party      `json:"customer" toml:"customer"`
	Items         []LineItem `json:"items" toml:"items"`
	PaymentTerms  string     `json:"payment_terms,omitempty" toml:"payment_terms"`
	DeliveryTerms string     `json:"delivery_terms,omitempty" toml:"delivery_terms"`
	AcceptChecks  bool       `json:"accept_checks" toml:"accept_checks"`
	Logo          *Image     `json:"logo,omitempty" toml:"logo"`
	Language      Language   `json:"language" toml:"language"`
	Accent        *RGB       `json:"accent,omitempty" toml:"accent"` // nil selects DefaultAccent
}

// Party is the supplier or the customer of a record. The tax ID of a
// customer is not printed.
type Party struct {
	Name    string `json:"name" toml:"name"`
	Address string `json:"address" toml:"address"` // may span several lines
	TaxID   string `json:"tax_id,omitempty" toml:"tax_id"`
	Mobile  string `json:"mobile,omitempty" toml:"mobile"`
	Email   string `json:"email,omitempty" toml:"email"`
}

// LineItem is a single position of a record. VATRate is a percentage,
// i.e. 19 for 19%.
type LineItem struct {
	Description string          `json:"description" toml:"description"`
	Quantity    int             `json:"quantity" toml:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" toml:"unit_price"`
	VATRate     decimal.Decimal `json:"vat_rate" toml:"vat_rate"`
}

// Image is a logo in PNG or JPEG format. Name is informational; the
// command line tool uses it as a path to load Data from.
type Image struct {
	Name string `json:"name,omitempty" toml:"name"`
	Data []byte `json:"data,omitempty" toml:"-"`
}

// AccentColor returns the accent color of r or DefaultAccent.
func (r *Record) AccentColor() RGB {
	if r.Accent == nil {
		return DefaultAccent
	}
	return *r.Accent
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := *r
	c.Items = append([]LineItem(nil), r.Items...)
	if r.Logo != nil {
		logo := *r.Logo
		logo.Data = append([]byte(nil), r.Logo.Data...)
		c.Logo = &logo
	}
	if r.Accent != nil {
		accent := *r.Accent
		c.Accent = &accent
	}
	return &c
}
