package compose

import (
	"github.com/npillmayer/invoicer/finance"
	"github.com/npillmayer/invoicer/i18n"
	"github.com/npillmayer/invoicer/layout"
)

// header pairs the logo with the document title, number and dates.
func (b *builder) header() *layout.TableBlock {
	logo := layout.Cell{Align: layout.Start}
	if l := b.rec.Logo; l != nil && len(l.Data) > 0 {
		logo.Image = &layout.Image{
			Name:   l.Name,
			Data:   l.Data,
			Width:  layout.LogoSize,
			Height: layout.LogoSize,
		}
	}
	gray := layout.TextStyle{Color: layout.Gray}
	info := layout.Cell{
		Align: layout.End,
		Lines: []layout.Line{
			layout.NewLine(layout.Span{Text: b.title(), Style: layout.TextStyle{
				Size:  layout.TitleSize,
				Color: b.accent,
				Bold:  true,
			}}),
			b.labelled(i18n.Number, b.rec.Number, gray),
			b.labelled(i18n.Date, b.issued(), gray),
			b.labelled(i18n.DueDate, b.rec.Due.Display(), gray),
		},
	}
	return &layout.TableBlock{
		Name:   "header",
		Widths: []float64{1, 1},
		Rows:   []layout.Row{{Kind: layout.DataRow, Cells: []layout.Cell{logo, info}}},
		Style:  layout.TableStyle{Padding: 3},
	}
}

// parties places supplier and customer side by side. The customer's tax
// ID is not printed.
func (b *builder) parties() *layout.TableBlock {
	body := layout.TextStyle{}
	heading := layout.TextStyle{Color: b.accent, Bold: true}
	s, c := b.rec.Supplier, b.rec.Customer
	supplier := []layout.Line{
		layout.NewLine(
			layout.Span{Text: b.label(i18n.From), Style: heading},
			layout.Span{Text: b.punct(":"), Style: heading},
		),
		layout.NewLine(layout.Span{Text: b.shape(s.Name), Style: body}),
	}
	supplier = append(supplier, b.lines(s.Address, body)...)
	supplier = append(supplier,
		b.labelled(i18n.TaxID, s.TaxID, body),
		b.labelled(i18n.Mobile, s.Mobile, body),
		b.labelled(i18n.Email, s.Email, body),
	)
	customer := []layout.Line{
		layout.NewLine(
			layout.Span{Text: b.label(i18n.To), Style: heading},
			layout.Span{Text: b.punct(":"), Style: heading},
		),
		layout.NewLine(layout.Span{Text: b.shape(c.Name), Style: body}),
	}
	customer = append(customer, b.lines(c.Address, body)...)
	return &layout.TableBlock{
		Name:   "parties",
		Widths: []float64{1, 1},
		Rows: []layout.Row{{Kind: layout.DataRow, Cells: []layout.Cell{
			{Lines: supplier, Align: layout.Start},
			{Lines: customer, Align: layout.Start},
		}}},
		Style: layout.TableStyle{Padding: 3, BottomPadding: 20},
	}
}

// heading creates a sub-heading in the accent color, optionally followed
// by a colon.
func (b *builder) heading(name string, k i18n.Key, colon bool) *layout.TextBlock {
	style := layout.TextStyle{Size: layout.HeadingSize, Color: b.accent, Bold: true}
	line := layout.NewLine(layout.Span{Text: b.label(k), Style: style})
	if colon {
		line.Spans = append(line.Spans, layout.Span{Text: b.punct(":"), Style: style})
	}
	return &layout.TextBlock{Name: name, Lines: []layout.Line{line}, Align: layout.Start, SpaceAfter: 10}
}

var itemColumns = [...]i18n.Key{
	i18n.Description, i18n.Quantity, i18n.UnitPrice,
	i18n.VATRate, i18n.VATAmount, i18n.Total,
}

var itemWidths = []float64{0.30, 0.10, 0.15, 0.13, 0.15, 0.17}

// items creates the item table: a repeating header row, one row per line
// item and three total rows.
func (b *builder) items() *layout.TableBlock {
	headStyle := layout.TextStyle{Size: layout.TableHeadSize, Color: layout.WhiteSmoke}
	header := layout.Row{Kind: layout.HeaderRow}
	for _, k := range itemColumns {
		header.Cells = append(header.Cells, layout.Cell{
			Align: layout.Center,
			Lines: []layout.Line{layout.NewLine(layout.Span{Text: b.label(k), Style: headStyle})},
		})
	}
	rows := []layout.Row{header}
	for _, item := range b.rec.Items {
		l := finance.ComputeLine(item)
		rows = append(rows, layout.Row{Kind: layout.DataRow, Cells: []layout.Cell{
			{Align: layout.Start, Lines: b.lines(item.Description, layout.TextStyle{})},
			numeric(finance.Quantity(item.Quantity)),
			numeric(finance.Amount(item.UnitPrice)),
			numeric(finance.Rate(item.VATRate)),
			numeric(finance.Amount(l.VAT)),
			numeric(finance.Amount(l.Total)),
		}})
	}
	totals := finance.ComputeTotals(b.rec.Items)
	rows = append(rows,
		b.totalRow(i18n.Subtotal, finance.Amount(totals.Subtotal)),
		b.totalRow(i18n.TotalVAT, finance.Amount(totals.VAT)),
		b.totalRow(i18n.Total, finance.Amount(totals.Grand)),
	)
	return &layout.TableBlock{
		Name:         "items",
		Widths:       itemWidths,
		Rows:         rows,
		RepeatHeader: true,
		Style: layout.TableStyle{
			Padding:       3,
			HeaderFill:    layout.Color(b.accent),
			HeaderPadding: 9,
			Grid:          layout.Color(layout.GridGray),
			Rule:          layout.Color(b.accent),
			RuleColumns:   2,
		},
	}
}

// numeric creates a cell for a formatted number. Numbers are not shaped.
func numeric(s string) layout.Cell {
	return layout.Cell{Align: layout.End, Lines: []layout.Line{layout.NewLine(layout.Span{Text: s})}}
}

func (b *builder) totalRow(k i18n.Key, value string) layout.Row {
	cells := make([]layout.Cell, len(itemColumns))
	cells[4] = layout.Cell{Align: layout.End, Lines: []layout.Line{layout.NewLine(
		layout.Span{Text: b.label(k)},
		layout.Span{Text: b.punct(":")},
	)}}
	cells[5] = numeric(value)
	return layout.Row{Kind: layout.TotalRow, Cells: cells}
}

// terms creates the optional trailing blocks. Absent fields produce no
// blocks at all.
func (b *builder) terms() []layout.Block {
	var blocks []layout.Block
	if b.rec.PaymentTerms != "" {
		blocks = append(blocks,
			spacer("payment-space", 20),
			b.heading("payment-terms-label", i18n.PaymentTerms, true),
			&layout.TextBlock{Name: "payment-terms", Lines: b.lines(b.rec.PaymentTerms, layout.TextStyle{})},
		)
	}
	if b.rec.DeliveryTerms != "" {
		blocks = append(blocks,
			spacer("delivery-space", 10),
			b.heading("delivery-terms-label", i18n.DeliveryTerms, true),
			&layout.TextBlock{Name: "delivery-terms", Lines: b.lines(b.rec.DeliveryTerms, layout.TextStyle{})},
		)
	}
	if b.rec.AcceptChecks {
		blocks = append(blocks,
			spacer("checks-space", 10),
			&layout.TextBlock{Name: "accept-checks", Lines: []layout.Line{layout.NewLine(
				layout.Span{Text: b.label(i18n.AcceptChecks), Style: layout.TextStyle{Bold: true}},
				layout.Span{Text: " "},
				layout.Span{Text: b.label(i18n.Yes)},
			)}},
		)
	}
	return blocks
}
