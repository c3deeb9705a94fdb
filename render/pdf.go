package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/npillmayer/invoicer/core"
	"github.com/npillmayer/invoicer/font"
	"github.com/npillmayer/invoicer/layout"
)

// Render paginates doc and serializes it to PDF. Identical documents and
// page configurations result in identical bytes.
func Render(doc *layout.Document, cfg PageConfig) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h, m := cfg.points()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(m, m, m)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(doc.Meta.Created)
	pdf.SetModificationDate(doc.Meta.Created)
	pdf.SetTitle(doc.Meta.Title, true)
	pdf.SetSubject(doc.Meta.Subject, true)
	pdf.SetKeywords(doc.Meta.Keywords, true)
	pdf.SetCreator(doc.Meta.Creator, true)
	c := newCanvas(pdf, doc.Font)
	plan, err := Paginate(doc, cfg, c)
	if err != nil {
		return nil, err
	}
	for _, page := range plan.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			c.draw(op)
		}
		if c.err != nil {
			return nil, c.err
		}
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	T().Debugf("render: %s, %d pages, %d bytes", doc.FileName, len(plan.Pages), buf.Len())
	return buf.Bytes(), nil
}

// canvas draws operations onto an FPDF document. It doubles as the
// Measurer for pagination, so widths are measured with the very fonts
// used for drawing.
type canvas struct {
	pdf    *fpdf.Fpdf
	font   font.Handle
	tr     func(string) string
	images map[*layout.Image]string
	err    error
}

func newCanvas(pdf *fpdf.Fpdf, h font.Handle) *canvas {
	c := &canvas{pdf: pdf, font: h, images: make(map[*layout.Image]string)}
	if h.Builtin {
		c.tr = pdf.UnicodeTranslatorFromDescriptor("") // cp1252
	} else {
		c.tr = func(s string) string { return s }
		pdf.AddUTF8FontFromBytes(h.Family, "", h.Regular)
		if len(h.Bold) > 0 {
			pdf.AddUTF8FontFromBytes(h.Family, "B", h.Bold)
		}
	}
	return c
}

func (c *canvas) setFont(st layout.TextStyle) {
	style := ""
	if st.Bold && c.font.HasBold() {
		style = "B"
	}
	c.pdf.SetFont(c.font.Family, style, st.FontSize())
}

// Width is part of interface Measurer.
func (c *canvas) Width(text string, st layout.TextStyle) float64 {
	if text == "" {
		return 0
	}
	c.setFont(st)
	return c.pdf.GetStringWidth(c.tr(text))
}

func (c *canvas) draw(op Op) {
	if c.err != nil {
		return
	}
	pdf := c.pdf
	switch op.Kind {
	case OpText:
		c.setFont(op.Style)
		pdf.SetTextColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
		pdf.SetXY(op.X, op.Y)
		pdf.CellFormat(op.W, op.H, c.tr(op.Text), "", 0, "L", false, 0, "")
	case OpFill:
		pdf.SetFillColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
		pdf.Rect(op.X, op.Y, op.W, op.H, "F")
	case OpFrame:
		pdf.SetDrawColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
		pdf.SetLineWidth(op.LineWidth)
		pdf.Rect(op.X, op.Y, op.W, op.H, "D")
	case OpLine:
		pdf.SetDrawColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
		pdf.SetLineWidth(op.LineWidth)
		pdf.Line(op.X, op.Y, op.X+op.W, op.Y+op.H)
	case OpImage:
		c.image(op)
	}
}

func (c *canvas) image(op Op) {
	name, ok := c.images[op.Image]
	opt := fpdf.ImageOptions{}
	if !ok {
		typ, err := layout.ImageFormat(op.Image.Data)
		if err != nil {
			c.err = &core.RenderError{Block: op.Block, Row: op.Row, Cause: core.CauseImage, Message: err.Error()}
			return
		}
		opt.ImageType = typ
		name = fmt.Sprintf("image-%d", len(c.images))
		c.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(op.Image.Data))
		if err := c.pdf.Error(); err != nil {
			c.err = &core.RenderError{Block: op.Block, Row: op.Row, Cause: core.CauseImage, Message: err.Error()}
			return
		}
		c.images[op.Image] = name
	}
	c.pdf.ImageOptions(name, op.X, op.Y, op.W, op.H, false, opt, 0, "")
}
