package render

import (
	"github.com/npillmayer/invoicer/core"
	"github.com/npillmayer/invoicer/document"
	"github.com/npillmayer/invoicer/layout"
)

// OpKind is the type of a drawing operation.
type OpKind int8

// Drawing operations
const (
	OpText  OpKind = iota // text at X,Y within a box of W×H
	OpFill                // filled rectangle
	OpFrame               // stroked rectangle
	OpLine                // line from X,Y to X+W,Y+H
	OpImage               // image scaled to W×H
)

// Op is a drawing operation in page coordinates, in points, with the
// origin at the top left corner of the page.
type Op struct {
	Kind       OpKind
	Block      string // ID of the originating block
	Row        int    // table row, or -1
	X, Y, W, H float64
	Text       string
	Style      layout.TextStyle
	Color      document.RGB // fill or stroke color
	LineWidth  float64
	Image      *layout.Image
}

// Page is the display list of a single page.
type Page struct {
	Ops []Op
}

// Plan is the result of pagination.
type Plan struct {
	Width, Height float64 // page size in points
	Pages         []Page
}

// Paginate distributes the blocks of doc onto pages of geometry cfg. It
// returns a *core.RenderError if a table row or a line does not fit onto an
// empty page.
func Paginate(doc *layout.Document, cfg PageConfig, m Measurer) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h, margin := cfg.points()
	p := &paginator{
		m:      m,
		rtl:    doc.Direction.IsRTL(),
		left:   margin,
		top:    margin,
		width:  w - 2*margin,
		bottom: h - margin,
		plan:   &Plan{Width: w, Height: h},
	}
	p.newPage()
	for _, b := range doc.Blocks {
		var err error
		switch b := b.(type) {
		case *layout.SpacerBlock:
			p.spacer(b)
		case *layout.TextBlock:
			err = p.text(b)
		case *layout.TableBlock:
			err = p.table(b)
		}
		if err != nil {
			return nil, err
		}
	}
	T().Debugf("render: %d blocks on %d pages", len(doc.Blocks), len(p.plan.Pages))
	return p.plan, nil
}

type paginator struct {
	m                        Measurer
	rtl                      bool
	left, top, width, bottom float64
	plan                     *Plan
	y                        float64
}

func (p *paginator) newPage() {
	p.plan.Pages = append(p.plan.Pages, Page{})
	p.y = p.top
}

func (p *paginator) emit(op Op) {
	page := &p.plan.Pages[len(p.plan.Pages)-1]
	page.Ops = append(page.Ops, op)
}

func (p *paginator) atTop() bool {
	return p.y == p.top
}

func (p *paginator) spacer(b *layout.SpacerBlock) {
	if p.atTop() && len(p.plan.Pages) > 1 {
		return
	}
	p.y += b.Height
	if p.y > p.bottom {
		p.newPage()
	}
}

func (p *paginator) text(b *layout.TextBlock) error {
	for _, l := range b.Lines {
		for _, vl := range wrapLine(l, p.width, p.rtl, p.m) {
			if vl.height > p.bottom-p.top {
				return &core.RenderError{Block: b.Name, Row: -1, Cause: core.CauseOverflow,
					Message: "line does not fit onto a page"}
			}
			if p.y+vl.height > p.bottom {
				p.newPage()
			}
			p.emitLine(b.Name, -1, vl, p.left, p.y, p.width, b.Align)
			p.y += vl.height
		}
	}
	p.y += b.SpaceAfter
	return nil
}

// emitLine places the spans of a line into the box starting at x with
// width w.
func (p *paginator) emitLine(block string, row int, vl visualLine, x, y, w float64, a layout.Align) {
	x += offset(physical(a, p.rtl), vl.width, w)
	for _, s := range visualOrder(vl.spans, p.rtl) {
		sw := p.m.Width(s.Text, s.Style)
		if s.Text != "" {
			p.emit(Op{Kind: OpText, Block: block, Row: row, X: x, Y: y, W: sw, H: vl.height,
				Text: s.Text, Style: s.Style, Color: s.Style.Color})
		}
		x += sw
	}
}

// --- Tables ----------------------------------------------------------------

type cellLayout struct {
	lines  []visualLine
	height float64
}

type rowLayout struct {
	index  int
	row    layout.Row
	cells  []cellLayout
	height float64
}

func (p *paginator) table(b *layout.TableBlock) error {
	widths := b.ColumnWidths(p.width)
	xs := p.columnX(widths)
	rows := make([]rowLayout, len(b.Rows))
	for i := range b.Rows {
		rows[i] = p.layoutRow(b, i, widths)
	}
	nh := b.HeaderRows()
	headH := 0.0
	for _, r := range rows[:nh] {
		headH += r.height
	}
	avail := p.bottom - p.top
	for i, r := range rows {
		need := r.height
		if i >= nh && b.RepeatHeader {
			need += headH
		}
		if need > avail {
			return &core.RenderError{Block: b.Name, Row: i, Cause: core.CauseOverflow,
				Message: "row does not fit onto an empty page"}
		}
	}
	ruled := false
	for i, r := range rows {
		if i < nh {
			if i == 0 && !p.atTop() {
				keep := headH
				if nh < len(rows) {
					keep += rows[nh].height
				}
				if p.y+keep > p.bottom {
					p.newPage()
				}
			}
			p.emitRow(b, r, xs, widths)
			continue
		}
		if p.y+r.height > p.bottom {
			p.newPage()
			if b.RepeatHeader {
				for _, hr := range rows[:nh] {
					p.emitRow(b, hr, xs, widths)
				}
			}
		}
		if r.row.Kind == layout.TotalRow && !ruled {
			p.emitRule(b, i, xs, widths)
			ruled = true
		}
		p.emitRow(b, r, xs, widths)
	}
	return nil
}

// columnX returns the left edge of every column. Columns of right-to-left
// tables start at the right margin.
func (p *paginator) columnX(widths []float64) []float64 {
	xs := make([]float64, len(widths))
	x := p.left
	if p.rtl {
		x = p.left + p.width
	}
	for i, w := range widths {
		if p.rtl {
			x -= w
			xs[i] = x
		} else {
			xs[i] = x
			x += w
		}
	}
	return xs
}

func (p *paginator) padding(b *layout.TableBlock, kind layout.RowKind) (pad, extra float64) {
	pad = b.Style.Padding
	if kind == layout.HeaderRow {
		return pad, b.Style.HeaderPadding
	}
	return pad, b.Style.BottomPadding
}

func (p *paginator) layoutRow(b *layout.TableBlock, i int, widths []float64) rowLayout {
	row := b.Rows[i]
	pad, extra := p.padding(b, row.Kind)
	rl := rowLayout{index: i, row: row, cells: make([]cellLayout, len(row.Cells))}
	content := 0.0
	for c, cell := range row.Cells {
		if c >= len(widths) {
			break
		}
		inner := widths[c] - 2*pad
		var cl cellLayout
		if cell.Image != nil {
			cl.height = cell.Image.Height
		}
		for _, l := range cell.Lines {
			for _, vl := range wrapLine(l, inner, p.rtl, p.m) {
				cl.lines = append(cl.lines, vl)
				cl.height += vl.height
			}
		}
		rl.cells[c] = cl
		content = max(content, cl.height)
	}
	rl.height = content + 2*pad + extra
	return rl
}

func (p *paginator) emitRow(b *layout.TableBlock, r rowLayout, xs, widths []float64) {
	st := b.Style
	if r.row.Kind == layout.HeaderRow && st.HeaderFill != nil {
		p.emit(Op{Kind: OpFill, Block: b.Name, Row: r.index, X: p.left, Y: p.y,
			W: sum(widths), H: r.height, Color: *st.HeaderFill})
	}
	if st.Grid != nil && r.row.Kind != layout.TotalRow {
		for c := range widths {
			p.emit(Op{Kind: OpFrame, Block: b.Name, Row: r.index, X: xs[c], Y: p.y,
				W: widths[c], H: r.height, Color: *st.Grid, LineWidth: layout.GridWidth})
		}
	}
	pad, _ := p.padding(b, r.row.Kind)
	for c, cl := range r.cells {
		if c >= len(widths) {
			break
		}
		cell := r.row.Cells[c]
		x, w, y := xs[c]+pad, widths[c]-2*pad, p.y+pad
		if img := cell.Image; img != nil {
			ix := x + offset(physical(cell.Align, p.rtl), img.Width, w)
			p.emit(Op{Kind: OpImage, Block: b.Name, Row: r.index, X: ix, Y: y,
				W: img.Width, H: img.Height, Image: img})
			y += img.Height
		}
		for _, vl := range cl.lines {
			p.emitLine(b.Name, r.index, vl, x, y, w, cell.Align)
			y += vl.height
		}
	}
	p.y += r.height
}

// emitRule draws the rule above the total rows, spanning the trailing
// columns of the table.
func (p *paginator) emitRule(b *layout.TableBlock, row int, xs, widths []float64) {
	st := b.Style
	n := st.RuleColumns
	if st.Rule == nil || n <= 0 {
		return
	}
	if n > len(widths) {
		n = len(widths)
	}
	x0, x1 := p.left+p.width, p.left
	for c := len(widths) - n; c < len(widths); c++ {
		x0 = min(x0, xs[c])
		x1 = max(x1, xs[c]+widths[c])
	}
	p.emit(Op{Kind: OpLine, Block: b.Name, Row: row, X: x0, Y: p.y, W: x1 - x0,
		Color: *st.Rule, LineWidth: layout.RuleWidth})
}

func sum(f []float64) float64 {
	s := 0.0
	for _, x := range f {
		s += x
	}
	return s
}
