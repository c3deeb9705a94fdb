package layout

import (
	"strings"
	"time"

	"github.com/npillmayer/invoicer/bidi"
	"github.com/npillmayer/invoicer/font"
)

// BlockKind discriminates the block variants.
type BlockKind int8

// Kinds of blocks
const (
	TextKind BlockKind = iota
	TableKind
	SpacerKind
)

func (k BlockKind) String() string {
	switch k {
	case TableKind:
		return "table"
	case SpacerKind:
		return "spacer"
	}
	return "text"
}

// Block is one of *TextBlock, *TableBlock or *SpacerBlock.
type Block interface {
	Kind() BlockKind
	ID() string
}

// Span is a run of text with uniform style. Text is shaped and in visual
// order.
type Span struct {
	Text  string
	Style TextStyle
}

// Line is a paragraph of spans. Spans are in logical order and are placed
// from the start edge. The renderer wraps lines wider than the available
// space at spaces.
type Line struct {
	Spans []Span
}

// NewLine creates a line from spans.
func NewLine(spans ...Span) Line {
	return Line{Spans: spans}
}

// Text concatenates the text of all spans in logical order.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Height is the height of the tallest span.
func (l Line) Height() float64 {
	h := TextStyle{}.LineHeight()
	for i, s := range l.Spans {
		if i == 0 || s.Style.LineHeight() > h {
			h = s.Style.LineHeight()
		}
	}
	return h
}

// TextBlock is a paragraph of lines.
type TextBlock struct {
	Name       string
	Lines      []Line
	Align      Align
	SpaceAfter float64
}

func (b *TextBlock) Kind() BlockKind { return TextKind }
func (b *TextBlock) ID() string      { return b.Name }

// SpacerBlock is vertical white space.
type SpacerBlock struct {
	Name   string
	Height float64
}

func (b *SpacerBlock) Kind() BlockKind { return SpacerKind }
func (b *SpacerBlock) ID() string      { return b.Name }

// RowKind tells how a table row is decorated.
type RowKind int8

// Kinds of rows
const (
	DataRow RowKind = iota
	HeaderRow
	TotalRow
)

// Image is a raster image placed into a table cell with a fixed footprint.
type Image struct {
	Name          string
	Data          []byte
	Width, Height float64
}

// Cell is a table cell, holding either lines of text or an image.
type Cell struct {
	Lines []Line
	Image *Image
	Align Align
}

// Row is a table row. Rows are never split across pages.
type Row struct {
	Kind  RowKind
	Cells []Cell
}

// TableBlock is a table. Widths are relative column widths; they are
// scaled to the available width. Header rows are repeated at the top of
// each page if RepeatHeader is set.
type TableBlock struct {
	Name         string
	Widths       []float64
	Rows         []Row
	RepeatHeader bool
	Style        TableStyle
}

func (b *TableBlock) Kind() BlockKind { return TableKind }
func (b *TableBlock) ID() string      { return b.Name }

// Columns returns the number of columns of the table.
func (b *TableBlock) Columns() int {
	n := len(b.Widths)
	for _, r := range b.Rows {
		if len(r.Cells) > n {
			n = len(r.Cells)
		}
	}
	return n
}

// HeaderRows returns the number of leading header rows.
func (b *TableBlock) HeaderRows() int {
	n := 0
	for n < len(b.Rows) && b.Rows[n].Kind == HeaderRow {
		n++
	}
	return n
}

// ColumnWidths scales the relative widths of b to total. Columns without
// a relative width share the remaining space equally.
func (b *TableBlock) ColumnWidths(total float64) []float64 {
	n := b.Columns()
	if n == 0 {
		return nil
	}
	widths := make([]float64, n)
	sum, unset := 0.0, 0
	for i := 0; i < n; i++ {
		if i < len(b.Widths) && b.Widths[i] > 0 {
			sum += b.Widths[i]
		} else {
			unset++
		}
	}
	share := 0.0
	if unset > 0 {
		share = 1.0
		if sum > 0 {
			share = sum / float64(n-unset)
		}
		sum += share * float64(unset)
	}
	for i := range widths {
		w := share
		if i < len(b.Widths) && b.Widths[i] > 0 {
			w = b.Widths[i]
		}
		widths[i] = w / sum * total
	}
	return widths
}

// Document is the result of composition. It is handed to the renderer
// exactly once and not modified afterwards.
type Document struct {
	Meta      Metadata
	FileName  string
	Direction bidi.Direction
	Font      font.Handle
	Blocks    []Block
}

// Metadata goes into the information dictionary of the output.
type Metadata struct {
	Title    string
	Subject  string
	Keywords string
	Creator  string
	Created  time.Time
}
