package layout

import (
	"github.com/npillmayer/invoicer/document"
)

// Align is a horizontal alignment relative to the writing direction.
type Align int8

// Alignments
const (
	Start Align = iota
	End
	Center
)

func (a Align) String() string {
	switch a {
	case End:
		return "end"
	case Center:
		return "center"
	}
	return "start"
}

// Default measures, in points.
const (
	BodySize      = 10.0
	Leading       = 1.2 // line height as a multiple of the font size
	CellPadding   = 6.0
	GridWidth     = 0.5
	RuleWidth     = 1.0
	LogoSize      = 72.0 // one inch square
	TitleSize     = 18.0
	HeadingSize   = 14.0
	TableHeadSize = 12.0
)

// Named colors.
var (
	Black      = document.RGB{}
	Gray       = document.RGB{R: 0x66, G: 0x66, B: 0x66}
	WhiteSmoke = document.RGB{R: 0xf5, G: 0xf5, B: 0xf5}
	GridGray   = document.RGB{R: 0xcc, G: 0xcc, B: 0xcc}
)

// TextStyle is the style of a span.
type TextStyle struct {
	Size  float64 // font size; 0 selects BodySize
	Color document.RGB
	Bold  bool
}

// FontSize returns the effective font size of s.
func (s TextStyle) FontSize() float64 {
	if s.Size <= 0 {
		return BodySize
	}
	return s.Size
}

// LineHeight returns the height of a line set in s.
func (s TextStyle) LineHeight() float64 {
	return s.FontSize() * Leading
}

// TableStyle holds the decoration of a table.
type TableStyle struct {
	Padding       float64       // cell padding on all sides
	BottomPadding float64       // extra padding below the cells of data rows
	HeaderFill    *document.RGB // background of header rows; nil for none
	HeaderPadding float64       // extra padding below header cells
	Grid          *document.RGB // grid color around header and data rows; nil for none
	Rule          *document.RGB // rule above the first total row; nil for none
	RuleColumns   int           // number of trailing columns the rule spans
}

// Color returns a pointer to a copy of c, for use in styles.
func Color(c document.RGB) *document.RGB {
	return &c
}
