package bidi

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the base direction of a line of text.
type Direction int8

// Directions. The zero value is LeftToRight.
const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "RTL"
	}
	return "LTR"
}

// IsRTL is a convenience predicate.
func (d Direction) IsRTL() bool {
	return d == RightToLeft
}

// level is an embedding level as described in UAX#9, section 3.1.2.
// We never leave the paragraph's isolating run sequence, thus levels will
// not exceed base+2.
type level int8

func (l level) isOdd() bool { return l&1 == 1 }

func (d Direction) level() level {
	if d == RightToLeft {
		return 1
	}
	return 0
}

// Visual resolves a line of text in logical order and returns its runes in
// visual order, i.e. the order in which they have to be placed from left to
// right. base is the paragraph direction.
//
// Line separators are not interpreted; clients are expected to split
// paragraphs into lines beforehand. A string without any right-to-left
// characters is returned unchanged for base direction LeftToRight.
func Visual(text string, base Direction) string {
	if text == "" {
		return text
	}
	p := newParagraph(text, base)
	if base == LeftToRight && !p.hasRTL() {
		return text
	}
	p.resolve()
	return p.visual()
}

// DirectionOf returns the direction of the first strong character of text
// (rules P2 and P3 of UAX#9). ok is false if text has no strong character;
// dir is LeftToRight then.
func DirectionOf(text string) (dir Direction, ok bool) {
	for _, r := range text {
		switch classOf(r) {
		case bidi.L:
			return LeftToRight, true
		case bidi.R, bidi.AL:
			return RightToLeft, true
		}
	}
	return LeftToRight, false
}

// Levels returns the resolved embedding levels of each rune of text.
// It is intended for diagnostics and testing.
func Levels(text string, base Direction) []int {
	p := newParagraph(text, base)
	p.resolve()
	lv := make([]int, len(p.levels))
	for i, l := range p.levels {
		lv[i] = int(l)
	}
	return lv
}

// paragraph holds the state of resolving a single line of text.
type paragraph struct {
	text   []rune
	orig   []bidi.Class // classes as looked up
	cls    []bidi.Class // classes under resolution
	levels []level
	base   level
}

func newParagraph(text string, base Direction) *paragraph {
	runes := []rune(text)
	p := &paragraph{
		text:   runes,
		orig:   make([]bidi.Class, len(runes)),
		cls:    make([]bidi.Class, len(runes)),
		levels: make([]level, len(runes)),
		base:   base.level(),
	}
	for i, r := range runes {
		p.orig[i] = classOf(r)
		p.cls[i] = p.orig[i]
	}
	return p
}

func (p *paragraph) hasRTL() bool {
	for _, c := range p.orig {
		switch c {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
	}
	return false
}

// classOf looks up the bidi class of a rune and maps the classes we do not
// handle explicitly onto the ones we do.
func classOf(r rune) bidi.Class {
	props, sz := bidi.LookupRune(r)
	if sz == 0 {
		return bidi.ON
	}
	switch c := props.Class(); c {
	case bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF:
		return bidi.BN
	case bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI, bidi.Control:
		return bidi.ON
	default:
		return c
	}
}

// resolve applies the UAX#9 rules for weak types, neutrals and implicit
// levels, then resets trailing whitespace (L1).
func (p *paragraph) resolve() {
	seq := p.sequence()
	T().Debugf("bidi: resolving %d runes at base level %d", len(p.text), p.base)
	p.resolveWeakTypes(seq)
	p.resolveBracketPairs(seq)
	p.resolveNeutrals(seq)
	p.resolveImplicitLevels(seq)
	p.assignBoundaryNeutrals()
	p.resetWhitespace()
}

// sequence returns the positions taking part in resolution. Boundary
// neutrals are skipped, as if removed by rule X9.
func (p *paragraph) sequence() []int {
	seq := make([]int, 0, len(p.text))
	for i, c := range p.orig {
		if c != bidi.BN {
			seq = append(seq, i)
		}
	}
	return seq
}

// sos returns the class of start-of-sequence and end-of-sequence.
func (p *paragraph) sos() bidi.Class {
	if p.base.isOdd() {
		return bidi.R
	}
	return bidi.L
}

func (p *paragraph) String() string {
	var b strings.Builder
	for i, r := range p.text {
		b.WriteRune(r)
		b.WriteByte('/')
		b.WriteString(classString(p.cls[i]))
		b.WriteByte(' ')
	}
	return b.String()
}

var classNames = map[bidi.Class]string{
	bidi.L: "L", bidi.R: "R", bidi.EN: "EN", bidi.ES: "ES", bidi.ET: "ET",
	bidi.AN: "AN", bidi.CS: "CS", bidi.B: "B", bidi.S: "S", bidi.WS: "WS",
	bidi.ON: "ON", bidi.BN: "BN", bidi.NSM: "NSM", bidi.AL: "AL",
}

func classString(c bidi.Class) string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return "?"
}
