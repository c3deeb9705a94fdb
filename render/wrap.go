package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/invoicer/layout"
)

// Measurer measures the width of text set in a style, in points.
type Measurer interface {
	Width(text string, style layout.TextStyle) float64
}

// visualLine is a line which fits into the available width. Spans are in
// logical order.
type visualLine struct {
	spans  []layout.Span
	width  float64
	height float64
}

// wrapLine breaks l into lines not wider than avail, breaking at spaces.
// Span texts of right-to-left lines are in visual order, so their logical
// first word is the rightmost one. Words wider than avail overflow.
func wrapLine(l layout.Line, avail float64, rtl bool, m Measurer) []visualLine {
	h := l.Height()
	w := 0.0
	for _, s := range l.Spans {
		w += m.Width(s.Text, s.Style)
	}
	if w <= avail {
		return []visualLine{{spans: l.Spans, width: w, height: h}}
	}
	type token struct {
		word   string
		span   int
		spaced bool // whitespace between the word and its logical predecessor
	}
	var tokens []token
	gap := false
	for i, s := range l.Spans {
		words := strings.Fields(s.Text)
		if len(words) == 0 {
			gap = gap || s.Text != ""
			continue
		}
		lead, trail := startsWithSpace(s.Text), endsWithSpace(s.Text)
		if rtl {
			reverseWords(words)
			lead, trail = trail, lead
		}
		for k, word := range words {
			tokens = append(tokens, token{word: word, span: i, spaced: k > 0 || gap || lead})
		}
		gap = trail
	}
	if len(tokens) == 0 {
		return []visualLine{{spans: l.Spans, width: w, height: h}}
	}
	var lines []visualLine
	var cur []token
	curW := 0.0
	flush := func() {
		var spans []layout.Span
		for i := 0; i < len(cur); {
			j := i
			var words []string
			for j < len(cur) && cur[j].span == cur[i].span {
				words = append(words, cur[j].word)
				j++
			}
			text := joinWords(words, rtl)
			if j < len(cur) && cur[j].spaced {
				if rtl {
					text = " " + text
				} else {
					text += " "
				}
			}
			spans = append(spans, layout.Span{Text: text, Style: l.Spans[cur[i].span].Style})
			i = j
		}
		vl := visualLine{spans: spans, height: h}
		for _, s := range spans {
			vl.width += m.Width(s.Text, s.Style)
		}
		lines = append(lines, vl)
		cur, curW = cur[:0], 0
	}
	// words not separated by whitespace are kept on one line
	for start := 0; start < len(tokens); {
		end := start + 1
		for end < len(tokens) && !tokens[end].spaced {
			end++
		}
		unitW := 0.0
		for _, tk := range tokens[start:end] {
			unitW += m.Width(tk.word, l.Spans[tk.span].Style)
		}
		sp := 0.0
		if len(cur) > 0 {
			sp = m.Width(" ", l.Spans[tokens[start].span].Style)
		}
		if len(cur) > 0 && curW+sp+unitW > avail {
			flush()
			sp = 0
		}
		cur = append(cur, tokens[start:end]...)
		curW += sp + unitW
		start = end
	}
	flush()
	return lines
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

func reverseWords(words []string) {
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
}

// joinWords joins logically ordered words into a span text; right-to-left
// texts are kept in visual order.
func joinWords(words []string, rtl bool) string {
	if !rtl {
		return strings.Join(words, " ")
	}
	w := append([]string(nil), words...)
	reverseWords(w)
	return strings.Join(w, " ")
}

// visualOrder returns the spans of a line in the order they are placed
// from left to right.
func visualOrder(spans []layout.Span, rtl bool) []layout.Span {
	if !rtl {
		return spans
	}
	v := make([]layout.Span, len(spans))
	for i, s := range spans {
		v[len(spans)-1-i] = s
	}
	return v
}

type physicalAlign int8

const (
	alignLeft physicalAlign = iota
	alignRight
	alignCenter
)

// physical maps a logical alignment to a physical one.
func physical(a layout.Align, rtl bool) physicalAlign {
	switch {
	case a == layout.Center:
		return alignCenter
	case (a == layout.Start) != rtl:
		return alignLeft
	}
	return alignRight
}

// offset returns the x offset of content of width w in a box of width box.
func offset(a physicalAlign, w, box float64) float64 {
	switch a {
	case alignRight:
		return box - w
	case alignCenter:
		return (box - w) / 2
	}
	return 0
}
