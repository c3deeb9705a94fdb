package shaping

import (
	"strings"
	"unicode"

	"github.com/npillmayer/invoicer/bidi"
)

// Shape prepares a text fragment for placement on a page.
//
// For direction LeftToRight the text is returned unchanged. For RightToLeft,
// Arabic letters are replaced by their joined presentation forms and each
// line is put into visual order. The base direction of a line is the
// direction of its first strong character, left-to-right if there is none:
// phone numbers, dates and lines starting with Latin text keep their order.
// Digits and Latin runs inside Arabic text keep their left-to-right order.
// Empty or whitespace-only text is returned unchanged.
//
// Lines are separated by '\n' and shaped independently.
func Shape(text string, dir bidi.Direction) string {
	if dir != bidi.RightToLeft || isBlank(text) {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = shapeLine(line)
	}
	return strings.Join(lines, "\n")
}

// ShapeAll shapes a list of fragments one by one.
func ShapeAll(dir bidi.Direction, fragments ...string) []string {
	shaped := make([]string, len(fragments))
	for i, f := range fragments {
		shaped[i] = Shape(f, dir)
	}
	return shaped
}

func shapeLine(line string) string {
	if line == "" {
		return line
	}
	runes := []rune(line)
	if hasArabic(runes) {
		runes = reshape(runes)
	}
	shaped := string(runes)
	base, _ := bidi.DirectionOf(shaped)
	visual := bidi.Visual(shaped, base)
	tracer().Debugf("shaping: %q -> %q (%v)", line, visual, base)
	return visual
}

func hasArabic(runes []rune) bool {
	for _, r := range runes {
		if isArabic(r) {
			return true
		}
	}
	return false
}

func isBlank(text string) bool {
	return strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
