package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// Table 5. Resolving Implicit Levels (see section 3.3.6)
//
// Type  | Embedding Level
// ------+-----------------
//       |   Even    Odd
// L     |   EL      EL+1
// R     |   EL+1    EL
// AN    |   EL+2    EL+1
// EN    |   EL+2    EL+1
//
// According to this table, handling L2R and R2L is not symmetric.
// Case L2R:
//    It remains to treat R-runs as having nesting level 1 and number runs
//    as having nesting level 2.
// Case R2L:
//    Runs of Ls and numbers get level 2, the rest stays at 1.

// resolveImplicitLevels applies rules I1 and I2.
func (p *paragraph) resolveImplicitLevels(seq []int) {
	for _, i := range seq {
		lv := p.base
		switch c := p.cls[i]; {
		case !p.base.isOdd() && c == bidi.R:
			lv++
		case !p.base.isOdd() && (c == bidi.AN || c == bidi.EN):
			lv += 2
		case p.base.isOdd() && (c == bidi.L || c == bidi.AN || c == bidi.EN):
			lv++
		}
		p.levels[i] = lv
	}
}

// assignBoundaryNeutrals gives characters removed by X9 the level of the
// preceding character, or the paragraph level at the start of the line.
func (p *paragraph) assignBoundaryNeutrals() {
	for i, c := range p.orig {
		if c != bidi.BN {
			continue
		}
		if i == 0 {
			p.levels[i] = p.base
		} else {
			p.levels[i] = p.levels[i-1]
		}
	}
}

// resetWhitespace applies rule L1: segment separators and whitespace
// preceding them or trailing the line are reset to the paragraph level.
func (p *paragraph) resetWhitespace() {
	trailing := true
	for i := len(p.text) - 1; i >= 0; i-- {
		switch p.orig[i] {
		case bidi.S, bidi.B:
			p.levels[i] = p.base
			trailing = true
		case bidi.WS, bidi.BN:
			if trailing {
				p.levels[i] = p.base
			}
		default:
			trailing = false
		}
	}
}

// visual applies rules L2 and L4 and returns the reordered text.
//
// L2: From the highest level found in the text to the lowest odd level on
// each line, reverse any contiguous sequence of characters that are at that
// level or higher.
func (p *paragraph) visual() string {
	n := len(p.text)
	order := make([]int, n)
	var highest, lowest level = 0, 127
	for i := range order {
		order[i] = i
		highest = max(highest, p.levels[i])
		lowest = min(lowest, p.levels[i])
	}
	lowestOdd := lowest | 1
	for lv := highest; lv >= lowestOdd; lv-- {
		for i := 0; i < n; {
			if p.levels[order[i]] < lv {
				i++
				continue
			}
			j := i
			for j < n && p.levels[order[j]] >= lv {
				j++
			}
			reverse(order, i, j)
			i = j
		}
	}
	out := make([]rune, n)
	for k, i := range order {
		r := p.text[i]
		if p.levels[i].isOdd() {
			r = mirror(r)
		}
		out[k] = r
	}
	return string(out)
}

// reverse ordering of [i,j)
func reverse(order []int, i, j int) {
	for j = j - 1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
}
