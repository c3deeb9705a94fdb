package bidi

import (
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/text/unicode/bidi"
)

// BD16MaxNesting is the maximum stack depth for rule BD16 as defined in UAX#9.
const BD16MaxNesting = 63

// --- Brackets and bracket stack --------------------------------------------

// Brackets require a disproportionate amount of work in UAX#9. The pairing
// algorithm (BD16) reads:
//
// * Create a fixed-size stack for exactly 63 elements each consisting of a bracket
//   character and a text position. Initialize it to empty.
// * Inspect each character in the isolating run sequence in logical order.
//   - If an opening paired bracket is found and there is room in the stack, push its
//     Bidi_Paired_Bracket property value and its text position onto the stack.
//   - If an opening paired bracket is found and there is no room in the stack, stop
//     processing BD16 for the remainder of the isolating run sequence.
//   - If a closing paired bracket is found, compare it to the stack elements from
//     the top down. On a match, record the pair and pop the stack through the
//     matching element inclusively. Without a match, continue with the next
//     character without popping the stack.
// * Sort the list of pairs of text positions in ascending order based on the text
//   position of the opening paired bracket.
//
// Examples of bracket pairs:
//
// 	Text                Pairings
// 	1 2 3 4 5 6 7 8
// 	a ) b ( c           None
// 	a ( b ] c           None
// 	a ( b ) c           2-4
// 	a ( b [ c ) d ]     2-6
// 	a ( b ] c ) d       2-6
// 	a ( b ) c ) d       2-4
// 	a ( b ( c ) d       4-6
// 	a ( b ( c ) d )     2-8, 4-6
// 	a ( b { c } d )     2-8, 4-6

type bracketPair struct {
	o, c rune
}

// uax9BracketPairs is the subset of BidiBrackets.txt we care about.
var uax9BracketPairs = []bracketPair{
	{'(', ')'}, {'[', ']'}, {'{', '}'},
	{'༺', '༻'}, {'༼', '༽'}, {'᚛', '᚜'},
	{'⁅', '⁆'}, {'⁽', '⁾'}, {'₍', '₎'},
	{'⌈', '⌉'}, {'⌊', '⌋'}, {'\u2329', '\u232A'},
	{'❨', '❩'}, {'❪', '❫'}, {'❬', '❭'},
	{'⟦', '⟧'}, {'⟨', '⟩'}, {'⟪', '⟫'},
	{'⦃', '⦄'}, {'⦅', '⦆'}, {'\u3008', '\u3009'},
	{'《', '》'}, {'「', '」'}, {'『', '』'},
	{'【', '】'}, {'﹙', '﹚'}, {'﹛', '﹜'},
	{'（', '）'}, {'［', '］'}, {'｛', '｝'},
}

// stack entry for BD16
type brktpos struct {
	closing rune // the closing bracket we are waiting for
	pos     int  // index into the sequence
}

type pairing struct {
	opening, closing int // indices into the sequence
}

func openingBracket(r rune) (bracketPair, bool) {
	for _, pair := range uax9BracketPairs {
		if pair.o == r {
			return pair, true
		}
	}
	return bracketPair{}, false
}

func isClosingBracket(r rune) bool {
	for _, pair := range uax9BracketPairs {
		if pair.c == r {
			return true
		}
	}
	return false
}

// findBracketPairs performs BD16 on the sequence. Only brackets resolved to
// ON take part.
func (p *paragraph) findBracketPairs(seq []int) []pairing {
	stack := arraystack.New()
	var pairings []pairing
	for k, i := range seq {
		if p.cls[i] != bidi.ON {
			continue
		}
		r := p.text[i]
		if pair, ok := openingBracket(r); ok {
			if stack.Size() >= BD16MaxNesting {
				T().Debugf("BD16: bracket stack overflow at %d", k)
				break
			}
			stack.Push(brktpos{closing: pair.c, pos: k})
			continue
		}
		if !isClosingBracket(r) {
			continue
		}
		for depth, v := range stack.Values() { // values in LIFO order
			open := v.(brktpos)
			if open.closing != r {
				continue
			}
			pairings = append(pairings, pairing{opening: open.pos, closing: k})
			for j := 0; j <= depth; j++ {
				stack.Pop()
			}
			break
		}
	}
	sort.Slice(pairings, func(i, j int) bool {
		return pairings[i].opening < pairings[j].opening
	})
	return pairings
}

// resolveBracketPairs applies rule N0. A bracket pair enclosing a strong type
// of the embedding direction takes the embedding direction. A pair enclosing
// only the opposite direction takes the opposite direction if the context
// before the opening bracket has it, too.
func (p *paragraph) resolveBracketPairs(seq []int) {
	pairings := p.findBracketPairs(seq)
	if len(pairings) == 0 {
		return
	}
	e := p.sos()
	opposite := bidi.L
	if e == bidi.L {
		opposite = bidi.R
	}
	for _, pr := range pairings {
		foundE, foundOpp := false, false
		for k := pr.opening + 1; k < pr.closing; k++ {
			switch strongOf(p.cls[seq[k]]) {
			case e:
				foundE = true
			case opposite:
				foundOpp = true
			}
		}
		var dir bidi.Class
		switch {
		case foundE:
			dir = e
		case foundOpp:
			dir = e
			if p.precedingStrong(seq, pr.opening) == opposite {
				dir = opposite
			}
		default:
			continue
		}
		T().Debugf("N0: bracket pair %d-%d resolves to %s", pr.opening, pr.closing, classString(dir))
		p.setBracketClass(seq, pr.opening, dir)
		p.setBracketClass(seq, pr.closing, dir)
	}
}

// precedingStrong finds the first strong type before position k in the
// sequence, or sos.
func (p *paragraph) precedingStrong(seq []int, k int) bidi.Class {
	for j := k - 1; j >= 0; j-- {
		if s := strongOf(p.cls[seq[j]]); s != bidi.ON {
			return s
		}
	}
	return p.sos()
}

// setBracketClass changes the class of a bracket and of non-spacing marks
// originally following it.
func (p *paragraph) setBracketClass(seq []int, k int, dir bidi.Class) {
	p.cls[seq[k]] = dir
	for j := k + 1; j < len(seq) && p.orig[seq[j]] == bidi.NSM; j++ {
		p.cls[seq[j]] = dir
	}
}

// --- Mirroring (rule L4) ---------------------------------------------------

var mirrored = map[rune]rune{
	'<': '>', '>': '<', '«': '»', '»': '«', '‹': '›', '›': '‹',
	'≤': '≥', '≥': '≤',
}

// mirror returns the mirrored glyph for r, if r has one.
func mirror(r rune) rune {
	for _, pair := range uax9BracketPairs {
		if pair.o == r {
			return pair.c
		} else if pair.c == r {
			return pair.o
		}
	}
	if m, ok := mirrored[r]; ok {
		return m
	}
	return r
}
