package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// --- Weak types (UAX#9, 3.3.4) ---------------------------------------------

// resolveWeakTypes applies rules W1 to W7 to the positions in seq.
func (p *paragraph) resolveWeakTypes(seq []int) {
	cls := p.cls
	sos := p.sos()
	// W1: NSM takes the class of the previous character
	for k, i := range seq {
		if cls[i] != bidi.NSM {
			continue
		}
		if k == 0 {
			cls[i] = sos
		} else {
			cls[i] = cls[seq[k-1]]
		}
	}
	// W2: EN preceded by AL becomes AN; W3: AL becomes R
	last := sos
	for _, i := range seq {
		switch cls[i] {
		case bidi.L, bidi.R, bidi.AL:
			last = cls[i]
		case bidi.EN:
			if last == bidi.AL {
				cls[i] = bidi.AN
			}
		}
	}
	for _, i := range seq {
		if cls[i] == bidi.AL {
			cls[i] = bidi.R
		}
	}
	// W4: a single separator between two numbers of the same type
	for k := 1; k < len(seq)-1; k++ {
		prev, this, next := cls[seq[k-1]], cls[seq[k]], cls[seq[k+1]]
		switch {
		case this == bidi.ES && prev == bidi.EN && next == bidi.EN:
			cls[seq[k]] = bidi.EN
		case this == bidi.CS && prev == next && (prev == bidi.EN || prev == bidi.AN):
			cls[seq[k]] = prev
		}
	}
	// W5: terminators adjacent to European numbers
	for k := 0; k < len(seq); {
		if cls[seq[k]] != bidi.ET {
			k++
			continue
		}
		end := k
		for end < len(seq) && cls[seq[end]] == bidi.ET {
			end++
		}
		if (k > 0 && cls[seq[k-1]] == bidi.EN) || (end < len(seq) && cls[seq[end]] == bidi.EN) {
			for j := k; j < end; j++ {
				cls[seq[j]] = bidi.EN
			}
		}
		k = end
	}
	// W6: remaining separators and terminators become neutral
	for _, i := range seq {
		switch cls[i] {
		case bidi.ES, bidi.ET, bidi.CS:
			cls[i] = bidi.ON
		}
	}
	// W7: European numbers in a left-to-right context
	last = sos
	for _, i := range seq {
		switch cls[i] {
		case bidi.L, bidi.R:
			last = cls[i]
		case bidi.EN:
			if last == bidi.L {
				cls[i] = bidi.L
			}
		}
	}
}

// --- Neutrals (UAX#9, 3.3.5) -----------------------------------------------

func isNeutral(c bidi.Class) bool {
	switch c {
	case bidi.B, bidi.S, bidi.WS, bidi.ON:
		return true
	}
	return false
}

// strongOf maps resolved classes to the strong direction they count as
// for rules N0 to N2. Returns ON for neutrals.
func strongOf(c bidi.Class) bidi.Class {
	switch c {
	case bidi.L:
		return bidi.L
	case bidi.R, bidi.AL, bidi.EN, bidi.AN:
		return bidi.R
	}
	return bidi.ON
}

// resolveNeutrals applies rules N1 and N2: a run of neutrals between two
// strong types of the same direction takes that direction, any other run
// takes the embedding direction.
func (p *paragraph) resolveNeutrals(seq []int) {
	cls := p.cls
	e := p.sos()
	for k := 0; k < len(seq); {
		if !isNeutral(cls[seq[k]]) {
			k++
			continue
		}
		end := k
		for end < len(seq) && isNeutral(cls[seq[end]]) {
			end++
		}
		leading, trailing := e, e
		if k > 0 {
			leading = strongOf(cls[seq[k-1]])
		}
		if end < len(seq) {
			trailing = strongOf(cls[seq[end]])
		}
		dir := e
		if leading == trailing {
			dir = leading
		}
		for j := k; j < end; j++ {
			cls[seq[j]] = dir
		}
		k = end
	}
}
