package shaping

// joinContext tells if a letter at a position connects to its logical
// predecessor (to the right, visually) and to its successor.
type joinContext struct {
	prev, next bool
}

// joinsLeft is true if a letter of type jt can connect to a following letter.
func joinsLeft(jt joiningType) bool {
	return jt == dualJoin || jt == joinCausing
}

// joinsRight is true if a letter of type jt can connect to a preceding letter.
func joinsRight(jt joiningType) bool {
	return jt == dualJoin || jt == rightJoin || jt == joinCausing
}

// neighbour finds the next non-transparent rune from position i in steps of
// dir (+1 or -1). It returns the joining type of that rune, or nonJoining if
// the end of the text has been reached.
func neighbour(types []joiningType, i, dir int) joiningType {
	for j := i + dir; j >= 0 && j < len(types); j += dir {
		if types[j] != transparent {
			return types[j]
		}
	}
	return nonJoining
}

// reshape replaces Arabic letters of a single line by their contextual
// presentation forms. Lam-alef sequences are collapsed into ligatures.
// Runes outside the table pass unchanged. The result is still in logical
// order.
func reshape(text []rune) []rune {
	types := make([]joiningType, len(text))
	for i, r := range text {
		types[i] = joiningTypeOf(r)
	}
	out := make([]rune, 0, len(text))
	for i := 0; i < len(text); i++ {
		r := text[i]
		l, ok := arabicLetters[r]
		if !ok || l.jt == joinCausing {
			out = append(out, r)
			continue
		}
		ctx := joinContext{
			prev: joinsRight(l.jt) && joinsLeft(neighbour(types, i, -1)),
			next: joinsLeft(l.jt) && joinsRight(neighbour(types, i, +1)),
		}
		if r == lam {
			if lig, j, ok := ligature(text, types, i); ok {
				if ctx.prev {
					out = append(out, lig[1])
				} else {
					out = append(out, lig[0])
				}
				out = append(out, text[i+1:j]...) // marks between lam and alef
				i = j
				continue
			}
		}
		out = append(out, l.forms[formIndex(ctx)])
	}
	return out
}

// ligature checks for an alef variant following lam at position i,
// skipping transparent marks. It returns the ligature forms and the
// position of the alef.
func ligature(text []rune, types []joiningType, i int) ([2]rune, int, bool) {
	for j := i + 1; j < len(text); j++ {
		if types[j] == transparent {
			continue
		}
		lig, ok := lamAlef[text[j]]
		return lig, j, ok
	}
	return [2]rune{}, 0, false
}

func formIndex(ctx joinContext) int {
	switch {
	case ctx.prev && ctx.next:
		return medial
	case ctx.prev:
		return final
	case ctx.next:
		return initial
	}
	return isolated
}
