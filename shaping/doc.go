/*
Package shaping prepares text fragments for placement on a page.

For left-to-right scripts text is placed as-is. Arabic text needs two
transformations before a PDF writer without an OpenType layout engine can
place it:

▪︎ Contextual joining: every letter is replaced by its isolated, initial,
medial or final presentation form (Unicode blocks Arabic Presentation Forms-A
and -B), depending on its neighbours. Lam followed by an alef variant is
collapsed into a lam-alef ligature.

▪︎ Bidi reordering: the shaped runes are put into visual order (see package
bidi), keeping embedded numbers and Latin words left-to-right.

Shape has to be applied exactly once to every fragment, before fragments are
combined. Joining decisions depend on the fragment boundaries; shaping a
concatenation, or shaping already shaped text, produces garbage.

Table arabictables.go carries the joining types of ArabicShaping.txt
(Unicode 13.0.0) for the letters used by Arabic and Persian together with
their presentation forms.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shaping

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
