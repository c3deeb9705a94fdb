/*
Package render distributes the blocks of a composed document onto pages
and serializes them to PDF.

Rendering happens in two steps. Paginate walks the blocks top to bottom and
produces a Plan: for every page a display list of text, rectangle, line and
image operations in page coordinates. Table rows and text lines are atomic;
a row which does not fit onto the remaining page moves to the next one,
preceded by the table's header rows if the table asks for it. Render then
replays the plan onto an FPDF canvas.

Pagination depends only on the document, the page configuration and a
Measurer for text widths. Render fixes creation and modification dates of
the PDF to the document's creation time and sorts the catalog, so the same
document always results in the same bytes.

Right-to-left documents are laid out mirrored: table columns are placed
from the right edge, start-aligned text is flushed right, and the spans of
a line follow each other from right to left.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
