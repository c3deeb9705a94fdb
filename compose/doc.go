/*
Package compose turns a document record into a sequence of layout blocks.

Composition happens in a fixed order: header (logo and title with number
and dates), parties (supplier and customer), the item table with its
totals, and finally the optional payment terms, delivery terms and the
accept-checks line. Optional blocks are omitted altogether if their source
field is empty.

Every text fragment is shaped on its own before it is put into a block;
fragments are never concatenated and shaped afterwards. Numbers in the item
table are formatted but not shaped.

A Composer holds no mutable state. The clock is the only input besides
record and dictionary; it determines the time printed next to the issue
date and the creation date of the output.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compose

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
