/*
Package font selects the typeface for a document.

Documents in left-to-right languages use the built-in PDF core font
Helvetica. Right-to-left documents need a TrueType font covering Arabic
presentation forms as well as Latin, which is loaded once at process start
and embedded into every document using it.

Loading is a deployment precondition: Load returns a *core.ConfigurationError
if the font asset is missing or unusable, and binaries are expected to abort.
A Registry is read-only after creation and may be shared by concurrent
renders.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
