/*
Package invoicer generates invoices and quotes as PDF documents.

Documents may be generated in English, French or Arabic. Arabic documents
are laid out right-to-left: letters are joined to their contextual
presentation forms, text is put into visual order by a variant of the
Unicode Bidirectional Algorithm (UAX#9), and tables are mirrored.

Description

Generation is a pipeline of independent stages:

	document.Record ──▶ compose ──▶ layout.Document ──▶ render ──▶ PDF bytes
	                      ▲
	    shaping, font, finance, i18n

Package shaping turns every text fragment into its displayable form,
package font selects the typeface by writing direction, package finance
computes line and aggregate amounts in decimal arithmetic, and package i18n
holds the label dictionaries. Package compose builds an ordered list of
layout blocks from a record, which package render distributes onto pages
and serializes.

A Generator wraps the pipeline behind a single call:

	fonts, err := font.Load(font.Config{Regular: "fonts/Amiri-Regular.ttf"})
	if err != nil {
	    log.Fatal(err) // a missing font is a deployment error
	}
	gen := invoicer.New(fonts)
	artifact, err := gen.Generate(record, invoicer.Download)

Generation does not modify the record and shares no mutable state between
calls; a Generator may be used from several goroutines. Errors are of type
*core.ValidationError (unusable input, reported before composition) or
*core.RenderError (layout failure); both carry a message in the record's
language, ready for display.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package invoicer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
