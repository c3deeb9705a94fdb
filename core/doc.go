/*
Package core holds the error types shared by all stages of document
generation.

Three kinds of failure are distinguished:

▪︎ ConfigurationError: a deployment precondition is not met, e.g. the font
asset for right-to-left documents cannot be loaded. Binaries abort at start.

▪︎ ValidationError: the document record or the label dictionary is not fit
for rendering. Reported to the caller before composition starts.

▪︎ RenderError: the page layout failed for a single render call, e.g. a
table row does not fit onto an empty page.

Validation and render errors carry a message already translated to the
document's language and shaped for display. Clients test for them with
errors.As.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core
