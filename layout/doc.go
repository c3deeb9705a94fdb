/*
Package layout defines the blocks a composed document consists of.

A Document is an ordered sequence of blocks: text blocks, tables and
vertical spacers. Blocks carry text which has already been shaped for its
writing direction, together with style descriptors (color, size, weight,
alignment, padding). Blocks know nothing about pages; distributing them
onto pages is the job of package render.

Alignment is given relative to the writing direction: Start is the left
edge for left-to-right documents and the right edge for right-to-left ones.
Likewise, spans of a line and cells of a table row are listed in logical
order and placed from the start edge.

All measures are in PDF points (1/72 inch).
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout
