/*
Package i18n provides the label dictionaries for document generation.

Labels are addressed by a closed set of keys. Every supported language
carries a table with an entry for each key; the tables are checked for
their length at compile time and for empty entries by the package tests,
so a lookup never falls back to another language.

	dict := i18n.For(document.Arabic)
	label := dict.Shaped(i18n.Subtotal) // joined and in visual order
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package i18n
