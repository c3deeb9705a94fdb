/*
Package finance computes the monetary figures of a document.

All arithmetic is carried out on decimals without intermediate rounding.
Rounding to two fractional digits happens only when an amount is formatted
for display, rounding half away from zero.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package finance
