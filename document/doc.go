/*
Package document defines the input data of a generation call: an invoice or
quote record with its parties, line items and presentation settings.

A Record is owned by its caller. Packages of this module only read it, and
the root package takes a snapshot (see Record.Clone) before composing a
document from it.

Records carry struct tags for JSON and TOML, so the command line tool and
the HTTP endpoint decode them directly. Enumerations (Kind, Language) and
value types (Date, RGB) implement encoding.TextMarshaler and
encoding.TextUnmarshaler.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package document
