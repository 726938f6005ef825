/*
Package ot provides access to the table structure of SFNT fonts (TrueType and
OpenType), with an emphasis on the naming table 'name'.

The naming table holds textual, internationalized information about a font, like
family name, copyright, version, etc. Package `ot` exposes its records as they are
stored in the font: platform, encoding, language and name identifiers, plus the raw
bytes of the string. Note that this has nothing to do with glyph names!

Package `ot` will not interpret the strings. Their encoding is determined by the
(platform, encoding) pair of a record; decoding them is the task of the sister
package `otquery`. From this point of view, `ot` is a low-level package.

Like golang.org/x/image/font/sfnt, package `ot` keeps the initial font binary
in memory and does not copy out strings into separate buffers. Records are views
into the font data, and clients must keep the data alive (and unchanged) for as
long as they use a font or any record taken from it.

Fonts in the wild frequently infringe upon the specification. Package `ot` will
record such issues as errors or warnings, and try to continue whenever the
problem is recoverable. For example, name records pointing outside of the table's
string storage are dropped, but the remaining records are still accessible.

# Status

TrueType collections are supported by ParseCollection. Only the 'name' table is
interpreted; all other tables are accessible as generic tables.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
