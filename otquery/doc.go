/*
Package otquery interprets the naming table of OpenType fonts.

Package `ot` exposes name records as they are stored in a font. Package
`otquery` adds the knowledge needed to make sense of them: which character
encoding belongs to a (platform, encoding) pair, which language a record is
written in, and which of several records for the same name ID best fits a
client's language.

Records whose encoding is not known to `otquery` are still accessible through
Name, but will not be decoded.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.query'
func tracer() tracing.Trace {
	return tracing.Select("font.query")
}
