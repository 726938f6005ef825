/*
Package sfntnames gives access to the naming table of TrueType and OpenType
fonts.

The naming table ('name') of an SFNT font holds its textual metadata: family and
style names, copyright and license notices, version strings, designer and vendor
URLs. Every entry is a name record, identified by platform, encoding, language and
name IDs, and carrying a string in a platform-specific encoding.

We will stick to the following nomenclature:

▪︎ A "face" is a single font loaded from a file, e.g. "Helvetica regular".
A TrueType collection (*.ttc) holds several faces.

▪︎ A "name record" is an entry of the naming table. Its string is not
decoded; it is a view into the font binary. Package otquery provides
decoding.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Typical use:

	face, err := sfntnames.LoadFace("MyFont.ttf")
	...
	for i := 0; i < face.NameCount(); i++ {
	    rec, _ := face.Name(i)
	    fmt.Printf("%d/%d/0x%04x name %d: %d bytes\n", rec.PlatformID,
	        rec.EncodingID, rec.LanguageID, rec.NameID, rec.Len())
	}

# Links

The naming table explained:
https://docs.microsoft.com/en-us/typography/opentype/spec/name

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sfntnames

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sfntnames'
func tracer() tracing.Trace {
	return tracing.Select("sfntnames")
}
