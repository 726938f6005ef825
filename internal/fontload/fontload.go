// Package fontload reads SFNT font binaries from files.
package fontload

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'sfntnames'
func tracer() tracing.Trace {
	return tracing.Select("sfntnames")
}

// ErrNoFont is returned for binaries which do not start with an SFNT or
// collection header.
var ErrNoFont = errors.New("not an SFNT font or font collection")

// FontFile is a font file in memory: the original bytes plus what can be
// told about them without parsing the table directory.
type FontFile struct {
	Filepath     string
	Fontname     string // full name as reported by x/image/font/sfnt, if available
	Binary       []byte
	IsCollection bool
}

// LoadFontFile loads a font file (TTF, OTF or TTC) from disk.
func LoadFontFile(fontfile string) (*FontFile, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := InspectFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// LoadFontFileFS loads a font file from a file system, e.g. an embed.FS.
func LoadFontFileFS(fsys fs.FS, fontfile string) (*FontFile, error) {
	bytez, err := fs.ReadFile(fsys, fontfile)
	if err != nil {
		return nil, err
	}
	f, err := InspectFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// InspectFont checks the header of a font binary and determines if it is a
// single font or a collection.
//
// The full name of the (first) font is read with x/image/font/sfnt. That
// package is strict about required tables, so fonts which it rejects are
// still accepted here, with an empty Fontname.
func InspectFont(fbytes []byte) (*FontFile, error) {
	if len(fbytes) < 4 {
		return nil, ErrNoFont
	}
	f := &FontFile{Binary: fbytes, IsCollection: IsCollection(fbytes)}
	if !f.IsCollection {
		switch string(fbytes[:4]) {
		case "\x00\x01\x00\x00", "OTTO", "true":
		default:
			return nil, ErrNoFont
		}
	}
	f.Fontname = FullName(fbytes, 0)
	if f.Fontname != "" {
		tracer().Debugf("loaded SFNT %s", f.Fontname)
	}
	return f, nil
}

// IsCollection reports whether a binary starts with a collection header.
func IsCollection(fbytes []byte) bool {
	return bytes.HasPrefix(fbytes, []byte("ttcf"))
}

// FullName returns the full name (name ID 4) of font number index as
// x/image/font/sfnt reports it. For single fonts, index must be 0.
// It is empty if x/image/font/sfnt cannot read the font.
func FullName(fbytes []byte, index int) string {
	var font *sfnt.Font
	var err error
	if IsCollection(fbytes) {
		var c *sfnt.Collection
		if c, err = sfnt.ParseCollection(fbytes); err == nil {
			if index < 0 || index >= c.NumFonts() {
				return ""
			}
			font, err = c.Font(index)
		}
	} else if index == 0 {
		font, err = sfnt.Parse(fbytes)
	}
	if err != nil || font == nil {
		tracer().Debugf("x/image/font/sfnt cannot read font #%d: %v", index, err)
		return ""
	}
	name, err := font.Name(nil, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}
