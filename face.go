package sfntnames

import (
	"fmt"
	"io/fs"

	"github.com/npillmayer/sfntnames/internal/fontload"
	"github.com/npillmayer/sfntnames/ot"
	"github.com/npillmayer/sfntnames/otquery"
	"golang.org/x/text/language"
)

// Face is a font loaded into memory. It owns the font binary; name records
// taken from a face borrow their strings from it.
//
// A face is immutable after loading and may be shared between goroutines.
type Face struct {
	Filepath     string   // empty for faces parsed from memory
	Index        int      // position within a collection
	Binary       []byte   // raw data, must not be modified
	Font         *ot.Font // the parsed SFNT container
	ReportedName string   // full name as read by x/image/font/sfnt, empty if it rejects the font
}

// LoadFace loads a single font (TTF or OTF) from a file.
// Collections are rejected; use LoadCollection for them.
func LoadFace(fontfile string) (*Face, error) {
	ff, err := fontload.LoadFontFile(fontfile)
	if err != nil {
		return nil, err
	}
	return faceFromFile(ff)
}

// LoadFaceFS loads a single font from a file system.
// Collections are rejected.
func LoadFaceFS(fsys fs.FS, fontfile string) (*Face, error) {
	ff, err := fontload.LoadFontFileFS(fsys, fontfile)
	if err != nil {
		return nil, err
	}
	return faceFromFile(ff)
}

func faceFromFile(ff *fontload.FontFile) (*Face, error) {
	if ff.IsCollection {
		return nil, fmt.Errorf("%s is a font collection", ff.Filepath)
	}
	face, err := parseFace(ff.Binary, ff.Fontname)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ff.Filepath, err)
	}
	face.Filepath = ff.Filepath
	return face, nil
}

// ParseFace parses a single font from memory.
// fbytes must not change for as long as the face is in use.
func ParseFace(fbytes []byte) (*Face, error) {
	return parseFace(fbytes, fontload.FullName(fbytes, 0))
}

func parseFace(fbytes []byte, reported string) (*Face, error) {
	otf, err := ot.Parse(fbytes)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed font with %d tables and %d name records",
		len(otf.TableTags()), otf.Names().Count())
	return &Face{Binary: fbytes, Font: otf, ReportedName: reported}, nil
}

// LoadCollection loads all faces of a font file. For files holding a single
// font, the result has length 1.
func LoadCollection(fontfile string) ([]*Face, error) {
	ff, err := fontload.LoadFontFile(fontfile)
	if err != nil {
		return nil, err
	}
	fonts, err := ot.ParseCollection(ff.Binary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	faces := make([]*Face, len(fonts))
	for i, otf := range fonts {
		reported := ff.Fontname
		if i > 0 {
			reported = fontload.FullName(ff.Binary, i)
		}
		faces[i] = &Face{Filepath: fontfile, Index: i, Binary: ff.Binary, Font: otf, ReportedName: reported}
	}
	tracer().Infof("loaded %d faces from %s", len(faces), fontfile)
	return faces, nil
}

// NameCount returns the number of valid name records of the face.
// It is 0 for faces without a naming table.
func (face *Face) NameCount() int {
	return otquery.NameCount(face.otf())
}

// Name returns name record i, 0 ≤ i < NameCount().
//
// Errors match otquery.ErrMissingTable if the face has no naming table, and
// otquery.ErrOutOfRange for invalid indices.
func (face *Face) Name(i int) (ot.NameRecord, error) {
	return otquery.Name(face.otf(), i)
}

// LangTag returns the language-tag record for a language ID ≥ 0x8000.
// Only format 1 naming tables carry language tags.
func (face *Face) LangTag(langID uint16) (ot.LangTagRecord, error) {
	return otquery.LangTag(face.otf(), langID)
}

// FamilyName returns the decoded family and subfamily names of the face, in
// English if available.
//
// Typographic family names (name IDs 16 and 17) take precedence over the legacy
// family names (IDs 1 and 2), which are limited to four styles per family.
// Values are empty if no matching records exist or if none of them can be decoded.
func (face *Face) FamilyName() (family, subfamily string) {
	info := otquery.NameInfo(face.otf(), language.English)
	family, subfamily = info["typographic-family"], info["typographic-subfamily"]
	if family == "" {
		family = info["family"]
	}
	if subfamily == "" {
		subfamily = info["subfamily"]
	}
	return
}

// FullName returns the decoded full name (name ID 4) of the face in lang.
// If the naming table holds no decodable full name, the name reported by
// x/image/font/sfnt is returned.
func (face *Face) FullName(lang language.Tag) string {
	if name := otquery.NameInfo(face.otf(), lang)["fullname"]; name != "" {
		return name
	}
	if face == nil {
		return ""
	}
	return face.ReportedName
}

func (face *Face) otf() *ot.Font {
	if face == nil {
		return nil
	}
	return face.Font
}
