package ot

import (
	"iter"

	"golang.org/x/image/font/sfnt"
)

// NameRecord is one entry of a font's 'name' table.
//
// String is the raw name string as stored in the font. Its format differs
// depending on the (PlatformID, EncodingID) pair: it may be a single-byte string,
// UTF-16BE, or some other platform-specific encoding. It is not zero-terminated.
//
// String is borrowed from the font's binary data: it is valid only as long as
// the byte slice handed to Parse is alive and unchanged. Its capacity is clipped
// to its length.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
	String     []byte
}

// Len returns the length of the record's string in bytes.
func (r NameRecord) Len() int {
	return len(r.String)
}

// LangTagRecord is a language-tag entry of a format 1 'name' table.
// String holds an IETF BCP 47 tag, encoded as UTF-16BE and borrowed from
// the font's binary data.
type LangTagRecord struct {
	String []byte
}

// Len returns the length of the tag's string in bytes.
func (r LangTagRecord) Len() int {
	return len(r.String)
}

// LangTagBase is the first language ID referring to a LangTagRecord
// instead of a platform-specific language.
const LangTagBase = 0x8000

// NameTable is the parsed naming table of a font. It holds textual
// (and internationalized) information about the font, like family name,
// copyright, version, etc.
//
// Records with strings outside the table's storage area are dropped during
// parsing, as are format 1 records with language IDs referring to missing or
// empty language tags. The indices of a NameTable therefore run over valid
// records only.
type NameTable struct {
	tableBase
	Format        uint16
	storageOffset int
	records       []NameRecord
	langTags      []LangTagRecord
}

func newNameTable(tag Tag, b binarySegm, offset, size uint32) *NameTable {
	t := &NameTable{}
	base := tableBase{
		data:   b,
		name:   tag,
		offset: offset,
		length: size,
	}
	t.tableBase = base
	t.self = t
	return t
}

// Count returns the number of name records in the table.
// A nil table has zero records.
func (t *NameTable) Count() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Record returns the name record at index i.
//
// If t is nil, i.e. the font has no 'name' table, Record returns an error
// matching ErrMissingTable. If i is not in [0…Count()), the error matches
// ErrOutOfRange.
func (t *NameTable) Record(i int) (NameRecord, error) {
	if t == nil {
		return NameRecord{}, &NameError{Kind: MissingTable, Index: i}
	}
	if i < 0 || i >= len(t.records) {
		return NameRecord{}, &NameError{Kind: OutOfRange, Index: i, Count: len(t.records)}
	}
	return t.records[i], nil
}

// Records iterates over all valid records, together with their index.
func (t *NameTable) Records() iter.Seq2[int, NameRecord] {
	return func(yield func(int, NameRecord) bool) {
		if t == nil {
			return
		}
		for i, rec := range t.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}

// LangTagCount returns the number of language-tag records. Format 0 tables
// never have any.
func (t *NameTable) LangTagCount() int {
	if t == nil {
		return 0
	}
	return len(t.langTags)
}

// LangTag returns the language-tag record for a language ID of a name record.
//
// Language IDs below LangTagBase are platform-specific and have no language-tag
// record; they, as well as any language ID for format 0 tables, result in an
// error matching ErrInvalidArgument. A language ID beyond the table's
// language-tag records results in ErrOutOfRange.
func (t *NameTable) LangTag(langID uint16) (LangTagRecord, error) {
	if t == nil {
		return LangTagRecord{}, &NameError{Kind: MissingTable, Index: int(langID)}
	}
	if t.Format != 1 || langID < LangTagBase {
		return LangTagRecord{}, &NameError{Kind: InvalidArgument, Index: int(langID)}
	}
	inx := int(langID - LangTagBase)
	if inx >= len(t.langTags) {
		return LangTagRecord{}, &NameError{Kind: OutOfRange, Index: inx, Count: len(t.langTags)}
	}
	return t.langTags[inx], nil
}
