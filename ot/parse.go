package ot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/image/font/sfnt"
)

// Code comments often will cite passages from the
// OpenType specification version 1.9;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// Maximum reasonable counts for SFNT structures.
// These limits prevent malicious fonts from claiming unreasonably large counts
// that could lead to excessive memory allocation.
const (
	MaxCollectionCount = 1024 // fonts in a TrueType collection
)

// Values of FontHeader.FontType
const (
	FontTypeTrueType      = 0x00010000
	FontTypeOpenType      = 0x4f54544f // 'OTTO', CFF outlines
	FontTypeAppleTrueType = 0x74727565 // 'true'
	fontTypeTTC           = 0x74746366 // 'ttcf'
)

// ---------------------------------------------------------------------------

// Checked arithmetic operations to prevent integer overflow

// checkedMulInt checks for overflow in multiplication of two non-negative integers
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a < 0 || b < 0 || a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddInt checks for overflow in addition of two integers
func checkedAddInt(a, b int) (int, error) {
	if b > 0 && a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	if b < 0 && a < math.MinInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// ---------------------------------------------------------------------------

// errFontFormat produces user level errors for font parsing, wrapping the
// FontError which caused parsing to stop.
func errFontFormat(fe FontError) error {
	return fmt.Errorf("font format: %w", fe)
}

// ---------------------------------------------------------------------------

// Parse parses a single SFNT font from a byte slice.
// A Font needs ongoing access to the font's byte-data after the Parse function returns.
// Its elements are assumed immutable while the Font remains in use.
//
// TrueType collections are rejected; use ParseCollection for them.
func Parse(font []byte) (*Font, error) {
	if len(font) >= 4 && u32(font) == fontTypeTTC {
		ec := &errorCollector{}
		fe := ec.addError(T("ttcf"), "Header", "font is a collection", SeverityCritical, 0)
		return nil, errFontFormat(fe)
	}
	return parseFontAt(binarySegm(font), 0)
}

// ParseCollection parses all fonts of a TrueType collection (*.ttc).
// For convenience, a single-font file is accepted as well and results in a
// slice of length 1.
func ParseCollection(font []byte) ([]*Font, error) {
	src := binarySegm(font)
	ec := &errorCollector{}
	if len(font) < 4 || u32(font) != fontTypeTTC {
		otf, err := parseFontAt(src, 0)
		if err != nil {
			return nil, err
		}
		return []*Font{otf}, nil
	}
	// TTC header: tag, major and minor version, number of fonts, followed by
	// an offset to the table directory of each font
	major, _ := src.u16(4)
	n, err := src.u32(8)
	if err != nil {
		return nil, errFontFormat(ec.addError(T("ttcf"), "Header", "collection header truncated", SeverityCritical, 0))
	}
	tracer().Debugf("font collection version %d has %d fonts", major, n)
	if n == 0 || n > MaxCollectionCount {
		return nil, errFontFormat(ec.addError(T("ttcf"), "Header",
			fmt.Sprintf("unreasonable font count %d", n), SeverityCritical, 8))
	}
	offsetsSize, _ := checkedMulInt(int(n), 4)
	offsets, err := src.view(12, offsetsSize)
	if err != nil {
		return nil, errFontFormat(ec.addError(T("ttcf"), "TableDirectoryOffsets",
			"offsets exceed file size", SeverityCritical, 12))
	}
	fonts := make([]*Font, 0, n)
	for i := 0; i < int(n); i++ {
		at := u32(offsets[i*4:])
		otf, err := parseFontAt(src, at)
		if err != nil {
			return nil, fmt.Errorf("font #%d of collection: %w", i, err)
		}
		fonts = append(fonts, otf)
	}
	return fonts, nil
}

// parseFontAt parses the table directory located at the given offset of src.
// Table offsets are relative to the start of src in any case.
func parseFontAt(src binarySegm, at uint32) (*Font, error) {
	// Create error collector for accumulating errors during parsing
	ec := &errorCollector{}

	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	if int64(at)+12 > int64(len(src)) {
		return nil, errFontFormat(ec.addError(T(""), "Header", "offset table truncated", SeverityCritical, at))
	}
	r := bytes.NewReader(src[at:])
	h := FontHeader{}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errFontFormat(ec.addError(T(""), "Header", err.Error(), SeverityCritical, at))
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())

	if !(h.FontType == FontTypeOpenType ||
		h.FontType == FontTypeTrueType ||
		h.FontType == FontTypeAppleTrueType) {
		return nil, errFontFormat(ec.addError(T(""), "Header",
			fmt.Sprintf("font type not supported: %x", h.FontType), SeverityCritical, at))
	}
	otf := &Font{Header: &h, tables: make(map[Tag]Table)}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	tableRecordsSize, err := checkedMulInt(16, int(h.TableCount))
	if err != nil {
		return nil, errFontFormat(ec.addError(T(""), "TableRecords",
			fmt.Sprintf("table count too large: %v", err), SeverityCritical, at+12))
	}
	var buf binarySegm
	if tableRecordsSize > 0 {
		if buf, err = src.view(int(at)+12, tableRecordsSize); err != nil {
			return nil, errFontFormat(ec.addError(T(""), "TableRecords",
				"table record entries exceed font size", SeverityCritical, at+12))
		}
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			// fonts in the wild sometimes violate this; lookups do not depend on it
			ec.addWarning(tag, "table records not sorted by tag", at+12)
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundaries".
			ec.addWarning(tag, "table does not start on a 4-byte boundary", off)
		}
		tableEnd, err := checkedAddUint32(off, size)
		if err != nil {
			return nil, errFontFormat(ec.addError(tag, "Size",
				fmt.Sprintf("size calculation overflow: %v", err), SeverityCritical, off))
		}
		if off > uint32(len(src)) || tableEnd > uint32(len(src)) {
			return nil, errFontFormat(ec.addError(tag, "Bounds",
				fmt.Sprintf("bounds [%d:%d] exceed font size %d", off, tableEnd, len(src)), SeverityCritical, off))
		}
		if _, dup := otf.tables[tag]; dup {
			ec.addWarning(tag, "duplicate table record ignored", off)
			continue
		}
		otf.tables[tag] = parseTable(tag, src[off:tableEnd], off, size, ec)
		otf.tags = append(otf.tags, tag)
	}
	if t := otf.tables[T("name")]; t != nil {
		otf.names = t.Self().AsName()
	}
	if otf.names == nil {
		tracer().Infof("font has no usable name table")
	}

	// Transfer accumulated errors and warnings to the Font
	otf.parseErrors = ec.errors
	otf.parseWarnings = ec.warnings
	return otf, nil
}

// parseTable interprets the tables we know about. Errors in interpreted tables
// are recorded but never prevent the font from being usable: such a table
// falls back to a generic one.
func parseTable(t Tag, b binarySegm, offset, size uint32, ec *errorCollector) Table {
	switch t {
	case T("name"):
		if names, err := parseName(t, b, offset, size, ec); err == nil {
			return names
		}
		return newTable(t, b, offset, size)
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", t)
	return newTable(t, b, offset, size)
}

// --- Name table ------------------------------------------------------------

const (
	nameHeaderSize     = 6
	nameRecordSize     = 12
	langTagRecordSize  = 4
	langTagHeaderSize  = 2
	nameFormatLangTags = 1
)

// The naming table allows multilingual strings to be associated with the font.
// These strings can represent copyright notices, font names, family names,
// style names, and so on.
//
// Two formats exist: format 0 consists of a header, an array of name records
// and a storage area for the string data. Format 1 adds an array of
// language-tag records between the name records and the storage area.
// String offsets of both kinds of records are relative to the storage area.
func parseName(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (*NameTable, error) {
	if len(b) < nameHeaderSize {
		fe := ec.addError(tag, "Header", fmt.Sprintf("name table too small: %d bytes", len(b)), SeverityMajor, offset)
		return nil, errFontFormat(fe)
	}
	t := newNameTable(tag, b, offset, size)
	t.Format = u16(b)
	count := int(u16(b[2:]))
	t.storageOffset = int(u16(b[4:]))
	if t.Format > nameFormatLangTags {
		ec.addWarning(tag, fmt.Sprintf("unknown name table format %d, reading as format 0", t.Format), offset)
		t.Format = 0
	}
	tracer().Debugf("name table format %d has %d records, storage at %d", t.Format, count, t.storageOffset)

	recsSize, err := checkedMulInt(nameRecordSize, count)
	if err != nil {
		return nil, errFontFormat(ec.addError(tag, "NameRecords", err.Error(), SeverityMajor, offset))
	}
	headerEnd, _ := checkedAddInt(nameHeaderSize, recsSize)
	if headerEnd > len(b) {
		fe := ec.addError(tag, "NameRecords",
			fmt.Sprintf("%d records exceed table size %d", count, len(b)), SeverityMajor, offset)
		return nil, errFontFormat(fe)
	}
	if t.storageOffset > len(b) {
		fe := ec.addError(tag, "Header",
			fmt.Sprintf("string storage offset %d exceeds table size %d", t.storageOffset, len(b)), SeverityMajor, offset)
		return nil, errFontFormat(fe)
	}
	storage := b[t.storageOffset:]
	recs := b[nameHeaderSize:headerEnd]

	if t.Format == nameFormatLangTags {
		if headerEnd, err = parseLangTags(t, b, headerEnd, storage, ec); err != nil {
			return nil, err
		}
	}

	// Strings must be located after the header structures.
	minStart := headerEnd - t.storageOffset
	t.records = make([]NameRecord, 0, count)
	for i := 0; i < count; i++ {
		r := recs[i*nameRecordSize : (i+1)*nameRecordSize]
		rec := NameRecord{
			PlatformID: u16(r[0:]),
			EncodingID: u16(r[2:]),
			LanguageID: u16(r[4:]),
			NameID:     sfnt.NameID(u16(r[6:])),
		}
		length, strOffset := int(u16(r[8:])), int(u16(r[10:]))
		if strOffset < minStart {
			ec.addWarning(tag, fmt.Sprintf("name record %d: string overlaps table header", i), offset+uint32(nameHeaderSize+i*nameRecordSize))
			continue
		}
		str, err := storage.borrow(strOffset, length)
		if err != nil {
			ec.addWarning(tag, fmt.Sprintf("name record %d: string [%d:%d] outside storage", i, strOffset, strOffset+length),
				offset+uint32(nameHeaderSize+i*nameRecordSize))
			continue
		}
		if t.Format == nameFormatLangTags && rec.LanguageID >= LangTagBase {
			inx := int(rec.LanguageID - LangTagBase)
			if inx >= len(t.langTags) || t.langTags[inx].Len() == 0 {
				ec.addWarning(tag, fmt.Sprintf("name record %d: invalid language tag reference 0x%04x", i, rec.LanguageID),
					offset+uint32(nameHeaderSize+i*nameRecordSize))
				continue
			}
		}
		rec.String = str
		t.records = append(t.records, rec)
	}
	return t, nil
}

// parseLangTags reads the language-tag records of a format 1 name table,
// starting at `at`. Invalid entries are kept as empty records to preserve the
// numbering of the remaining ones. Returns the end of the header structures.
func parseLangTags(t *NameTable, b binarySegm, at int, storage binarySegm, ec *errorCollector) (int, error) {
	n, err := b.u16(at)
	if err != nil {
		fe := ec.addError(t.name, "LangTagRecords", "missing language-tag count", SeverityMajor, t.offset)
		return 0, errFontFormat(fe)
	}
	at += langTagHeaderSize
	end := at + int(n)*langTagRecordSize
	if end > len(b) {
		fe := ec.addError(t.name, "LangTagRecords",
			fmt.Sprintf("%d language tags exceed table size %d", n, len(b)), SeverityMajor, t.offset)
		return 0, errFontFormat(fe)
	}
	t.langTags = make([]LangTagRecord, n)
	for i := 0; i < int(n); i++ {
		length := int(u16(b[at+i*langTagRecordSize:]))
		strOffset := int(u16(b[at+i*langTagRecordSize+2:]))
		if t.storageOffset+strOffset < end {
			ec.addWarning(t.name, fmt.Sprintf("language tag %d overlaps table header", i), t.offset)
			continue
		}
		str, err := storage.borrow(strOffset, length)
		if err != nil {
			ec.addWarning(t.name, fmt.Sprintf("language tag %d outside storage", i), t.offset)
			continue
		}
		t.langTags[i] = LangTagRecord{String: str}
	}
	return end, nil
}
