// Package fonttest assembles small synthetic SFNT fonts for tests.
//
// Fonts built here contain just the tables a test asks for; they are not
// renderable, but are valid with respect to the SFNT container format.
package fonttest

import (
	"encoding/binary"
	"sort"
	"unicode/utf16"
)

// Record is a name record to be written into a 'name' table.
type Record struct {
	PlatformID, EncodingID, LanguageID, NameID uint16
	String                                     []byte
}

// NameTable describes a 'name' table. Strings are written to the storage
// area in record order, followed by the language tags (format 1 only).
type NameTable struct {
	Format   uint16
	Records  []Record
	LangTags [][]byte
}

// UTF16 encodes s as UTF-16BE, the encoding of Unicode and Windows names.
func UTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(b[2*i:], u)
	}
	return b
}

// NameRecordPos returns the position of the i-th name record within a
// 'name' table, for tests which want to corrupt a record.
func NameRecordPos(i int) int {
	return 6 + 12*i
}

// SetU16 overwrites the big-endian uint16 at position at.
func SetU16(b []byte, at int, v uint16) {
	binary.BigEndian.PutUint16(b[at:], v)
}

// Bytes serializes the table.
func (nt NameTable) Bytes() []byte {
	headerSize := 6 + 12*len(nt.Records)
	if nt.Format == 1 {
		headerSize += 2 + 4*len(nt.LangTags)
	}
	var storage []byte
	b := make([]byte, headerSize)
	binary.BigEndian.PutUint16(b[0:], nt.Format)
	binary.BigEndian.PutUint16(b[2:], uint16(len(nt.Records)))
	binary.BigEndian.PutUint16(b[4:], uint16(headerSize))
	for i, r := range nt.Records {
		p := NameRecordPos(i)
		binary.BigEndian.PutUint16(b[p:], r.PlatformID)
		binary.BigEndian.PutUint16(b[p+2:], r.EncodingID)
		binary.BigEndian.PutUint16(b[p+4:], r.LanguageID)
		binary.BigEndian.PutUint16(b[p+6:], r.NameID)
		binary.BigEndian.PutUint16(b[p+8:], uint16(len(r.String)))
		binary.BigEndian.PutUint16(b[p+10:], uint16(len(storage)))
		storage = append(storage, r.String...)
	}
	if nt.Format == 1 {
		p := NameRecordPos(len(nt.Records))
		binary.BigEndian.PutUint16(b[p:], uint16(len(nt.LangTags)))
		p += 2
		for i, tag := range nt.LangTags {
			binary.BigEndian.PutUint16(b[p+4*i:], uint16(len(tag)))
			binary.BigEndian.PutUint16(b[p+4*i+2:], uint16(len(storage)))
			storage = append(storage, tag...)
		}
	}
	return append(b, storage...)
}

// Tables maps table tags to table data.
type Tables map[string][]byte

// Font builds a single TrueType-flavoured SFNT font from tables.
func Font(tables Tables) []byte {
	return build(tables, 0)
}

// Collection builds a TrueType collection (*.ttc) containing one font for
// each entry of fonts.
func Collection(fonts ...Tables) []byte {
	headerSize := 12 + 4*len(fonts)
	b := make([]byte, headerSize)
	copy(b, "ttcf")
	binary.BigEndian.PutUint16(b[4:], 1)
	binary.BigEndian.PutUint32(b[8:], uint32(len(fonts)))
	for i, tables := range fonts {
		at := len(b)
		binary.BigEndian.PutUint32(b[12+4*i:], uint32(at))
		b = append(b, build(tables, at)...)
	}
	return b
}

// build writes the offset table, the table directory and the padded tables.
// Table offsets are relative to the start of the file, which starts base bytes
// before the returned data.
func build(tables Tables, base int) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, (tag + "    ")[:4])
	}
	sort.Strings(tags)
	n := len(tags)
	dirSize := 12 + 16*n
	b := make([]byte, dirSize)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint16(b[4:], uint16(n))
	entrySelector := 0
	for 1<<(entrySelector+1) <= n {
		entrySelector++
	}
	if n > 0 {
		searchRange := 16 << entrySelector
		binary.BigEndian.PutUint16(b[6:], uint16(searchRange))
		binary.BigEndian.PutUint16(b[8:], uint16(entrySelector))
		binary.BigEndian.PutUint16(b[10:], uint16(16*n-searchRange))
	}
	for i, tag := range tags {
		data := lookup(tables, tag)
		p := 12 + 16*i
		copy(b[p:], tag)
		binary.BigEndian.PutUint32(b[p+4:], checksum(data))
		binary.BigEndian.PutUint32(b[p+8:], uint32(base+len(b)))
		binary.BigEndian.PutUint32(b[p+12:], uint32(len(data)))
		b = append(b, data...)
		for len(b)%4 != 0 {
			b = append(b, 0)
		}
	}
	return b
}

func lookup(tables Tables, tag string) []byte {
	if data, ok := tables[tag]; ok {
		return data
	}
	for t, data := range tables {
		if (t + "    ")[:4] == tag {
			return data
		}
	}
	return nil
}

func checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var w [4]byte
		copy(w[:], data[i:])
		sum += binary.BigEndian.Uint32(w[:])
	}
	return sum
}
