package ot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sfntnames/internal/fonttest"
	"golang.org/x/image/font/sfnt"
)

func TestNameRecordAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	names := loadExampleFont(t).Names()
	if names == nil {
		t.Fatalf("expected example font to have a name table")
	}
	if names.Count() != 3 {
		t.Fatalf("expected 3 name records, have %d", names.Count())
	}
	for i := 0; i < names.Count(); i++ {
		if _, err := names.Record(i); err != nil {
			t.Errorf("expected record %d to be accessible, have %v", i, err)
		}
	}
	rec, err := names.Record(1)
	if err != nil {
		t.Fatal(err)
	}
	if rec.PlatformID != 3 || rec.EncodingID != 1 || rec.LanguageID != 0x409 || rec.NameID != sfnt.NameIDFamily {
		t.Errorf("unexpected identifiers for record 1: %+v", rec)
	}
	want := fonttest.UTF16("Example Font")
	if !bytes.Equal(rec.String, want) {
		t.Errorf("expected record 1 to hold UTF-16BE 'Example Font', have %v", rec.String)
	}
	if rec.Len() != len(want) {
		t.Errorf("expected string length %d, have %d", len(want), rec.Len())
	}
	_, err = names.Record(3)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected record 3 to be out of range, have %v", err)
	}
	_, err = names.Record(-1)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected record -1 to be out of range, have %v", err)
	}
}

func TestNameRecordIsIdempotent(t *testing.T) {
	names := loadExampleFont(t).Names()
	for i := 0; i < names.Count(); i++ {
		a, _ := names.Record(i)
		b, _ := names.Record(i)
		if a.PlatformID != b.PlatformID || a.EncodingID != b.EncodingID ||
			a.LanguageID != b.LanguageID || a.NameID != b.NameID || !bytes.Equal(a.String, b.String) {
			t.Errorf("record %d differs between calls: %+v vs %+v", i, a, b)
		}
	}
}

func TestNameRecordStringIsBorrowed(t *testing.T) {
	data := exampleFontBytes()
	otf, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	rec, _ := otf.Names().Record(0)
	if string(rec.String) != "Example Font" {
		t.Fatalf("unexpected Mac Roman string %q", rec.String)
	}
	if cap(rec.String) != len(rec.String) {
		t.Errorf("expected capacity of borrowed string to be clipped, is %d", cap(rec.String))
	}
	// appending must not write into the font data
	before := bytes.Clone(data)
	_ = append(rec.String, '!')
	if !bytes.Equal(before, data) {
		t.Errorf("appending to a record string modified the font data")
	}
	// the string is a view: changes to the font data are visible
	i := bytes.Index(data, []byte("Example Font"))
	data[i] = 'e'
	if rec.String[0] != 'e' {
		t.Errorf("expected record string to be a view into the font data")
	}
}

func TestMissingNameTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf, err := Parse(fonttest.Font(fonttest.Tables{"head": make([]byte, 54)}))
	if err != nil {
		t.Fatal(err)
	}
	names := otf.Names()
	if names.Count() != 0 {
		t.Errorf("expected no name records, have %d", names.Count())
	}
	for _, i := range []int{0, 1, -1} {
		if _, err := names.Record(i); !errors.Is(err, ErrMissingTable) {
			t.Errorf("expected MissingTable for index %d, have %v", i, err)
		}
	}
	if _, err := names.LangTag(LangTagBase); !errors.Is(err, ErrMissingTable) {
		t.Errorf("expected MissingTable for language tag, have %v", err)
	}
	n := 0
	for range names.Records() {
		n++
	}
	if n != 0 {
		t.Errorf("expected nil table to iterate over no records")
	}
}

func TestEmptyNameTable(t *testing.T) {
	otf, err := Parse(fonttest.Font(fonttest.Tables{"name": fonttest.NameTable{}.Bytes()}))
	if err != nil {
		t.Fatal(err)
	}
	if otf.Names() == nil {
		t.Fatalf("expected empty name table to be present")
	}
	if otf.Names().Count() != 0 {
		t.Errorf("expected 0 records")
	}
	if _, err := otf.Names().Record(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected OutOfRange for empty table, have %v", err)
	}
}

func TestZeroLengthStringIsKept(t *testing.T) {
	nt := fonttest.NameTable{Records: []fonttest.Record{
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x409, NameID: 7},
	}}
	otf, err := Parse(fonttest.Font(fonttest.Tables{"name": nt.Bytes()}))
	if err != nil {
		t.Fatal(err)
	}
	rec, err := otf.Names().Record(0)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Len() != 0 || rec.NameID != sfnt.NameIDTrademark {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestOutOfBoundsRecordIsDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	table := exampleNameTable().Bytes()
	fonttest.SetU16(table, fonttest.NameRecordPos(0)+8, 1000) // length of record 0
	otf, err := Parse(fonttest.Font(fonttest.Tables{"name": table}))
	if err != nil {
		t.Fatal(err)
	}
	names := otf.Names()
	if names.Count() != 2 {
		t.Fatalf("expected corrupt record to be dropped, have %d records", names.Count())
	}
	rec, _ := names.Record(0)
	if rec.PlatformID != 3 || rec.NameID != sfnt.NameIDFamily {
		t.Errorf("expected indices to run over valid records only, record 0 is %+v", rec)
	}
	if len(otf.Warnings()) != 1 || !strings.Contains(otf.Warnings()[0].Issue, "outside storage") {
		t.Errorf("expected one warning about the dropped record, have %v", otf.Warnings())
	}
}

func TestRecordOverlappingHeaderIsDropped(t *testing.T) {
	table := exampleNameTable().Bytes()
	// string offsets are relative to the storage area; make storage start at
	// the header and let record 2 point into the record array
	storage := int(u16(table[4:]))
	fonttest.SetU16(table, 4, 0)
	for i := 0; i < 3; i++ {
		p := fonttest.NameRecordPos(i) + 10
		fonttest.SetU16(table, p, u16(table[p:])+uint16(storage))
	}
	fonttest.SetU16(table, fonttest.NameRecordPos(2)+10, 6)
	otf, err := Parse(fonttest.Font(fonttest.Tables{"name": table}))
	if err != nil {
		t.Fatal(err)
	}
	if otf.Names().Count() != 2 {
		t.Errorf("expected record pointing into the header to be dropped, have %d records", otf.Names().Count())
	}
	rec, _ := otf.Names().Record(1)
	if !bytes.Equal(rec.String, fonttest.UTF16("Example Font")) {
		t.Errorf("expected relocated strings to be found, have %v", rec.String)
	}
}

func TestCorruptNameHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	table := exampleNameTable().Bytes()
	fonttest.SetU16(table, 2, 500) // record count
	otf, err := Parse(fonttest.Font(fonttest.Tables{"name": table}))
	if err != nil {
		t.Fatalf("expected font to be usable despite corrupt name table, have %v", err)
	}
	if otf.Names() != nil {
		t.Errorf("expected corrupt name table not to be interpreted")
	}
	if otf.Table(T("name")) == nil {
		t.Errorf("expected corrupt name table to remain accessible as generic table")
	}
	if len(otf.Errors()) != 1 || otf.Errors()[0].Severity != SeverityMajor {
		t.Errorf("expected one major error, have %v", otf.Errors())
	}
	if _, err := otf.Names().Record(0); !errors.Is(err, ErrMissingTable) {
		t.Errorf("expected MissingTable for corrupt name table, have %v", err)
	}
}

func TestNameTableFormat1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	nt := fonttest.NameTable{
		Format: 1,
		Records: []fonttest.Record{
			{PlatformID: 3, EncodingID: 1, LanguageID: 0x409, NameID: 1, String: fonttest.UTF16("Example")},
			{PlatformID: 0, EncodingID: 4, LanguageID: 0x8000, NameID: 1, String: fonttest.UTF16("Beispiel")},
			{PlatformID: 0, EncodingID: 4, LanguageID: 0x8001, NameID: 1, String: fonttest.UTF16("Exemple")},
			{PlatformID: 0, EncodingID: 4, LanguageID: 0x8005, NameID: 1, String: fonttest.UTF16("dangling")},
		},
		LangTags: [][]byte{fonttest.UTF16("de-AT"), fonttest.UTF16("fr")},
	}
	otf, err := Parse(fonttest.Font(fonttest.Tables{"name": nt.Bytes()}))
	if err != nil {
		t.Fatal(err)
	}
	names := otf.Names()
	if names.Format != 1 || names.LangTagCount() != 2 {
		t.Fatalf("expected format 1 with 2 language tags, have %d/%d", names.Format, names.LangTagCount())
	}
	if names.Count() != 3 {
		t.Errorf("expected record with dangling language tag to be dropped, have %d records", names.Count())
	}
	tag, err := names.LangTag(0x8000)
	if err != nil || !bytes.Equal(tag.String, fonttest.UTF16("de-AT")) || tag.Len() != 10 {
		t.Errorf("unexpected language tag 0x8000: %v, %v", tag.String, err)
	}
	if _, err := names.LangTag(0x409); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected InvalidArgument for platform language ID, have %v", err)
	}
	if _, err := names.LangTag(0x8002); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected OutOfRange for language tag 0x8002, have %v", err)
	}
	format0 := loadExampleFont(t).Names()
	if _, err := format0.LangTag(0x8000); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected InvalidArgument for format 0 table, have %v", err)
	}
}

func TestRecordsIterator(t *testing.T) {
	names := loadExampleFont(t).Names()
	var ids []sfnt.NameID
	for i, rec := range names.Records() {
		if i != len(ids) {
			t.Errorf("expected consecutive indices, have %d", i)
		}
		ids = append(ids, rec.NameID)
		if len(ids) == 2 {
			break
		}
	}
	if len(ids) != 2 || ids[0] != sfnt.NameIDFamily || ids[1] != sfnt.NameIDFamily {
		t.Errorf("unexpected name IDs %v", ids)
	}
}
