// Package ttxtest reads expectations for tests from TTX dumps, the XML format
// of fontTools.
package ttxtest

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/sfntnames/internal/fonttest"
	"golang.org/x/text/encoding/charmap"
)

// ParseTTXName parses a TTX XML dump containing a 'name' table into an
// ExpectedName model.
func ParseTTXName(path string) (*ExpectedName, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTTXNameData(data)
}

// ParseTTXNameData is ParseTTXName for TTX data in memory.
func ParseTTXNameData(data []byte) (*ExpectedName, error) {
	var font ttxFont
	if err := xml.Unmarshal(data, &font); err != nil {
		return nil, err
	}
	if font.Name == nil {
		return nil, fmt.Errorf("ttx: missing name table")
	}
	exp := &ExpectedName{}
	for i, nr := range font.Name.Records {
		rec, err := nr.toExpected()
		if err != nil {
			return nil, fmt.Errorf("ttx: namerecord #%d: %w", i, err)
		}
		exp.Records = append(exp.Records, rec)
	}
	return exp, nil
}

// NameTable encodes the expected records into a 'name' table description,
// ready to be serialized by package fonttest.
//
// Unicode and Windows strings are encoded as UTF-16BE, Macintosh strings with
// Roman encoding as Mac Roman. Other encodings are not supported.
func (n *ExpectedName) NameTable() (fonttest.NameTable, error) {
	nt := fonttest.NameTable{}
	for _, r := range n.Records {
		var str []byte
		switch {
		case r.PlatformID == 0 || r.PlatformID == 3:
			str = fonttest.UTF16(r.Value)
		case r.PlatformID == 1 && r.EncodingID == 0:
			b, err := charmap.Macintosh.NewEncoder().Bytes([]byte(r.Value))
			if err != nil {
				return nt, fmt.Errorf("ttx: cannot encode %q as Mac Roman: %w", r.Value, err)
			}
			str = b
		default:
			return nt, fmt.Errorf("ttx: unsupported encoding %d/%d", r.PlatformID, r.EncodingID)
		}
		nt.Records = append(nt.Records, fonttest.Record{
			PlatformID: r.PlatformID,
			EncodingID: r.EncodingID,
			LanguageID: r.LanguageID,
			NameID:     r.NameID,
			String:     str,
		})
	}
	return nt, nil
}

type ttxFont struct {
	Name *ttxName `xml:"name"`
}

type ttxName struct {
	Records []ttxNameRecord `xml:"namerecord"`
}

type ttxNameRecord struct {
	NameID     string `xml:"nameID,attr"`
	PlatformID string `xml:"platformID,attr"`
	PlatEncID  string `xml:"platEncID,attr"`
	LangID     string `xml:"langID,attr"`
	Text       string `xml:",chardata"`
}

func (nr ttxNameRecord) toExpected() (rec ExpectedNameRecord, err error) {
	if rec.NameID, err = ttxValue(nr.NameID).U16(); err != nil {
		return rec, fmt.Errorf("invalid nameID: %w", err)
	}
	if rec.PlatformID, err = ttxValue(nr.PlatformID).U16(); err != nil {
		return rec, fmt.Errorf("invalid platformID: %w", err)
	}
	if rec.EncodingID, err = ttxValue(nr.PlatEncID).U16(); err != nil {
		return rec, fmt.Errorf("invalid platEncID: %w", err)
	}
	if rec.LanguageID, err = ttxValue(nr.LangID).U16(); err != nil {
		return rec, fmt.Errorf("invalid langID: %w", err)
	}
	rec.Value = strings.TrimSpace(nr.Text)
	return rec, nil
}

type ttxValue string

func (v ttxValue) U16() (uint16, error) {
	if v == "" {
		return 0, fmt.Errorf("missing value")
	}
	s := string(v)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 16)
		return uint16(n), err
	}
	n, err := strconv.ParseUint(s, 10, 16)
	return uint16(n), err
}
