package otquery

import (
	"iter"

	"github.com/npillmayer/sfntnames/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

// Errors of name lookups. They are the ones of package ot, repeated here for
// clients which do not import ot.
var (
	ErrMissingTable    = ot.ErrMissingTable
	ErrOutOfRange      = ot.ErrOutOfRange
	ErrInvalidArgument = ot.ErrInvalidArgument
)

// NameCount returns the number of valid name records of a font. Fonts without
// a (usable) naming table have 0 records.
func NameCount(otf *ot.Font) int {
	return otf.Names().Count()
}

// Name returns name record i of a font, 0 ≤ i < NameCount(otf).
// The record's string is a view into the font data and is not decoded; use
// Decode to convert it.
func Name(otf *ot.Font, i int) (ot.NameRecord, error) {
	return otf.Names().Record(i)
}

// LangTag returns the language-tag record for a language ID ≥ 0x8000 of a
// format 1 naming table.
func LangTag(otf *ot.Font, langID uint16) (ot.LangTagRecord, error) {
	return otf.Names().LangTag(langID)
}

// NamesRange yields decoded `(nameID, value)` pairs from a font's naming table,
// in record order.
//
// Records with unsupported encodings, undecodable strings or empty values are
// skipped.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		for i, rec := range otf.Names().Records() {
			value, err := Decode(rec)
			if err != nil {
				tracer().Debugf("skipping name record %d: %v", i, err)
				continue
			}
			if value == "" {
				continue
			}
			if !yield(rec.NameID, value) {
				return
			}
		}
	}
}

// nameInfoKeys are the keys of the map returned by NameInfo.
var nameInfoKeys = map[sfnt.NameID]string{
	sfnt.NameIDCopyright:                  "copyright",
	sfnt.NameIDFamily:                     "family",
	sfnt.NameIDSubfamily:                  "subfamily",
	sfnt.NameIDUniqueIdentifier:           "identifier",
	sfnt.NameIDFull:                       "fullname",
	sfnt.NameIDVersion:                    "version",
	sfnt.NameIDPostScript:                 "postscript",
	sfnt.NameIDTrademark:                  "trademark",
	sfnt.NameIDManufacturer:               "manufacturer",
	sfnt.NameIDDesigner:                   "designer",
	sfnt.NameIDDescription:                "description",
	sfnt.NameIDVendorURL:                  "vendor-url",
	sfnt.NameIDDesignerURL:                "designer-url",
	sfnt.NameIDLicense:                    "license",
	sfnt.NameIDLicenseURL:                 "license-url",
	sfnt.NameIDTypographicFamily:          "typographic-family",
	sfnt.NameIDTypographicSubfamily:       "typographic-subfamily",
	sfnt.NameIDSampleText:                 "sample-text",
	sfnt.NameIDCompatibleFull:             "compatible-full",
	sfnt.NameIDPostScriptCID:              "postscript-cid",
	sfnt.NameIDWWSFamily:                  "wws-family",
	sfnt.NameIDWWSSubfamily:               "wws-subfamily",
	sfnt.NameIDLightBackgroundPalette:     "light-palette",
	sfnt.NameIDDarkBackgroundPalette:      "dark-palette",
	sfnt.NameIDVariationsPostScriptPrefix: "variations-prefix",
}

// NameInfo collects well-known names of a font into a map, e.g. "family" or
// "version".
//
// For every name ID the record matching lang best is chosen. Exact matches of
// a lang with region or script win over records of the same base language,
// which win over English records. If lang is language.Und, English records
// are preferred. Among records of equal fitness, Windows records are
// preferred over Unicode records, which are preferred over Macintosh records.
func NameInfo(otf *ot.Font, lang language.Tag) map[string]string {
	type candidate struct {
		value string
		score int
	}
	best := make(map[sfnt.NameID]candidate)
	for i, rec := range otf.Names().Records() {
		key, ok := nameInfoKeys[rec.NameID]
		if !ok {
			continue
		}
		value, err := Decode(rec)
		if err != nil || value == "" {
			tracer().Debugf("name record %d (%s) not decodable", i, key)
			continue
		}
		score := languageFitness(Language(otf, rec), lang)*4 + platformPreference(rec.PlatformID)
		if c, ok := best[rec.NameID]; !ok || score > c.score {
			best[rec.NameID] = candidate{value: value, score: score}
		}
	}
	info := make(map[string]string, len(best))
	for id, c := range best {
		info[nameInfoKeys[id]] = c.value
	}
	return info
}

// languageFitness rates how well the language of a record fits a requested
// language, from 1 (no match) to 4 (exact match). Exact matches require want
// to name a region or script; a bare language like "en" matches "en" and
// "en-US" equally well.
func languageFitness(have, want language.Tag) int {
	if want != language.Und && have == want && isQualified(want) {
		return 4
	}
	if have == language.Und {
		return 1
	}
	hb, _ := have.Base()
	if want != language.Und {
		if wb, conf := want.Base(); conf != language.No && hb == wb {
			return 3
		}
	}
	if eb, _ := language.English.Base(); hb == eb {
		return 2
	}
	return 1
}

// isQualified reports whether a tag explicitly names a region or script.
func isQualified(tag language.Tag) bool {
	_, sc := tag.Script()
	_, rc := tag.Region()
	return sc == language.Exact || rc == language.Exact
}

func platformPreference(platform uint16) int {
	switch PlatformID(platform) {
	case PlatformIDWindows:
		return 3
	case PlatformIDUnicode:
		return 2
	case PlatformIDMacintosh:
		return 1
	}
	return 0
}
