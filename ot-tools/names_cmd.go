package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/sfntnames/ot"
	"github.com/npillmayer/sfntnames/otquery"
	"github.com/thatisuday/commando"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

func runNamesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	face := mustLoadFace(fontPath, mustFlagInt(flags["index"], "index"))
	lang, err := parseLanguage(flags["lang"])
	if err != nil {
		fatalf("%v", err)
	}
	ids, err := parseNameIDs(flags["name-ids"])
	if err != nil {
		fatalf("%v", err)
	}
	raw := mustFlagBool(flags["raw"], "raw")
	langtags := mustFlagBool(flags["langtags"], "langtags")

	for i, rec := range face.Font.Names().Records() {
		if len(ids) > 0 && !ids[rec.NameID] {
			continue
		}
		recLang := otquery.Language(face.Font, rec)
		if lang != language.Und && !sameBaseLanguage(lang, recLang) {
			continue
		}
		fmt.Printf("%3d  %d/%d/0x%04x  %-5d %-8s ", i, rec.PlatformID, rec.EncodingID,
			rec.LanguageID, rec.NameID, recLang)
		if raw {
			fmt.Printf("% x\n", rec.String)
			continue
		}
		value, err := otquery.Decode(rec)
		if err != nil {
			fmt.Printf("<%v>\n", err)
			continue
		}
		fmt.Printf("%q\n", value)
	}
	if langtags {
		printLangTags(face.Font)
	}
}

func printLangTags(otf *ot.Font) {
	names := otf.Names()
	for i := 0; i < names.LangTagCount(); i++ {
		id := uint16(ot.LangTagBase + i)
		ltag, err := names.LangTag(id)
		if err != nil {
			continue
		}
		tag, err := otquery.DecodeLangTag(ltag)
		if err != nil {
			fmt.Printf("langtag 0x%04x: <%v>\n", id, err)
			continue
		}
		fmt.Printf("langtag 0x%04x: %s\n", id, tag)
	}
}

func parseNameIDs(flag commando.FlagValue) (map[sfnt.NameID]bool, error) {
	s, err := flag.GetString()
	if err != nil {
		return nil, fmt.Errorf("invalid --name-ids flag: %w", err)
	}
	if s = strings.TrimSpace(s); s == "" || s == "-" {
		return nil, nil
	}
	ids := make(map[sfnt.NameID]bool)
	for _, item := range splitCSVSpace(s) {
		n, err := strconv.ParseUint(item, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid name ID %q: %w", item, err)
		}
		ids[sfnt.NameID(n)] = true
	}
	return ids, nil
}

func sameBaseLanguage(a, b language.Tag) bool {
	ab, _ := a.Base()
	bb, _ := b.Base()
	return ab == bb
}
