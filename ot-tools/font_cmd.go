package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/sfntnames/ot"
	"github.com/npillmayer/sfntnames/otquery"
	"github.com/thatisuday/commando"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	face := mustLoadFace(fontPath, mustFlagInt(flags["index"], "index"))
	otf := face.Font
	lang, err := parseLanguage(flags["lang"])
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Path: %s\n", fontPath)
	fmt.Printf("Type: %s\n", fontType(otf))
	names := otquery.NameInfo(otf, lang)
	family, subfamily := face.FamilyName()
	if fullname := face.FullName(lang); fullname != "" {
		fmt.Printf("Full name: %s\n", fullname)
	}
	if face.ReportedName != "" && face.ReportedName != names["fullname"] {
		fmt.Printf("Full name (x/image): %s\n", face.ReportedName)
	}
	if family != "" {
		fmt.Printf("Family: %s\n", family)
	}
	if subfamily != "" {
		fmt.Printf("Subfamily: %s\n", subfamily)
	}
	if version := names["version"]; version != "" {
		fmt.Printf("Version: %s\n", version)
	}
	if names := otf.Names(); names != nil {
		fmt.Printf("Names: format=%d records=%d langtags=%d\n", names.Format, names.Count(), names.LangTagCount())
	} else {
		fmt.Println("Names: none")
	}

	tags := otf.TableTags()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	fmt.Printf("Tables (%d):", len(tags))
	for _, tag := range tags {
		fmt.Printf(" %s", tag.String())
	}
	fmt.Println()

	errs := otf.Errors()
	warns := otf.Warnings()
	fmt.Printf("Issues: errors=%d warnings=%d\n", len(errs), len(warns))

	if len(args["tables"].Value) > 0 {
		printSelectedTables(otf, args["tables"].Value)
	}
	if mustFlagBool(flags["errors"], "errors") {
		for _, e := range errs {
			fmt.Printf("error: %s\n", e.Error())
		}
		for _, w := range warns {
			fmt.Printf("warning: %s\n", w.String())
		}
	}
}

func fontType(otf *ot.Font) string {
	switch otf.Header.FontType {
	case ot.FontTypeOpenType:
		return "OpenType (CFF)"
	case ot.FontTypeTrueType, ot.FontTypeAppleTrueType:
		return "TrueType"
	}
	return fmt.Sprintf("unknown (0x%08x)", otf.Header.FontType)
}

func printSelectedTables(otf *ot.Font, raw string) {
	requested := splitCSVSpace(raw)
	for _, t := range requested {
		tagName := strings.TrimSpace(t)
		if tagName == "" {
			continue
		}
		tag := ot.T(tagName)
		table := otf.Table(tag)
		if table == nil {
			fmt.Printf("table %s: missing\n", tagName)
			continue
		}
		off, size := table.Extent()
		fmt.Printf("table %s: offset=%d size=%d\n", tagName, off, size)
	}
}
