package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/sfntnames"
	"github.com/thatisuday/commando"
	"golang.org/x/text/language"
)

func main() {
	commando.
		SetExecutableName("ot-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for inspecting the naming table of TrueType and OpenType fonts.")

	commando.
		Register("names").
		SetDescription("Print the name records of a font, decoded where possible.").
		SetShortDescription("list name records").
		AddArgument("font", "font file path (TTF, OTF or TTC)", "").
		AddFlag("index,i", "font index within a collection", commando.Int, 0).
		AddFlag("lang,l", "only records of this language (BCP 47, e.g. en, de-AT)", commando.String, "-").
		AddFlag("name-ids,n", "only these name IDs (e.g. 1,2,16,17)", commando.String, "-").
		AddFlag("raw,r", "print raw string bytes instead of decoded text", commando.Bool, nil).
		AddFlag("langtags,t", "print the language tags of format 1 naming tables", commando.Bool, nil).
		SetAction(runNamesCommand)

	commando.
		Register("font").
		SetDescription("Print diagnostics and table information for a font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "font file path (TTF, OTF or TTC)", "").
		AddArgument("tables...", "optional list of table tags (e.g. name,head)", "").
		AddFlag("index,i", "font index within a collection", commando.Int, 0).
		AddFlag("lang,l", "preferred language of names (BCP 47)", commando.String, "en").
		AddFlag("errors,e", "print parse errors and warnings", commando.Bool, nil).
		SetAction(runFontCommand)

	commando.Parse(nil)
}

func parseLanguage(flag commando.FlagValue) (language.Tag, error) {
	s, err := flag.GetString()
	if err != nil {
		return language.Und, fmt.Errorf("invalid --lang flag: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return language.Und, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language tag %q: %w", s, err)
	}
	return tag, nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// mustLoadFace loads font number index from a font file. Single fonts are
// treated as collections of size 1.
func mustLoadFace(path string, index int) *sfntnames.Face {
	faces, err := sfntnames.LoadCollection(path)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	if index < 0 || index >= len(faces) {
		fatalf("font index %d out of range, %s holds %d fonts", index, path, len(faces))
	}
	return faces[index]
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ot-tools: "+format+"\n", args...)
	os.Exit(1)
}
