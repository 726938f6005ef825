package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sfntnames/ot"
	"github.com/npillmayer/sfntnames/otquery"
	"github.com/pterm/pterm"
)

// maximum number of string bytes to print in hex
const maxHexBytes = 32

func printNameRecord(i int, rec ot.NameRecord) {
	data := [][]string{
		{"Field", "Value"},
		{"Index", fmt.Sprintf("%d", i)},
		{"Platform", formatPlatform(rec.PlatformID)},
		{"Encoding", fmt.Sprintf("%d", rec.EncodingID)},
		{"Language", fmt.Sprintf("0x%04x", rec.LanguageID)},
		{"Name", formatNameID(uint16(rec.NameID))},
		{"Length", fmt.Sprintf("%d", rec.Len())},
		{"Bytes", formatHex(rec.String)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatPlatform(platform uint16) string {
	return fmt.Sprintf("%d (%s)", platform, otquery.PlatformID(platform))
}

var nameIDNames = []string{
	"Copyright",
	"Family",
	"Subfamily",
	"UniqueID",
	"FullName",
	"Version",
	"PostScript",
	"Trademark",
	"Manufacturer",
	"Designer",
	"Description",
	"VendorURL",
	"DesignerURL",
	"License",
	"LicenseURL",
	"Reserved",
	"TypoFamily",
	"TypoSubfamily",
	"CompatibleFull",
	"SampleText",
	"PostScriptCID",
	"WWSFamily",
	"WWSSubfamily",
	"LightPalette",
	"DarkPalette",
	"VariationsPrefix",
}

func formatNameID(id uint16) string {
	if int(id) < len(nameIDNames) {
		return fmt.Sprintf("%d (%s)", id, nameIDNames[id])
	}
	return fmt.Sprintf("%d", id)
}

func formatHex(b []byte) string {
	sb := strings.Builder{}
	for i, c := range b {
		if i == maxHexBytes {
			sb.WriteString(" …")
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%02x", c))
	}
	return sb.String()
}

func formatValue(rec ot.NameRecord) string {
	value, err := otquery.Decode(rec)
	if err != nil {
		return "<undecodable>"
	}
	if runes := []rune(value); len(runes) > 60 {
		value = string(runes[:57]) + "..."
	}
	return fmt.Sprintf("%q", value)
}
