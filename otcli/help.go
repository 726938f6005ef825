package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "name", "names", "record", "records":
		pterm.Info.Println("Name Records")
		pterm.Println(`
	The naming table consists of a header and a list of name records:
	+----------+----------+----------+--------+--------+--------+
	| Platform | Encoding | Language | NameID | Length | Offset |
	+----------+----------+----------+--------+--------+--------+
	Offsets point into the table's string storage. The encoding of a string
	depends on platform and encoding IDs. Windows and Unicode strings are
	stored as UTF-16BE, Macintosh strings use 8-bit script encodings.

	name:<i>    shows record i
	decode:<i>  shows record i as text
	list        shows all records
	`)
	case "lang", "langs", "language", "langtag":
		pterm.Info.Println("Languages")
		pterm.Println(`
	Language IDs are platform specific: Windows uses LCIDs (e.g. 0x0409 for en-US),
	Macintosh uses its own codes (e.g. 0 for English).
	Naming tables of format 1 may carry language-tag records. Language IDs
	from 0x8000 on refer to these tags, which are BCP 47 strings:
	+--------+--------+
	| Length | Offset |
	+--------+--------+

	lang:<id>   shows the language tag for an ID >= 0x8000
	info:<lang> shows well-known names, preferring language <lang>
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	count       number of name records
	name:<i>    raw name record i
	decode:<i>  decoded name record i
	list        all name records, decoded if possible
	lang:<id>   language tag of format 1 naming tables
	info[:lang] well-known names (family, version, ...)
	tables      table directory of the font
	face[:i]    list fonts of a collection, or switch to font i
	help:<topic> help for topics 'names' or 'lang'
	quit        leave the CLI
	`)
	}
}
