package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/sfntnames/otquery"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

func countOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFace(); err != nil {
		return
	}
	pterm.Printf("name table has %d valid records\n", intp.face.NameCount())
	return
}

func nameOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFace(); err != nil {
		return
	}
	if op.noArg() {
		return errors.New("usage: name:<index>"), false
	}
	var i int
	if i, err = op.intArg(); err != nil {
		return
	}
	rec, err := intp.face.Name(i)
	if err != nil {
		return err, false
	}
	printNameRecord(i, rec)
	return
}

func decodeOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFace(); err != nil {
		return
	}
	if op.noArg() {
		return errors.New("usage: decode:<index>"), false
	}
	var i int
	if i, err = op.intArg(); err != nil {
		return
	}
	rec, err := intp.face.Name(i)
	if err != nil {
		return err, false
	}
	value, err := otquery.Decode(rec)
	if err != nil {
		return err, false
	}
	lang := otquery.Language(intp.face.Font, rec)
	pterm.Printf("record %d [%s, %s]: %q\n", i, formatNameID(uint16(rec.NameID)), lang, value)
	return
}

func listOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFace(); err != nil {
		return
	}
	if intp.face.NameCount() == 0 {
		pterm.Printf("font has no name records\n")
		return
	}
	data := [][]string{
		{"Index", "Platform", "Encoding", "Language", "Name", "Length", "Value"},
	}
	for i, rec := range intp.face.Font.Names().Records() {
		lang := otquery.Language(intp.face.Font, rec)
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			formatPlatform(rec.PlatformID),
			fmt.Sprintf("%d", rec.EncodingID),
			fmt.Sprintf("0x%04x %s", rec.LanguageID, lang),
			formatNameID(uint16(rec.NameID)),
			fmt.Sprintf("%d", rec.Len()),
			formatValue(rec),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return
}

func langOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFace(); err != nil {
		return
	}
	if op.noArg() {
		pterm.Printf("name table has %d language tags\n", intp.face.Font.Names().LangTagCount())
		return
	}
	var id int
	if id, err = op.intArg(); err != nil {
		return
	}
	if id < 0 || id > 0xffff {
		return fmt.Errorf("language ID out of range: %d", id), false
	}
	ltag, err := intp.face.LangTag(uint16(id))
	if err != nil {
		return err, false
	}
	tag, err := otquery.DecodeLangTag(ltag)
	if err != nil {
		return err, false
	}
	pterm.Printf("language ID 0x%04x => %s\n", id, tag)
	return
}

func infoOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFace(); err != nil {
		return
	}
	lang := language.Und
	if l, ok := op.hasArg(); ok {
		if lang, err = language.Parse(l); err != nil {
			return fmt.Errorf("invalid language %q: %w", l, err), false
		}
	}
	info := otquery.NameInfo(intp.face.Font, lang)
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data := [][]string{{"Key", "Value"}}
	for _, k := range keys {
		data = append(data, []string{k, info[k]})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return
}

func tablesOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFace(); err != nil {
		return
	}
	data := [][]string{{"Tag", "Offset", "Size"}}
	for _, tag := range intp.face.Font.TableTags() {
		offset, size := intp.face.Font.Table(tag).Extent()
		data = append(data, []string{tag.String(), fmt.Sprintf("%d", offset), fmt.Sprintf("%d", size)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return
}

func faceOp(intp *Intp, op *Op) (err error, stop bool) {
	if op.noArg() {
		pterm.Printf("font file holds %d fonts\n", len(intp.faces))
		for _, face := range intp.faces {
			pterm.Printf("%3d  %s\n", face.Index, face.FullName(language.Und))
		}
		return
	}
	var i int
	if i, err = op.intArg(); err != nil {
		return
	}
	return intp.selectFace(i), false
}
