package otquery

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// PlatformID identifies the platform convention of a name record.
type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1
	PlatformIDISO       PlatformID = 2 // deprecated
	PlatformIDWindows   PlatformID = 3
	PlatformIDCustom    PlatformID = 4
)

func (p PlatformID) String() string {
	switch p {
	case PlatformIDUnicode:
		return "Unicode"
	case PlatformIDMacintosh:
		return "Macintosh"
	case PlatformIDISO:
		return "ISO"
	case PlatformIDWindows:
		return "Windows"
	case PlatformIDCustom:
		return "Custom"
	}
	return fmt.Sprintf("Platform(%d)", uint16(p))
}

// EncodingID is a platform-specific encoding identifier. The same numeric value
// denotes different encodings on different platforms.
type EncodingID uint16

// Unicode platform encodings
const (
	EncodingIDUnicode10         EncodingID = 0 // deprecated
	EncodingIDUnicode11         EncodingID = 1 // deprecated
	EncodingIDUnicodeISO10646   EncodingID = 2 // deprecated
	EncodingIDUnicodeBMP        EncodingID = 3
	EncodingIDUnicodeFull       EncodingID = 4
	EncodingIDUnicodeVariation  EncodingID = 5 // cmap only
	EncodingIDUnicodeLastResort EncodingID = 6 // cmap only
)

// Macintosh platform encodings (script manager codes), a selection
const (
	EncodingIDMacRoman        EncodingID = 0
	EncodingIDMacJapanese     EncodingID = 1
	EncodingIDMacChineseTrad  EncodingID = 2
	EncodingIDMacKorean       EncodingID = 3
	EncodingIDMacArabic       EncodingID = 4
	EncodingIDMacHebrew       EncodingID = 5
	EncodingIDMacGreek        EncodingID = 6
	EncodingIDMacRussian      EncodingID = 7
	EncodingIDMacChineseSimpl EncodingID = 25
)

// ISO platform encodings
const (
	EncodingIDISOASCII  EncodingID = 0
	EncodingIDISO10646  EncodingID = 1
	EncodingIDISO8859_1 EncodingID = 2
)

// Windows platform encodings
const (
	EncodingIDWindowsSymbol   EncodingID = 0
	EncodingIDWindowsBMP      EncodingID = 1
	EncodingIDWindowsShiftJIS EncodingID = 2
	EncodingIDWindowsPRC      EncodingID = 3
	EncodingIDWindowsBig5     EncodingID = 4
	EncodingIDWindowsWansung  EncodingID = 5
	EncodingIDWindowsJohab    EncodingID = 6
	EncodingIDWindowsUCS4     EncodingID = 10
)

type encodingKey struct {
	platform PlatformID
	encoding EncodingID
}

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// nameEncodings maps (platform, encoding) pairs to character encodings for
// name strings. It is never modified.
//
// Windows names for encodings 0, 1 and 10 are always stored as UTF-16BE, the
// same holds for all Unicode and ISO-10646 names.
var nameEncodings = map[encodingKey]encoding.Encoding{
	{PlatformIDUnicode, EncodingIDUnicode10}:         utf16BE,
	{PlatformIDUnicode, EncodingIDUnicode11}:         utf16BE,
	{PlatformIDUnicode, EncodingIDUnicodeISO10646}:   utf16BE,
	{PlatformIDUnicode, EncodingIDUnicodeBMP}:        utf16BE,
	{PlatformIDUnicode, EncodingIDUnicodeFull}:       utf16BE,
	{PlatformIDUnicode, EncodingIDUnicodeVariation}:  utf16BE,
	{PlatformIDUnicode, EncodingIDUnicodeLastResort}: utf16BE,

	{PlatformIDMacintosh, EncodingIDMacRoman}:        charmap.Macintosh,
	{PlatformIDMacintosh, EncodingIDMacJapanese}:     japanese.ShiftJIS,
	{PlatformIDMacintosh, EncodingIDMacChineseTrad}:  traditionalchinese.Big5,
	{PlatformIDMacintosh, EncodingIDMacKorean}:       korean.EUCKR,
	{PlatformIDMacintosh, EncodingIDMacRussian}:      charmap.MacintoshCyrillic,
	{PlatformIDMacintosh, EncodingIDMacChineseSimpl}: simplifiedchinese.GBK,

	{PlatformIDISO, EncodingIDISOASCII}:  charmap.ISO8859_1,
	{PlatformIDISO, EncodingIDISO10646}:  utf16BE,
	{PlatformIDISO, EncodingIDISO8859_1}: charmap.ISO8859_1,

	{PlatformIDWindows, EncodingIDWindowsSymbol}:   utf16BE,
	{PlatformIDWindows, EncodingIDWindowsBMP}:      utf16BE,
	{PlatformIDWindows, EncodingIDWindowsShiftJIS}: japanese.ShiftJIS,
	{PlatformIDWindows, EncodingIDWindowsPRC}:      simplifiedchinese.GBK,
	{PlatformIDWindows, EncodingIDWindowsBig5}:     traditionalchinese.Big5,
	{PlatformIDWindows, EncodingIDWindowsWansung}:  korean.EUCKR,
	{PlatformIDWindows, EncodingIDWindowsUCS4}:     utf16BE,
}

// Windows CJK names are frequently stored in 16-bit units, with single-byte
// characters padded by a zero byte.
var paddedEncodings = map[encodingKey]bool{
	{PlatformIDWindows, EncodingIDWindowsShiftJIS}: true,
	{PlatformIDWindows, EncodingIDWindowsPRC}:      true,
	{PlatformIDWindows, EncodingIDWindowsBig5}:     true,
	{PlatformIDWindows, EncodingIDWindowsWansung}:  true,
}

// NameEncoding returns the character encoding of name strings for a
// (platform, encoding) pair. It returns false if the pair is unknown or
// its encoding is not supported.
func NameEncoding(platform PlatformID, enc EncodingID) (encoding.Encoding, bool) {
	e, ok := nameEncodings[encodingKey{platform, enc}]
	return e, ok
}
