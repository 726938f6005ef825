package otquery

import (
	"errors"
	"fmt"

	"github.com/npillmayer/sfntnames/ot"
	"golang.org/x/text/language"
)

// ErrUnsupportedEncoding is returned when decoding a name record whose
// (platform, encoding) pair has no known character encoding.
var ErrUnsupportedEncoding = errors.New("unsupported name encoding")

// Decode converts the raw string of a name record to a Go string, using the
// encoding given by the record's platform and encoding IDs.
// The record's bytes are not modified.
func Decode(rec ot.NameRecord) (string, error) {
	key := encodingKey{PlatformID(rec.PlatformID), EncodingID(rec.EncodingID)}
	enc, ok := nameEncodings[key]
	if !ok {
		return "", fmt.Errorf("%w: platform %s, encoding %d", ErrUnsupportedEncoding,
			key.platform, rec.EncodingID)
	}
	str := rec.String
	if paddedEncodings[key] {
		str = dropZeroBytes(str)
	}
	s, err := enc.NewDecoder().Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding %s/%d name: %w", key.platform, rec.EncodingID, err)
	}
	return string(s), nil
}

// DecodeLangTag decodes a language-tag record of a format 1 name table and
// parses it as a BCP 47 tag.
func DecodeLangTag(rec ot.LangTagRecord) (language.Tag, error) {
	s, err := decodeNameUTF16(rec.String)
	if err != nil {
		return language.Und, err
	}
	return language.Parse(s)
}

func decodeNameUTF16(str []byte) (string, error) {
	s, err := utf16BE.NewDecoder().Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}

// dropZeroBytes returns a copy of b without zero bytes.
func dropZeroBytes(b []byte) []byte {
	r := make([]byte, 0, len(b))
	for _, c := range b {
		if c != 0 {
			r = append(r, c)
		}
	}
	return r
}
