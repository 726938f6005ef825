package otquery

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sfntnames/internal/fonttest"
	"github.com/npillmayer/sfntnames/ot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.query")
	defer teardown()
	//
	tests := []struct {
		platform, encoding uint16
		str                []byte
		value              string
	}{
		{3, 1, fonttest.UTF16("Example Font"), "Example Font"},
		{0, 3, fonttest.UTF16("Grüße"), "Grüße"},
		{0, 4, fonttest.UTF16("𝔉ont"), "𝔉ont"},
		{1, 0, []byte("Caf\x8e"), "Café"},
		{1, 1, []byte{0x93, 0xfa, 0x96, 0x7b}, "日本"},
		{2, 2, []byte("Caf\xe9"), "Café"},
		{3, 2, []byte{0x00, 'F', 0x00, 'o', 0x93, 0xfa, 0x96, 0x7b}, "Fo日本"},
	}
	for _, test := range tests {
		rec := ot.NameRecord{PlatformID: test.platform, EncodingID: test.encoding, String: test.str}
		value, err := Decode(rec)
		require.NoError(t, err, "platform %d, encoding %d", test.platform, test.encoding)
		assert.Equal(t, test.value, value, "platform %d, encoding %d", test.platform, test.encoding)
	}
}

func TestDecodeDoesNotModifyRecord(t *testing.T) {
	str := []byte{0x00, 'A', 0x00, 'B'}
	_, err := Decode(ot.NameRecord{PlatformID: 3, EncodingID: 3, String: str})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 'A', 0x00, 'B'}, str)
}

func TestDecodeUnsupportedEncoding(t *testing.T) {
	for _, rec := range []ot.NameRecord{
		{PlatformID: 1, EncodingID: 4}, // Mac Arabic
		{PlatformID: 3, EncodingID: 7},
		{PlatformID: 4, EncodingID: 0},
	} {
		_, err := Decode(rec)
		assert.True(t, errors.Is(err, ErrUnsupportedEncoding), "expected %d/%d to be unsupported, have %v",
			rec.PlatformID, rec.EncodingID, err)
	}
}

func TestNameEncoding(t *testing.T) {
	_, ok := NameEncoding(PlatformIDWindows, EncodingIDWindowsBMP)
	assert.True(t, ok)
	_, ok = NameEncoding(PlatformIDMacintosh, EncodingIDMacHebrew)
	assert.False(t, ok)
	assert.Equal(t, "Windows", PlatformIDWindows.String())
	assert.Equal(t, "Platform(9)", PlatformID(9).String())
}

func TestLangTagsOfFormat1Table(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.query")
	defer teardown()
	//
	nt := fonttest.NameTable{
		Format: 1,
		Records: []fonttest.Record{
			{PlatformID: 0, EncodingID: 4, LanguageID: 0x8000, NameID: 1, String: fonttest.UTF16("Beispiel")},
			{PlatformID: 0, EncodingID: 4, LanguageID: 0x8001, NameID: 1, String: fonttest.UTF16("Exemple")},
			{PlatformID: 0, EncodingID: 4, LanguageID: 0x8002, NameID: 1, String: fonttest.UTF16("???")},
		},
		LangTags: [][]byte{fonttest.UTF16("de-AT"), fonttest.UTF16("fr"), fonttest.UTF16("not a tag!")},
	}
	otf := parseTestFont(t, nt)
	require.Equal(t, 3, NameCount(otf))
	ltag, err := LangTag(otf, 0x8000)
	require.NoError(t, err)
	tag, err := DecodeLangTag(ltag)
	require.NoError(t, err)
	assert.Equal(t, "de-AT", tag.String())
	//
	want := []string{"de-AT", "fr", "und"}
	for i := range want {
		rec, err := Name(otf, i)
		require.NoError(t, err)
		assert.Equal(t, want[i], Language(otf, rec).String(), "language of record %d", i)
	}
	_, err = LangTag(otf, 0x409)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = LangTag(otf, 0x8003)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}
