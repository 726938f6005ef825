package otquery

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sfntnames/internal/fonttest"
	"github.com/npillmayer/sfntnames/ot"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

// --- Test Suite Preparation ------------------------------------------------

type NameTestEnviron struct {
	suite.Suite
	otf *ot.Font
}

// listen for 'go test' command --> run test methods
func TestNameFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.query")
	defer teardown()
	suite.Run(t, new(NameTestEnviron))
}

// run once, before test suite methods
func (env *NameTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.opentype").SetTraceLevel(tracing.LevelError)
	env.otf = parseTestFont(env.T(), testNameTable())
	tracing.Select("font.opentype").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *NameTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *NameTestEnviron) TestNameCount() {
	env.Equal(6, NameCount(env.otf), "expected 6 name records in test font")
	env.Equal(0, NameCount(nil), "expected nil font to have no name records")
}

func (env *NameTestEnviron) TestName() {
	rec, err := Name(env.otf, 1)
	env.Require().NoError(err)
	env.Equal(uint16(3), rec.PlatformID)
	env.Equal(uint16(1), rec.EncodingID)
	env.Equal(uint16(0x409), rec.LanguageID)
	env.Equal(sfnt.NameIDFamily, rec.NameID)
	env.Equal(fonttest.UTF16("Example Font"), rec.String)
	env.Equal(24, rec.Len())
	//
	_, err = Name(env.otf, NameCount(env.otf))
	env.True(errors.Is(err, ErrOutOfRange), "expected OutOfRange, have %v", err)
	_, err = Name(nil, 0)
	env.True(errors.Is(err, ErrMissingTable), "expected MissingTable for nil font, have %v", err)
	var nerr *ot.NameError
	env.Require().True(errors.As(err, &nerr))
	env.Equal(ot.MissingTable, nerr.Kind)
}

func (env *NameTestEnviron) TestLangTagOfFormat0Table() {
	_, err := LangTag(env.otf, 0x8000)
	env.True(errors.Is(err, ErrInvalidArgument), "expected InvalidArgument for format 0, have %v", err)
}

func (env *NameTestEnviron) TestLanguage() {
	langs := []string{
		"en",    // Mac 0
		"en-US", // 0x409
		"ar",    // Mac 12
		"de-DE", // 0x407
		"en-US", // 0x409
		"und",   // Unicode
	}
	for i, want := range langs {
		rec, err := Name(env.otf, i)
		env.Require().NoError(err)
		env.Equal(want, Language(env.otf, rec).String(), "unexpected language for record %d", i)
	}
}

func (env *NameTestEnviron) TestNamesRange() {
	var ids []sfnt.NameID
	var values []string
	for id, value := range NamesRange(env.otf) {
		ids = append(ids, id)
		values = append(values, value)
	}
	// the record with the unsupported Mac Arabic encoding is skipped
	env.Equal([]sfnt.NameID{1, 1, 1, 5, 2}, ids)
	env.Equal([]string{"Exämple Font", "Example Font", "Beispielschrift", "Version 1.0", "Regular"}, values)
	n := 0
	for range NamesRange(env.otf) {
		n++
		break
	}
	env.Equal(1, n, "expected iteration to stop on break")
}

func (env *NameTestEnviron) TestLanguageFitness() {
	us := language.AmericanEnglish
	env.Equal(3, languageFitness(language.English, language.English), "bare language must not match exactly")
	env.Equal(3, languageFitness(us, language.English))
	env.Equal(4, languageFitness(us, us))
	env.Equal(3, languageFitness(language.English, us))
	env.Equal(2, languageFitness(us, language.Und))
	env.Equal(1, languageFitness(language.Und, language.German))
}

func (env *NameTestEnviron) TestNameInfo() {
	info := NameInfo(env.otf, language.Und)
	env.T().Logf("info = %v", info)
	env.Equal("Example Font", info["family"], "expected Windows English family name")
	env.Equal("Version 1.0", info["version"])
	env.Equal("Regular", info["subfamily"])
	_, ok := info["copyright"]
	env.False(ok, "expected no copyright entry")
	//
	info = NameInfo(env.otf, language.German)
	env.Equal("Beispielschrift", info["family"], "expected German family name for 'de'")
	info = NameInfo(env.otf, language.MustParse("de-DE"))
	env.Equal("Beispielschrift", info["family"], "expected German family name for 'de-DE'")
	info = NameInfo(env.otf, language.English)
	env.Equal("Example Font", info["family"], "expected Windows record to win over Mac record for 'en'")
	info = NameInfo(env.otf, language.AmericanEnglish)
	env.Equal("Example Font", info["family"], "expected Windows record for 'en-US'")
	info = NameInfo(env.otf, language.French)
	env.Equal("Example Font", info["family"], "expected English fallback for 'fr'")
	env.Empty(NameInfo(nil, language.Und))
}

// --- Helpers ---------------------------------------------------------------

func testNameTable() fonttest.NameTable {
	return fonttest.NameTable{Records: []fonttest.Record{
		{PlatformID: 1, EncodingID: 0, LanguageID: 0, NameID: 1, String: []byte("Ex\x8ample Font")},
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x409, NameID: 1, String: fonttest.UTF16("Example Font")},
		{PlatformID: 1, EncodingID: 4, LanguageID: 12, NameID: 3, String: []byte{0xc7, 0xe1}},
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x407, NameID: 1, String: fonttest.UTF16("Beispielschrift")},
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x409, NameID: 5, String: fonttest.UTF16("Version 1.0")},
		{PlatformID: 0, EncodingID: 3, LanguageID: 0, NameID: 2, String: fonttest.UTF16("Regular")},
	}}
}

func parseTestFont(t *testing.T, nt fonttest.NameTable) *ot.Font {
	otf, err := ot.Parse(fonttest.Font(fonttest.Tables{"name": nt.Bytes()}))
	if err != nil {
		t.Fatalf("cannot parse test font: %v", err)
	}
	return otf
}
