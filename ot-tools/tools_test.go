package main

import (
	"testing"

	"github.com/npillmayer/sfntnames/internal/fonttest"
	"github.com/npillmayer/sfntnames/ot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSplitCSVSpace(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "16", "17"}, splitCSVSpace("1,2 16,\t17"))
	assert.Empty(t, splitCSVSpace(" , "))
}

func TestSameBaseLanguage(t *testing.T) {
	assert.True(t, sameBaseLanguage(language.German, language.MustParse("de-AT")))
	assert.False(t, sameBaseLanguage(language.German, language.English))
}

func TestFontType(t *testing.T) {
	otf, err := ot.Parse(fonttest.Font(fonttest.Tables{"head": make([]byte, 54)}))
	require.NoError(t, err)
	assert.Equal(t, "TrueType", fontType(otf))
}
