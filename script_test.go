package scriptrun

import (
	"slices"
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptOf(t *testing.T) {
	tests := []struct {
		r    rune
		want Script
	}{
		{'A', ScriptLatin},
		{'z', ScriptLatin},
		{'1', ScriptCommon},
		{' ', ScriptCommon},
		{'(', ScriptCommon},
		{0x00E9, ScriptLatin},     // é
		{0x0301, ScriptInherited}, // combining acute
		{0x0416, ScriptCyrillic},  // Ж
		{0x05D0, ScriptHebrew},    // א
		{0x0628, ScriptArabic},    // ب
		{0x0939, ScriptDevanagari},
		{0x0E17, ScriptThai},
		{0x3042, ScriptHiragana},
		{0x30A2, ScriptKatakana},
		{0x4E00, ScriptHan},
		{0xAC00, ScriptHangul},
		{0x10414, ScriptDeseret},
		{0x10300, ScriptOldItalic},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScriptOf(tt.r), "ScriptOf(%U)", tt.r)
	}
}

func TestScriptOf_OutsideCodeSpace(t *testing.T) {
	for _, r := range []rune{-1, 0xD800, 0xDBFF, 0xDC00, 0xDFFF, 0x110000, 0x7FFFFFFF} {
		assert.Equal(t, ScriptUnknown, ScriptOf(r), "ScriptOf(%#x)", r)
	}
	// U+0378 is unassigned.
	assert.Equal(t, ScriptUnknown, ScriptOf(0x0378))
}

func TestScriptOf_ASCIIMatchesTable(t *testing.T) {
	for r := rune(0); r < 0x80; r++ {
		assert.Equal(t, Script(language.LookupScript(r)), ScriptOf(r), "ScriptOf(%U)", r)
	}
}

func TestScript_Strong(t *testing.T) {
	assert.False(t, ScriptCommon.Strong())
	assert.False(t, ScriptInherited.Strong())
	assert.True(t, ScriptUnknown.Strong())
	assert.True(t, ScriptLatin.Strong())
	assert.True(t, ScriptHan.Strong())
}

func TestScript_ShortName(t *testing.T) {
	assert.Equal(t, "Latn", ScriptLatin.ShortName())
	assert.Equal(t, "Cyrl", ScriptCyrillic.ShortName())
	assert.Equal(t, "Zyyy", ScriptCommon.ShortName())
	assert.Equal(t, "Zinh", ScriptInherited.ShortName())
	assert.Equal(t, "Zzzz", ScriptUnknown.ShortName())
	assert.Equal(t, "Invalid", ScriptInvalid.ShortName())
}

func TestScript_Name(t *testing.T) {
	tests := []struct {
		s    Script
		want string
	}{
		{ScriptLatin, "Latin"},
		{ScriptCyrillic, "Cyrillic"},
		{ScriptArabic, "Arabic"},
		{ScriptDevanagari, "Devanagari"},
		{ScriptCommon, "Common"},
		{ScriptInherited, "Inherited"},
		{ScriptUnknown, "Unknown"},
		{ScriptInvalid, "Invalid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.Name())
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestParseScript(t *testing.T) {
	tests := []struct {
		in   string
		want Script
	}{
		{"Latn", ScriptLatin},
		{"latn", ScriptLatin},
		{"LATN", ScriptLatin},
		{"Latin", ScriptLatin},
		{"latin", ScriptLatin},
		{"Cyrillic", ScriptCyrillic},
		{"Mlym", ScriptMalayalam},
		{"Ital", ScriptOldItalic},
		{"Zyyy", ScriptCommon},
		{"common", ScriptCommon},
		{"Inherited", ScriptInherited},
		{"Zzzz", ScriptUnknown},
		{"Thai", ScriptThai},
	}

	for _, tt := range tests {
		got, err := ParseScript(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseScript_Unknown(t *testing.T) {
	for _, in := range []string{"", "Qqqq", "Klingonish", "La"} {
		got, err := ParseScript(in)
		assert.ErrorIs(t, err, ErrUnknownScript, "%q", in)
		assert.Equal(t, ScriptInvalid, got)
	}
}

func TestParseScript_RoundTrip(t *testing.T) {
	for _, s := range Scripts() {
		got, err := ParseScript(s.ShortName())
		require.NoError(t, err, s.ShortName())
		assert.Equal(t, s, got)
	}
}

func TestScripts(t *testing.T) {
	all := Scripts()
	require.NotEmpty(t, all)

	for _, s := range []Script{ScriptCommon, ScriptInherited, ScriptUnknown, ScriptLatin, ScriptDeseret, ScriptHan} {
		assert.Contains(t, all, s)
	}
	assert.NotContains(t, all, ScriptInvalid)

	assert.True(t, slices.IsSortedFunc(all, func(a, b Script) int {
		switch {
		case a.ShortName() < b.ShortName():
			return -1
		case a.ShortName() > b.ShortName():
			return 1
		}
		return 0
	}))

	// Every script the lookup table can return is listed.
	for _, r := range language.ScriptRanges {
		assert.Contains(t, all, Script(r.Script))
	}

	// Callers get their own copy.
	all[0] = ScriptInvalid
	assert.NotEqual(t, ScriptInvalid, Scripts()[0])
}

func BenchmarkScriptOf(b *testing.B) {
	runes := []rune(mixedText)
	for b.Loop() {
		for _, r := range runes {
			_ = ScriptOf(r)
		}
	}
}
