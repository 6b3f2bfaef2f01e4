package scriptrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptsForLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   []Script
	}{
		{"en", []Script{ScriptLatin}},
		{"en-US", []Script{ScriptLatin}},
		{"en_US", []Script{ScriptLatin}},
		{"ru", []Script{ScriptCyrillic}},
		{"sr-Latn", []Script{ScriptLatin}},
		{"ar", []Script{ScriptArabic}},
		{"he", []Script{ScriptHebrew}},
		{"el", []Script{ScriptGreek}},
		{"th", []Script{ScriptThai}},
		{"ja", []Script{ScriptKatakana, ScriptHiragana, ScriptHan}},
		{"ja_JP", []Script{ScriptKatakana, ScriptHiragana, ScriptHan}},
		{"ko", []Script{ScriptHangul, ScriptHan}},
		{"zh", []Script{ScriptHan}},
		{"zh-Hans", []Script{ScriptHan}},
		{"zh-Hant", []Script{ScriptHan, ScriptBopomofo}},
		{"zh-TW", []Script{ScriptHan, ScriptBopomofo}},
		{"und-Jpan", []Script{ScriptKatakana, ScriptHiragana, ScriptHan}},
		{"und-Kore", []Script{ScriptHangul, ScriptHan}},
		{"und-Dsrt", []Script{ScriptDeseret}},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, err := ScriptsForLocale(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScriptsForLocale_Invalid(t *testing.T) {
	for _, locale := range []string{"", "!!", "a"} {
		got, err := ScriptsForLocale(locale)
		assert.ErrorIs(t, err, ErrInvalidArgument, locale)
		assert.Nil(t, got)
	}
}

func TestExpandScriptCode(t *testing.T) {
	assert.Equal(t, []Script{ScriptHan}, expandScriptCode("Hans"))
	assert.Equal(t, []Script{ScriptHan}, expandScriptCode("Hant"))
	assert.Equal(t, []Script{ScriptHan, ScriptBopomofo}, expandScriptCode("Hanb"))
	assert.Equal(t, []Script{ScriptLatin}, expandScriptCode("Latn"))
	assert.Nil(t, expandScriptCode("Qaaa"))
	assert.Nil(t, expandScriptCode("X"))
}

func TestCodes(t *testing.T) {
	tests := []struct {
		in   string
		want []Script
	}{
		{"Mlym", []Script{ScriptMalayalam}},
		{"Malayalam", []Script{ScriptMalayalam}},
		{"latin", []Script{ScriptLatin}},
		{"en", []Script{ScriptLatin}},
		{"en_US", []Script{ScriptLatin}},
		{"ru-RU", []Script{ScriptCyrillic}},
		{"ja", []Script{ScriptKatakana, ScriptHiragana, ScriptHan}},
		{"Ital", []Script{ScriptOldItalic}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Codes(tt.in))
		})
	}

	assert.Nil(t, Codes("!!"))
	assert.Nil(t, Codes(""))
}
