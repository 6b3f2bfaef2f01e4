package scriptrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScript_IsRightToLeft(t *testing.T) {
	for _, s := range []Script{ScriptArabic, ScriptHebrew, ScriptSyriac, ScriptThaana, ScriptNko} {
		assert.True(t, s.IsRightToLeft(), s.ShortName())
	}
	for _, s := range []Script{ScriptLatin, ScriptCyrillic, ScriptHan, ScriptCommon, ScriptInvalid} {
		assert.False(t, s.IsRightToLeft(), s.ShortName())
	}
}

func TestScript_BreaksBetweenLetters(t *testing.T) {
	for _, s := range []Script{ScriptHan, ScriptThai, ScriptHiragana, ScriptKatakana, ScriptLao, ScriptKhmer} {
		assert.True(t, s.BreaksBetweenLetters(), s.ShortName())
	}
	for _, s := range []Script{ScriptLatin, ScriptArabic, ScriptHangul} {
		assert.False(t, s.BreaksBetweenLetters(), s.ShortName())
	}
}

func TestScript_IsCased(t *testing.T) {
	for _, s := range []Script{ScriptLatin, ScriptCyrillic, ScriptGreek, ScriptArmenian, ScriptDeseret} {
		assert.True(t, s.IsCased(), s.ShortName())
	}
	for _, s := range []Script{ScriptArabic, ScriptHan, ScriptDevanagari, ScriptCommon} {
		assert.False(t, s.IsCased(), s.ShortName())
	}
}

func TestScript_Usage(t *testing.T) {
	assert.Equal(t, Recommended, ScriptLatin.Usage())
	assert.Equal(t, Recommended, ScriptHan.Usage())
	assert.Equal(t, Excluded, ScriptDeseret.Usage())
	assert.Equal(t, Excluded, ScriptCoptic.Usage())
	assert.Equal(t, LimitedUse, ScriptCherokee.Usage())
	assert.Equal(t, NotEncoded, ScriptInvalid.Usage())
}

func TestUsage_String(t *testing.T) {
	assert.Equal(t, "NotEncoded", NotEncoded.String())
	assert.Equal(t, "Unknown", UsageUnknown.String())
	assert.Equal(t, "Recommended", Recommended.String())
	assert.Equal(t, "Usage(42)", Usage(42).String())
}

func TestScript_SampleString(t *testing.T) {
	assert.Equal(t, "L", ScriptLatin.SampleString())
	assert.Equal(t, "ب", ScriptArabic.SampleString())
	assert.Equal(t, "\U00010414", ScriptDeseret.SampleString())
	assert.Empty(t, ScriptInvalid.SampleString())
}

func TestScript_SampleBelongsToScript(t *testing.T) {
	for s, p := range scriptMetadata {
		if !s.Strong() || p.sample == 0 {
			continue
		}
		switch s.ShortName() {
		case "Hans", "Hant", "Jpan", "Kore", "Hanb", "Jamo", "Zzzz":
			// Compound and pseudo codes sample a member script.
			continue
		}
		assert.Equal(t, s, ScriptOf(p.sample), "%s sample %U", s.ShortName(), p.sample)
	}
}
