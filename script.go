package scriptrun

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-text/typesetting/language"
	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Script identifies a Unicode script (UAX #24).
// It holds the binary encoding of the 4-letter ISO 15924 tag, the same
// encoding used by go-text/typesetting, so any script present in the
// Unicode property tables is a valid Script even without a named constant.
// The zero value is ScriptInvalid.
type Script uint32

// Sentinel scripts.
const (
	// ScriptInvalid is the zero Script. It is never returned by ScriptOf.
	ScriptInvalid Script = 0
	// ScriptCommon is used for punctuation, digits, spaces and symbols shared across scripts.
	ScriptCommon = Script(language.Common)
	// ScriptInherited is used for combining marks that take the script of their base character.
	ScriptInherited = Script(language.Inherited)
	// ScriptUnknown is used for unassigned code points, surrogates and values outside the code space.
	ScriptUnknown = Script(language.Unknown)
)

// Named scripts.
const (
	ScriptArabic             = Script(language.Arabic)
	ScriptArmenian           = Script(language.Armenian)
	ScriptBengali            = Script(language.Bengali)
	ScriptBopomofo           = Script(language.Bopomofo)
	ScriptBraille            = Script(language.Braille)
	ScriptCanadianAboriginal = Script(language.Canadian_Aboriginal)
	ScriptCherokee           = Script(language.Cherokee)
	ScriptCoptic             = Script(language.Coptic)
	ScriptCyrillic           = Script(language.Cyrillic)
	ScriptDeseret            = Script(language.Deseret)
	ScriptDevanagari         = Script(language.Devanagari)
	ScriptEthiopic           = Script(language.Ethiopic)
	ScriptGeorgian           = Script(language.Georgian)
	ScriptGlagolitic         = Script(language.Glagolitic)
	ScriptGothic             = Script(language.Gothic)
	ScriptGreek              = Script(language.Greek)
	ScriptGujarati           = Script(language.Gujarati)
	ScriptGurmukhi           = Script(language.Gurmukhi)
	ScriptHan                = Script(language.Han)
	ScriptHangul             = Script(language.Hangul)
	ScriptHebrew             = Script(language.Hebrew)
	ScriptHiragana           = Script(language.Hiragana)
	ScriptKannada            = Script(language.Kannada)
	ScriptKatakana           = Script(language.Katakana)
	ScriptKhmer              = Script(language.Khmer)
	ScriptLao                = Script(language.Lao)
	ScriptLatin              = Script(language.Latin)
	ScriptMalayalam          = Script(language.Malayalam)
	ScriptMongolian          = Script(language.Mongolian)
	ScriptMyanmar            = Script(language.Myanmar)
	ScriptNko                = Script(language.Nko)
	ScriptOgham              = Script(language.Ogham)
	ScriptOldItalic          = Script(language.Old_Italic)
	ScriptOriya              = Script(language.Oriya)
	ScriptRunic              = Script(language.Runic)
	ScriptSinhala            = Script(language.Sinhala)
	ScriptSyriac             = Script(language.Syriac)
	ScriptTaiLe              = Script(language.Tai_Le)
	ScriptTamil              = Script(language.Tamil)
	ScriptTelugu             = Script(language.Telugu)
	ScriptThaana             = Script(language.Thaana)
	ScriptThai               = Script(language.Thai)
	ScriptTibetan            = Script(language.Tibetan)
	ScriptTifinagh           = Script(language.Tifinagh)
	ScriptYi                 = Script(language.Yi)
)

// ScriptOf returns the Unicode Script property of r.
//
// It is defined for every rune value: surrogate code points, unassigned
// code points, negative values and values above U+10FFFF all report
// ScriptUnknown. The underlying table is immutable, so ScriptOf is safe
// for concurrent use and does not allocate.
func ScriptOf(r rune) Script {
	// ASCII letters and punctuation dominate most text.
	if r >= 0 && r < 0x80 {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return ScriptLatin
		}
		return ScriptCommon
	}
	return Script(language.LookupScript(r))
}

// Strong reports whether s is a concrete script, that is neither
// ScriptCommon nor ScriptInherited. ScriptUnknown is strong.
func (s Script) Strong() bool {
	return s != ScriptCommon && s != ScriptInherited
}

// ShortName returns the 4-letter ISO 15924 code of s, for example "Latn".
func (s Script) ShortName() string {
	if s == ScriptInvalid {
		return "Invalid"
	}
	return language.Script(s).String()
}

// sentinelNames overrides the CLDR display names of the sentinel codes
// with the Unicode property value aliases.
var sentinelNames = map[Script]string{
	ScriptInvalid:   "Invalid",
	ScriptCommon:    "Common",
	ScriptInherited: "Inherited",
	ScriptUnknown:   "Unknown",
}

// Name returns the English name of s, for example "Latin" or "Devanagari".
// Scripts without a known name return their 4-letter code.
func (s Script) Name() string {
	if name, ok := sentinelNames[s]; ok {
		return name
	}
	code := s.ShortName()
	xs, err := xlanguage.ParseScript(code)
	if err != nil {
		return code
	}
	if name := display.English.Scripts().Name(xs); name != "" {
		return name
	}
	return code
}

// String returns the English name of the script.
func (s Script) String() string {
	return s.Name()
}

// scriptIndex holds the name lookup tables built from the property data.
type scriptIndex struct {
	all    []Script
	byCode map[string]Script
	byName map[string]Script
}

// loadScriptIndex enumerates every script present in the property table.
// The result is never mutated after construction.
var loadScriptIndex = sync.OnceValue(func() *scriptIndex {
	idx := &scriptIndex{
		byCode: make(map[string]Script),
		byName: make(map[string]Script),
	}
	add := func(s Script) {
		code := s.ShortName()
		if _, dup := idx.byCode[code]; dup {
			return
		}
		idx.all = append(idx.all, s)
		idx.byCode[code] = s
		idx.byName[looseName(code)] = s
		idx.byName[looseName(s.Name())] = s
	}
	add(ScriptCommon)
	add(ScriptInherited)
	add(ScriptUnknown)
	for _, r := range language.ScriptRanges {
		add(Script(r.Script))
	}
	for _, m := range scriptMetadata {
		add(m.script)
	}
	slices.SortFunc(idx.all, func(a, b Script) int {
		return strings.Compare(a.ShortName(), b.ShortName())
	})
	Logger().Debug("scriptrun: script index built", "scripts", len(idx.all))
	return idx
})

// looseName folds case and drops separators so "Old_Italic", "old italic"
// and "OldItalic" compare equal.
func looseName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Scripts returns every script known to the property tables, including the
// Common, Inherited and Unknown sentinels, sorted by 4-letter code.
func Scripts() []Script {
	return slices.Clone(loadScriptIndex().all)
}

// ParseScript resolves a 4-letter ISO 15924 code ("Mlym", "latn") or an
// English script name ("Malayalam", "old italic") to a Script.
func ParseScript(nameOrCode string) (Script, error) {
	idx := loadScriptIndex()
	if len(nameOrCode) == 4 {
		if code, err := language.ParseScript(nameOrCode); err == nil {
			if s, ok := idx.byCode[code.String()]; ok {
				return s, nil
			}
		}
	}
	if s, ok := idx.byName[looseName(nameOrCode)]; ok {
		return s, nil
	}
	return ScriptInvalid, fmt.Errorf("%w: %q", ErrUnknownScript, nameOrCode)
}
