package scriptrun

import (
	"fmt"
	"strings"

	"github.com/go-text/typesetting/language"
	xlanguage "golang.org/x/text/language"
)

// ScriptsForLocale returns the scripts used to write the language of a BCP 47
// locale such as "en-US", "sr_Latn" or "ja". Underscores are accepted as
// separators.
//
// Languages written with several scripts at once return all of them:
// Japanese gives Katakana, Hiragana and Han, Korean gives Hangul and Han,
// and Traditional Chinese gives Han and Bopomofo. When the locale names no
// script, the most likely one is inferred from its language and region.
//
// It returns nil, nil when no script can be inferred and an error matching
// ErrInvalidArgument when the locale cannot be parsed.
func ScriptsForLocale(locale string) ([]Script, error) {
	tag, err := xlanguage.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %w", ErrInvalidArgument, locale, err)
	}

	base, conf := tag.Base()
	if conf != xlanguage.No {
		switch base.String() {
		case "ja":
			return []Script{ScriptKatakana, ScriptHiragana, ScriptHan}, nil
		case "ko":
			return []Script{ScriptHangul, ScriptHan}, nil
		}
	}

	xs, conf := tag.Script()
	if conf == xlanguage.No {
		return nil, nil
	}
	code := xs.String()
	if base.String() == "zh" && code == "Hant" {
		return []Script{ScriptHan, ScriptBopomofo}, nil
	}
	return expandScriptCode(code), nil
}

// expandScriptCode maps an ISO 15924 code to the scripts whose characters
// it covers. Compound codes expand to their members.
func expandScriptCode(code string) []Script {
	switch code {
	case "Hans", "Hant":
		return []Script{ScriptHan}
	case "Jpan":
		return []Script{ScriptKatakana, ScriptHiragana, ScriptHan}
	case "Kore":
		return []Script{ScriptHangul, ScriptHan}
	case "Hanb":
		return []Script{ScriptHan, ScriptBopomofo}
	}
	s, err := language.ParseScript(code)
	if err != nil {
		return nil
	}
	if _, ok := loadScriptIndex().byCode[s.String()]; !ok {
		return nil
	}
	return []Script{Script(s)}
}

// Codes resolves a script name, a 4-letter code or a locale to scripts.
// "Malayalam" and "Mlym" both give Malayalam, "en_US" gives Latin and "ja"
// gives Katakana, Hiragana and Han.
//
// Input without '_' or '-' is tried as a script name first; anything else
// is tried as a locale first. Codes returns nil when nothing matches.
func Codes(nameOrLocale string) []Script {
	nameFirst := !strings.ContainsAny(nameOrLocale, "_-")
	if nameFirst {
		if s, err := ParseScript(nameOrLocale); err == nil {
			return []Script{s}
		}
	}
	if scripts, err := ScriptsForLocale(nameOrLocale); err == nil && len(scripts) > 0 {
		return scripts
	}
	if !nameFirst {
		if s, err := ParseScript(nameOrLocale); err == nil {
			return []Script{s}
		}
	}
	return nil
}
