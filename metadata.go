package scriptrun

import (
	"fmt"

	"github.com/go-text/typesetting/language"
)

// Usage classifies how a script is used today, following the candidate
// tables of UAX #31.
type Usage uint8

// Usage values.
const (
	// NotEncoded is reported for scripts without metadata.
	NotEncoded Usage = iota
	UsageUnknown
	Excluded
	LimitedUse
	Aspirational
	Recommended
)

var usageNames = [...]string{
	NotEncoded:   "NotEncoded",
	UsageUnknown: "Unknown",
	Excluded:     "Excluded",
	LimitedUse:   "LimitedUse",
	Aspirational: "Aspirational",
	Recommended:  "Recommended",
}

// String returns the name of the usage class.
func (u Usage) String() string {
	if int(u) < len(usageNames) {
		return usageNames[u]
	}
	return fmt.Sprintf("Usage(%d)", u)
}

// Script property flags.
const (
	rtl       = 1 << iota // written right-to-left
	lbLetters             // line breaks allowed between letters
	cased                 // case distinctions are customary
)

type scriptProps struct {
	script Script
	sample rune
	usage  Usage
	flags  uint8
}

// scriptMetadataSource is the CLDR script metadata: a sample character,
// the usage class and property flags for each encoded script.
var scriptMetadataSource = [...]struct {
	code   string
	sample rune
	usage  Usage
	flags  uint8
}{
	{"Zyyy", 0x0040, Recommended, 0},
	{"Zinh", 0x0308, Recommended, 0},
	{"Arab", 0x0628, Recommended, rtl},
	{"Armn", 0x0531, Recommended, cased},
	{"Beng", 0x0995, Recommended, 0},
	{"Bopo", 0x3105, Recommended, lbLetters},
	{"Cher", 0x13c4, LimitedUse, cased},
	{"Copt", 0x03e2, Excluded, cased},
	{"Cyrl", 0x042f, Recommended, cased},
	{"Dsrt", 0x10414, Excluded, cased},
	{"Deva", 0x0905, Recommended, 0},
	{"Ethi", 0x12a0, Recommended, 0},
	{"Geor", 0x10d3, Recommended, 0},
	{"Goth", 0x10330, Excluded, 0},
	{"Grek", 0x03a9, Recommended, cased},
	{"Gujr", 0x0a95, Recommended, 0},
	{"Guru", 0x0a15, Recommended, 0},
	{"Hani", 0x5b57, Recommended, lbLetters},
	{"Hang", 0xac00, Recommended, 0},
	{"Hebr", 0x05d0, Recommended, rtl},
	{"Hira", 0x304b, Recommended, lbLetters},
	{"Knda", 0x0c95, Recommended, 0},
	{"Kana", 0x30ab, Recommended, lbLetters},
	{"Khmr", 0x1780, Recommended, lbLetters},
	{"Laoo", 0x0ea5, Recommended, lbLetters},
	{"Latn", 0x004c, Recommended, cased},
	{"Mlym", 0x0d15, Recommended, 0},
	{"Mong", 0x1826, Aspirational, 0},
	{"Mymr", 0x1000, Recommended, lbLetters},
	{"Ogam", 0x168f, Excluded, 0},
	{"Ital", 0x10300, Excluded, 0},
	{"Orya", 0x0b15, Recommended, 0},
	{"Runr", 0x16a0, Excluded, 0},
	{"Sinh", 0x0d85, Recommended, 0},
	{"Syrc", 0x0710, LimitedUse, rtl},
	{"Taml", 0x0b95, Recommended, 0},
	{"Telu", 0x0c15, Recommended, 0},
	{"Thaa", 0x078c, Recommended, rtl},
	{"Thai", 0x0e17, Recommended, lbLetters},
	{"Tibt", 0x0f40, Recommended, 0},
	{"Cans", 0x14c0, Aspirational, 0},
	{"Yiii", 0xa288, Aspirational, lbLetters},
	{"Tglg", 0x1703, Excluded, 0},
	{"Hano", 0x1723, Excluded, 0},
	{"Buhd", 0x1743, Excluded, 0},
	{"Tagb", 0x1763, Excluded, 0},
	{"Brai", 0x280e, UsageUnknown, 0},
	{"Cprt", 0x10800, Excluded, rtl},
	{"Limb", 0x1900, LimitedUse, 0},
	{"Linb", 0x10000, Excluded, 0},
	{"Osma", 0x10480, Excluded, 0},
	{"Shaw", 0x10450, Excluded, 0},
	{"Tale", 0x1950, LimitedUse, lbLetters},
	{"Ugar", 0x10380, Excluded, 0},
	{"Bugi", 0x1a00, Excluded, 0},
	{"Glag", 0x2c00, Excluded, cased},
	{"Khar", 0x10a00, Excluded, rtl},
	{"Sylo", 0xa800, LimitedUse, 0},
	{"Talu", 0x1980, LimitedUse, lbLetters},
	{"Tfng", 0x2d30, Aspirational, 0},
	{"Xpeo", 0x103a0, Excluded, 0},
	{"Bali", 0x1b05, LimitedUse, 0},
	{"Batk", 0x1bc0, LimitedUse, 0},
	{"Brah", 0x11005, Excluded, 0},
	{"Cham", 0xaa00, LimitedUse, 0},
	{"Egyp", 0x13153, Excluded, 0},
	{"Hans", 0x5b57, Recommended, lbLetters},
	{"Hant", 0x5b57, Recommended, lbLetters},
	{"Hmng", 0x16b1c, Excluded, 0},
	{"Hung", 0x10ca1, Excluded, rtl | cased},
	{"Java", 0xa984, LimitedUse, 0},
	{"Kali", 0xa90a, LimitedUse, 0},
	{"Lepc", 0x1c00, LimitedUse, 0},
	{"Lina", 0x10647, Excluded, 0},
	{"Mand", 0x0840, LimitedUse, rtl},
	{"Mero", 0x10980, Excluded, rtl},
	{"Nkoo", 0x07ca, LimitedUse, rtl},
	{"Orkh", 0x10c00, Excluded, rtl},
	{"Perm", 0x1036b, Excluded, 0},
	{"Phag", 0xa840, Excluded, 0},
	{"Phnx", 0x10900, Excluded, rtl},
	{"Plrd", 0x16f00, Aspirational, 0},
	{"Vaii", 0xa549, LimitedUse, 0},
	{"Xsux", 0x12000, Excluded, 0},
	{"Zzzz", 0xfdd0, UsageUnknown, 0},
	{"Cari", 0x102a0, Excluded, 0},
	{"Jpan", 0x304b, Recommended, lbLetters},
	{"Lana", 0x1a20, LimitedUse, lbLetters},
	{"Lyci", 0x10280, Excluded, 0},
	{"Lydi", 0x10920, Excluded, rtl},
	{"Olck", 0x1c5a, LimitedUse, 0},
	{"Rjng", 0xa930, Excluded, 0},
	{"Saur", 0xa882, LimitedUse, 0},
	{"Sgnw", 0x1d850, Excluded, 0},
	{"Sund", 0x1b83, LimitedUse, 0},
	{"Mtei", 0xabc0, LimitedUse, 0},
	{"Armi", 0x10840, Excluded, rtl},
	{"Avst", 0x10b00, Excluded, rtl},
	{"Cakm", 0x11103, LimitedUse, 0},
	{"Kore", 0xac00, Recommended, 0},
	{"Kthi", 0x11083, Excluded, 0},
	{"Mani", 0x10ad8, Excluded, rtl},
	{"Phli", 0x10b60, Excluded, rtl},
	{"Phlp", 0x10b8f, Excluded, rtl},
	{"Prti", 0x10b40, Excluded, rtl},
	{"Samr", 0x0800, Excluded, rtl},
	{"Tavt", 0xaa80, LimitedUse, lbLetters},
	{"Bamu", 0xa6a0, LimitedUse, 0},
	{"Lisu", 0xa4d0, LimitedUse, 0},
	{"Sarb", 0x10a60, Excluded, rtl},
	{"Bass", 0x16ae6, Excluded, 0},
	{"Dupl", 0x1bc20, Excluded, 0},
	{"Elba", 0x10500, Excluded, 0},
	{"Gran", 0x11315, Excluded, 0},
	{"Mend", 0x1e802, Excluded, rtl},
	{"Merc", 0x109a0, Excluded, rtl},
	{"Narb", 0x10a95, Excluded, rtl},
	{"Nbat", 0x10896, Excluded, rtl},
	{"Palm", 0x10873, Excluded, rtl},
	{"Sind", 0x112be, Excluded, 0},
	{"Wara", 0x118b4, Excluded, cased},
	{"Mroo", 0x16a4f, Excluded, 0},
	{"Shrd", 0x11183, Excluded, 0},
	{"Sora", 0x110d0, Excluded, 0},
	{"Takr", 0x11680, Excluded, 0},
	{"Tang", 0x18229, Excluded, lbLetters},
	{"Hluw", 0x14400, Excluded, 0},
	{"Khoj", 0x11208, Excluded, 0},
	{"Tirh", 0x11484, Excluded, 0},
	{"Aghb", 0x10537, Excluded, 0},
	{"Mahj", 0x11152, Excluded, 0},
	{"Ahom", 0x11717, Excluded, lbLetters},
	{"Hatr", 0x108f4, Excluded, rtl},
	{"Modi", 0x1160e, Excluded, 0},
}

// scriptMetadata is indexed by Script and built once at init.
var scriptMetadata = buildScriptMetadata()

func buildScriptMetadata() map[Script]scriptProps {
	m := make(map[Script]scriptProps, len(scriptMetadataSource))
	for _, e := range scriptMetadataSource {
		tag, err := language.ParseScript(e.code)
		if err != nil {
			panic(fmt.Sprintf("scriptrun: bad script code %q in metadata: %v", e.code, err))
		}
		s := Script(tag)
		m[s] = scriptProps{script: s, sample: e.sample, usage: e.usage, flags: e.flags}
	}
	return m
}

// IsRightToLeft reports whether s is written right-to-left, for example
// Arabic and Hebrew.
func (s Script) IsRightToLeft() bool {
	return scriptMetadata[s].flags&rtl != 0
}

// BreaksBetweenLetters reports whether lines may break between letters of
// s without hyphenation. Such scripts, for example Han and Thai, usually
// need dictionary-based line breaking.
func (s Script) BreaksBetweenLetters() bool {
	return scriptMetadata[s].flags&lbLetters != 0
}

// IsCased reports whether case distinctions are customary in modern use of
// s, for example Latin and Cyrillic.
func (s Script) IsCased() bool {
	return scriptMetadata[s].flags&cased != 0
}

// Usage returns the usage class of s, or NotEncoded without metadata.
func (s Script) Usage() Usage {
	if p, ok := scriptMetadata[s]; ok {
		return p.usage
	}
	return NotEncoded
}

// SampleString returns a representative character of s, or "" when the
// script has no metadata.
func (s Script) SampleString() string {
	if p, ok := scriptMetadata[s]; ok {
		return string(p.sample)
	}
	return ""
}
