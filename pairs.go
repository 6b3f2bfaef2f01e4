package scriptrun

import "slices"

// Pair is a bracket or quotation mark pair whose closing member takes the
// script of the run that contained its opening member.
type Pair struct {
	Open  rune
	Close rune
}

// pairedChars lists the members of every pair in ascending code point
// order. Even indices are openers and the following odd index is the
// matching closer.
var pairedChars = [...]rune{
	0x0028, 0x0029, // ( )
	0x003c, 0x003e, // < >
	0x005b, 0x005d, // [ ]
	0x007b, 0x007d, // { }
	0x00ab, 0x00bb, // « »
	0x2018, 0x2019, // ‘ ’
	0x201c, 0x201d, // “ ”
	0x2039, 0x203a, // ‹ ›
	0x3008, 0x3009, // 〈 〉
	0x300a, 0x300b, // 《 》
	0x300c, 0x300d, // 「 」
	0x300e, 0x300f, // 『 』
	0x3010, 0x3011, // 【 】
	0x3014, 0x3015, // 〔 〕
	0x3016, 0x3017, // 〖 〗
	0x3018, 0x3019, // 〘 〙
	0x301a, 0x301b, // 〚 〛
}

// pairIndex returns the position of r in pairedChars, or -1 if r is not
// a paired character.
func pairIndex(r rune) int {
	if r < pairedChars[0] || r > pairedChars[len(pairedChars)-1] {
		return -1
	}
	if i, found := slices.BinarySearch(pairedChars[:], r); found {
		return i
	}
	return -1
}

// LookupPair returns the pair that r opens or closes.
func LookupPair(r rune) (Pair, bool) {
	i := pairIndex(r)
	if i < 0 {
		return Pair{}, false
	}
	i &^= 1
	return Pair{Open: pairedChars[i], Close: pairedChars[i+1]}, true
}

// IsOpen reports whether r is the opening member of a pair.
func IsOpen(r rune) bool {
	i := pairIndex(r)
	return i >= 0 && i&1 == 0
}

// IsClose reports whether r is the closing member of a pair.
func IsClose(r rune) bool {
	i := pairIndex(r)
	return i >= 0 && i&1 == 1
}

// Pairs returns a copy of the pair table.
func Pairs() []Pair {
	pairs := make([]Pair, 0, len(pairedChars)/2)
	for i := 0; i < len(pairedChars); i += 2 {
		pairs = append(pairs, Pair{Open: pairedChars[i], Close: pairedChars[i+1]})
	}
	return slices.Clip(pairs)
}
