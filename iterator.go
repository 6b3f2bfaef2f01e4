package scriptrun

import (
	"context"
	"iter"
	"log/slog"
	"unicode"
	"unicode/utf16"
)

// Run is a maximal span of text whose code points share one script.
// Start and Limit are UTF-16 code unit indices into the iterated text;
// the span is half-open.
type Run struct {
	Start  int
	Limit  int
	Script Script
}

// Len returns the number of code units in the run.
func (r Run) Len() int {
	return r.Limit - r.Start
}

// parenEntry records an unmatched opener and the script of the run it
// appeared in.
type parenEntry struct {
	pairIndex int
	script    Script
}

// Iterator splits UTF-16 text into script runs.
//
// Common characters (spaces, digits, punctuation) and Inherited characters
// (combining marks) never start a run of their own: they join the run in
// progress, or the run that follows when they lead the text. A closing
// bracket or quotation mark takes the script of the run that contained its
// opener, so "English (ไทย) " yields the Latin run "English (", the Thai run
// and the Latin run ") ".
//
// Surrogate pairs are decoded and never split; an unpaired surrogate is a
// one-unit code point of ScriptUnknown.
//
// The iterator borrows its text: the slice must not be modified while the
// iterator is in use. An Iterator is not safe for concurrent use; run one
// iterator per goroutine.
//
// The zero value is an iterator over empty text; rebind it with ResetText.
//
// Typical use:
//
//	it := scriptrun.NewString("Hello, мир!")
//	for it.Next() {
//	    fmt.Println(it.Start(), it.Limit(), it.Script())
//	}
type Iterator struct {
	text       []uint16
	textStart  int
	textLimit  int
	runStart   int
	runLimit   int
	runScript  Script
	stack      []parenEntry
	sp         int // top of stack, -1 when empty
	lookup     func(rune) Script
	overflowed bool

	// dropped counts, per pair, the openers that did not fit on the full
	// stack. They all nest inside the top entry.
	dropped [len(pairedChars) / 2]int
}

// New returns an iterator over all of text. A nil or empty text gives an
// iterator whose first Next returns false.
func New(text []uint16, opts ...Option) *Iterator {
	it := newIterator(applyOptions(opts))
	it.bind(text, 0, len(text))
	return it
}

// NewRange returns an iterator over text[start:start+count]. Run offsets
// remain relative to the start of text.
// The error matches ErrInvalidArgument if the region does not fit text.
func NewRange(text []uint16, start, count int, opts ...Option) (*Iterator, error) {
	if err := checkRegion(text, start, count); err != nil {
		return nil, err
	}
	it := newIterator(applyOptions(opts))
	it.bind(text, start, start+count)
	return it, nil
}

// NewString returns an iterator over s. The string is converted to UTF-16
// and all offsets reported by the iterator are UTF-16 code unit indices.
func NewString(s string, opts ...Option) *Iterator {
	return New(encodeString(s), opts...)
}

// NewStringRange is NewRange over the UTF-16 form of s.
func NewStringRange(s string, start, count int, opts ...Option) (*Iterator, error) {
	return NewRange(encodeString(s), start, count, opts...)
}

// Runs returns every script run of text.
func Runs(text []uint16, opts ...Option) []Run {
	it := New(text, opts...)
	var runs []Run
	for it.Next() {
		runs = append(runs, it.Run())
	}
	return runs
}

func newIterator(o options) *Iterator {
	return &Iterator{
		stack:  make([]parenEntry, o.stackDepth),
		sp:     -1,
		lookup: o.lookup,
	}
}

func encodeString(s string) []uint16 {
	if s == "" {
		return nil
	}
	return utf16.Encode([]rune(s))
}

// checkRegion validates a region and logs the rejection.
func checkRegion(text []uint16, start, count int) error {
	err := checkRange(len(text), start, count)
	if err != nil {
		Logger().Debug("scriptrun: region rejected",
			"start", start, "count", count, "length", len(text))
	}
	return err
}

// bind installs a validated region and rewinds.
func (it *Iterator) bind(text []uint16, start, limit int) {
	if it.lookup == nil {
		it.lookup = ScriptOf
	}
	if it.stack == nil {
		it.stack = make([]parenEntry, DefaultStackDepth)
	}
	it.text = text
	it.textStart = start
	it.textLimit = limit
	it.overflowed = false
	it.Reset()
}

// Reset rewinds the iterator to the start of its current region.
func (it *Iterator) Reset() {
	it.runStart = it.textStart
	it.runLimit = it.textStart
	it.runScript = ScriptInvalid
	it.sp = -1
	clear(it.dropped[:])
}

// ResetText rebinds the iterator to all of text. A nil text is allowed and
// gives an exhausted iterator.
func (it *Iterator) ResetText(text []uint16) {
	it.bind(text, 0, len(text))
}

// ResetString rebinds the iterator to the UTF-16 form of s.
func (it *Iterator) ResetString(s string) {
	it.ResetText(encodeString(s))
}

// ResetTextRange rebinds the iterator to text[start:start+count].
// On error the iterator is left unchanged.
func (it *Iterator) ResetTextRange(text []uint16, start, count int) error {
	if err := checkRegion(text, start, count); err != nil {
		return err
	}
	it.bind(text, start, start+count)
	return nil
}

// ResetRegion selects the region [start, start+count) of the current text.
// On error the iterator is left unchanged.
func (it *Iterator) ResetRegion(start, count int) error {
	return it.ResetTextRange(it.text, start, count)
}

// ResetLimits selects the region [start, limit) of the current text.
// On error the iterator is left unchanged.
func (it *Iterator) ResetLimits(start, limit int) error {
	return it.ResetTextRange(it.text, start, limit-start)
}

// Next advances to the next script run and reports whether there was one.
// Once the region is exhausted Next keeps returning false.
func (it *Iterator) Next() bool {
	if it.runLimit >= it.textLimit {
		return false
	}

	// Entries above startSP were pushed while this run had no concrete
	// script yet and are fixed up once it gets one.
	startSP := it.sp
	script := ScriptCommon
	it.runStart = it.runLimit

	for it.runLimit < it.textLimit {
		r, n := it.codePointAt(it.runLimit)
		sc := it.lookup(r)
		pi := pairIndex(r)

		match := -1
		closesDropped := false
		if pi >= 0 && pi&1 == 1 {
			if it.dropped[pi>>1] > 0 {
				closesDropped = true
			} else if match = it.findOpener(pi &^ 1); match >= 0 {
				sc = it.stack[match].script
			}
		}

		if !sameScript(script, sc) {
			break
		}
		it.runLimit += n

		if closesDropped {
			it.dropped[pi>>1]--
		}
		if match >= 0 {
			// Closing an entry closes everything nested in it, dropped
			// openers included.
			it.sp = match - 1
			startSP = min(startSP, it.sp)
			clear(it.dropped[:])
		}
		if !script.Strong() && sc.Strong() {
			script = sc
			for startSP < it.sp {
				startSP++
				it.stack[startSP].script = script
			}
		}
		if pi >= 0 && pi&1 == 0 {
			it.push(pi, script)
		}
	}

	it.runScript = script
	return true
}

// push records an opener. Openers beyond the stack capacity are only
// counted: the closer of a dropped opener is consumed as an ordinary
// character and leaves the stack alone. The overflow is logged once per
// bound text.
func (it *Iterator) push(pi int, script Script) {
	if it.sp+1 >= len(it.stack) {
		it.dropped[pi>>1]++
		if !it.overflowed {
			it.overflowed = true
			Logger().LogAttrs(context.Background(), slog.LevelDebug, "scriptrun: pair stack full",
				slog.Int("depth", len(it.stack)), slog.Int("offset", it.runLimit))
		}
		return
	}
	it.sp++
	it.stack[it.sp] = parenEntry{pairIndex: pi, script: script}
}

// findOpener returns the stack index of the innermost opener with the
// given pair index, or -1.
func (it *Iterator) findOpener(open int) int {
	for i := it.sp; i >= 0; i-- {
		if it.stack[i].pairIndex == open {
			return i
		}
	}
	return -1
}

// codePointAt decodes the code point at i without reading past the region
// limit. An unpaired surrogate is returned as itself with width 1.
func (it *Iterator) codePointAt(i int) (rune, int) {
	c := rune(it.text[i])
	if utf16.IsSurrogate(c) && i+1 < it.textLimit {
		if r := utf16.DecodeRune(c, rune(it.text[i+1])); r != unicode.ReplacementChar {
			return r, 2
		}
	}
	return c, 1
}

// sameScript reports whether b may continue a run whose script so far is a.
func sameScript(a, b Script) bool {
	return !a.Strong() || !b.Strong() || a == b
}

// Start returns the start of the run found by the last successful Next.
func (it *Iterator) Start() int { return it.runStart }

// Limit returns the end (exclusive) of the run found by the last successful Next.
func (it *Iterator) Limit() int { return it.runLimit }

// Script returns the script of the run found by the last successful Next.
// Before the first Next it returns ScriptInvalid. A run made only of Common
// and Inherited characters reports ScriptCommon.
func (it *Iterator) Script() Script { return it.runScript }

// Run returns the run found by the last successful Next.
func (it *Iterator) Run() Run {
	return Run{Start: it.runStart, Limit: it.runLimit, Script: it.runScript}
}

// TextStart returns the start of the iterated region.
func (it *Iterator) TextStart() int { return it.textStart }

// TextLimit returns the end (exclusive) of the iterated region.
func (it *Iterator) TextLimit() int { return it.textLimit }

// All returns an iterator over the runs that remain, advancing it.
func (it *Iterator) All() iter.Seq[Run] {
	return func(yield func(Run) bool) {
		for it.Next() {
			if !yield(it.Run()) {
				return
			}
		}
	}
}
