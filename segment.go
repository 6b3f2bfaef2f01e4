package scriptrun

import (
	"slices"
	"unicode/utf16"

	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/scriptrun/internal/cache"
	"github.com/gogpu/scriptrun/internal/parallel"
)

// Direction is a horizontal writing direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (Latin, Cyrillic, Han, ...).
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew, ...).
	DirectionRTL
)

// String returns "LTR" or "RTL".
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// Segment is a contiguous span of a UTF-8 string with one script and one
// resolved bidi direction. A script run whose characters resolve to
// different directions, such as Arabic words followed by European digits,
// is split into several segments of the same script.
// Start and End are byte offsets; Text is the substring they delimit.
type Segment struct {
	Text      string
	Start     int
	End       int
	Script    Script
	Direction Direction
	Level     int // 0 for left-to-right, 1 for right-to-left
}

// RuneCount returns the number of code points in the segment.
func (s Segment) RuneCount() int {
	count := 0
	for range s.Text {
		count++
	}
	return count
}

// Segmenter splits UTF-8 strings into script runs.
// A Segmenter is safe for concurrent use.
type Segmenter struct {
	opts    []Option
	workers int
	baseDir Direction
	cache   *cache.LRU[[]Segment] // nil without WithCache
}

// NewSegmenter returns a Segmenter whose iterators use opts.
func NewSegmenter(opts ...Option) *Segmenter {
	o := applyOptions(opts)
	s := &Segmenter{
		opts:    opts,
		workers: o.workers,
		baseDir: o.baseDirection,
	}
	if o.cacheSize > 0 {
		s.cache = cache.New[[]Segment](o.cacheSize)
	}
	return s
}

// Segment splits text into script runs with byte offsets.
// It returns nil for an empty string. The returned slice belongs to the
// caller even when it was served from the cache.
func (s *Segmenter) Segment(text string) []Segment {
	if text == "" {
		return nil
	}
	if s.cache == nil {
		return s.segment(text)
	}
	if cached, ok := s.cache.Get(text); ok {
		return slices.Clone(cached)
	}
	segments := s.segment(text)
	s.cache.Add(text, segments)
	return slices.Clone(segments)
}

// CacheStats describes the Segmenter cache.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// CacheStats returns the cache statistics, or the zero value when the
// Segmenter was created without WithCache.
func (s *Segmenter) CacheStats() CacheStats {
	if s.cache == nil {
		return CacheStats{}
	}
	st := s.cache.Stats()
	return CacheStats{
		Len:       st.Len,
		Capacity:  st.Capacity,
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
	}
}

func (s *Segmenter) segment(text string) []Segment {
	units, byteOffsets := encodeWithOffsets(text)
	levels := unitLevels(text, len(units), s.computeBidiLevels(text))
	it := New(units, s.opts...)

	segments := make([]Segment, 0, 4)
	for it.Next() {
		run := it.Run()
		start := run.Start
		for i := run.Start + 1; i < run.Limit; i++ {
			if levels[i] == levels[start] {
				continue
			}
			segments = append(segments, makeSegment(text, byteOffsets, start, i, levels[start], run.Script))
			start = i
		}
		segments = append(segments, makeSegment(text, byteOffsets, start, run.Limit, levels[start], run.Script))
	}
	return segments
}

// computeBidiLevels resolves the direction of every rune of text with the
// Unicode Bidirectional Algorithm. Levels are 0 (left-to-right) or 1
// (right-to-left).
func (s *Segmenter) computeBidiLevels(text string) []int {
	levels := make([]int, 0, len(text))
	for range text {
		levels = append(levels, 0)
	}

	defaultDir := bidi.Neutral
	if s.baseDir == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	_, _ = p.SetString(text, bidi.DefaultDirection(defaultDir))

	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// Run positions are rune indices, end inclusive.
	for i := range ordering.NumRuns() {
		run := ordering.Run(i)
		if run.Direction() != bidi.RightToLeft {
			continue
		}
		start, end := run.Pos()
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = 1
		}
	}
	return levels
}

// unitLevels spreads per-rune levels over the UTF-16 code units of text.
func unitLevels(text string, units int, runeLevels []int) []int {
	levels := make([]int, 0, units)
	ri := 0
	for _, r := range text {
		for range utf16.RuneLen(r) {
			levels = append(levels, runeLevels[ri])
		}
		ri++
	}
	return levels
}

// SegmentAll segments every text on a worker pool. Result i belongs to
// texts[i].
func (s *Segmenter) SegmentAll(texts []string) [][]Segment {
	if len(texts) == 0 {
		return [][]Segment{}
	}

	pool := parallel.NewWorkerPool(s.workers)
	defer pool.Close()

	Logger().Debug("scriptrun: batch segmentation",
		"texts", len(texts), "workers", pool.Workers())

	return parallel.Map(pool, texts, s.Segment)
}

// SegmentText splits text into script runs using the default options.
func SegmentText(text string) []Segment {
	return NewSegmenter().Segment(text)
}

// encodeWithOffsets converts text to UTF-16 and records, for every code
// unit index and for the end of the text, the matching byte offset.
// Both halves of a surrogate pair map to the byte offset of the rune.
func encodeWithOffsets(text string) ([]uint16, []int) {
	units := make([]uint16, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		before := len(units)
		units = utf16.AppendRune(units, r)
		for range len(units) - before {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(text))
	return units, offsets
}

func makeSegment(text string, byteOffsets []int, start, limit, level int, script Script) Segment {
	startByte := byteOffsets[start]
	endByte := byteOffsets[limit]

	dir := DirectionLTR
	if level%2 == 1 {
		dir = DirectionRTL
	}

	return Segment{
		Text:      text[startByte:endByte],
		Start:     startByte,
		End:       endByte,
		Script:    script,
		Direction: dir,
		Level:     level,
	}
}
