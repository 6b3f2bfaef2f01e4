package scriptrun

// DefaultStackDepth is the default capacity of the paired-character stack.
// Openers beyond this nesting depth, and their closers, are treated as
// ordinary characters.
const DefaultStackDepth = 32

// Option configures an Iterator or a Segmenter during creation.
//
// Example:
//
//	// Default iterator
//	it := scriptrun.New(text)
//
//	// Deeper bracket nesting and a custom property source
//	it := scriptrun.New(text,
//	    scriptrun.WithStackDepth(128),
//	    scriptrun.WithLookup(myScriptOf))
type Option func(*options)

// options holds optional configuration shared by Iterator and Segmenter.
type options struct {
	stackDepth int
	lookup     func(rune) Script
	workers    int
	cacheSize  int

	baseDirection Direction
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		stackDepth: DefaultStackDepth,
		lookup:     ScriptOf,
		workers:    0, // GOMAXPROCS
		cacheSize:  0, // no cache

		baseDirection: DirectionLTR,
	}
}

// applyOptions returns the defaults overridden by opts.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithStackDepth sets the capacity of the paired-character stack.
// Values <= 0 select DefaultStackDepth.
func WithStackDepth(depth int) Option {
	return func(o *options) {
		if depth <= 0 {
			depth = DefaultStackDepth
		}
		o.stackDepth = depth
	}
}

// WithLookup replaces ScriptOf as the source of Script property values.
// The function must be safe for concurrent use if the same option is shared
// by iterators running on different goroutines. A nil function restores
// ScriptOf.
func WithLookup(lookup func(rune) Script) Option {
	return func(o *options) {
		if lookup == nil {
			lookup = ScriptOf
		}
		o.lookup = lookup
	}
}

// WithWorkers sets the number of goroutines Segmenter.SegmentAll uses.
// Values <= 0 select GOMAXPROCS. Iterators ignore this option.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCache makes a Segmenter remember the segments of up to size recently
// seen strings. Values <= 0 disable the cache. Iterators ignore this option.
func WithCache(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithBaseDirection sets the paragraph direction a Segmenter resolves bidi
// levels in. With DirectionLTR, the default, the first strong character
// picks the paragraph direction and text without one is left-to-right.
// DirectionRTL forces a right-to-left paragraph. Iterators ignore this
// option.
func WithBaseDirection(d Direction) Option {
	return func(o *options) {
		o.baseDirection = d
	}
}
