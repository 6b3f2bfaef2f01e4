// Package scriptrun splits text into script runs.
//
// # Overview
//
// A script run is a maximal span of text whose characters belong to one
// Unicode script (UAX #24). Script runs are the unit of work for font
// selection and shaping: a shaper is handed "Hello " as Latin, "мир" as
// Cyrillic and so on.
//
// Characters of the Common script (spaces, digits, most punctuation) and
// the Inherited script (combining marks) have no script of their own. They
// join the run around them. Paired punctuation is handled so that a closing
// bracket or quotation mark gets the script of the run that contained its
// opener.
//
// # Quick Start
//
//	import "github.com/gogpu/scriptrun"
//
//	for _, seg := range scriptrun.SegmentText("Hello, мир!") {
//	    fmt.Printf("%q %s %s\n", seg.Text, seg.Script, seg.Direction)
//	}
//
// Segments also carry the direction resolved by the Unicode Bidirectional
// Algorithm, so a script run is split where its direction changes: the
// digits in "عربي 123" form a left-to-right segment of the Arabic run.
//
// # Iterating UTF-16 text
//
// The Iterator works on UTF-16 code units, the representation used by text
// buffers that interoperate with platform text stacks:
//
//	it := scriptrun.New(units)
//	for it.Next() {
//	    shape(units[it.Start():it.Limit()], it.Script())
//	}
//
// Offsets are code unit indices. Surrogate pairs are never split.
//
// # Script properties
//
// Script values come from the go-text property tables. A Script also knows
// its English name, its writing direction and whether it is cased, and
// ScriptsForLocale maps a BCP 47 locale to the scripts its language uses.
//
// # Logging
//
// The package is silent by default. Install a *slog.Logger with SetLogger
// to see debug events.
package scriptrun

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
