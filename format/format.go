// Package format parses inline emphasis markers (<b>, </b>, <i>, </i>)
// into runs of styled words.
package format

// Style is a bitset of emphasis toggles. The zero value is plain text.
type Style uint8

const (
	Bold Style = 1 << iota
	Italic
)

// Plain is the unstyled zero value.
const Plain Style = 0

// String returns the font slot name associated with the style.
func (s Style) String() string {
	switch {
	case s&Bold != 0 && s&Italic != 0:
		return "boldital"
	case s&Bold != 0:
		return "bold"
	case s&Italic != 0:
		return "ital"
	default:
		return "main"
	}
}

// Word is a whitespace-delimited token with its resolved style.
type Word struct {
	Text  string
	Style Style
}

// Run is a maximal sequence of same-style words, or an explicit line
// break (Break true, no words).
type Run struct {
	Words []string
	Style Style
	Break bool
}
