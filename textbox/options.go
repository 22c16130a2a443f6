package textbox

// Margins is the blank border kept around the writable area, in
// pixels.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Options configures a TextBox. Width, Height and Font are required.
type Options struct {
	// Width and Height are the full box size in pixels, margins
	// included.
	Width, Height int

	// Font is the main font source; styled slots fall back to it.
	Font FontSource

	// FontSize is the main point size. Defaults to 12.
	FontSize float64

	// ParagraphIndent is reserved at the start of a paragraph's first
	// line, NewLineIndent at the start of every later line.
	ParagraphIndent int
	NewLineIndent   int

	// LineSpacing is the vertical gap between lines. Zero selects the
	// default of 4; negative values collapse to 0.
	LineSpacing int

	Margins Margins

	// Surface receives draw calls. A nil surface makes the box
	// measure-only.
	Surface Surface
}

func (o Options) withDefaults() Options {
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	switch {
	case o.LineSpacing == 0:
		o.LineSpacing = 4
	case o.LineSpacing < 0:
		o.LineSpacing = 0
	}
	return o
}

// WriteOptions controls a single write operation.
type WriteOptions struct {
	// Justify stretches inter-word gaps so justifiable lines exactly
	// fill their width budget.
	Justify bool

	// Formatting interprets inline <b>/<i> markers. When false the
	// markers pass through as literal text.
	Formatting bool

	// DiscardFormatting validates markers but renders everything in
	// the main font. Implies parsing regardless of Formatting.
	DiscardFormatting bool

	// ReserveLastLine stops writing before the final line slot is
	// consumed, leaving it for a caller footer.
	ReserveLastLine bool
}
