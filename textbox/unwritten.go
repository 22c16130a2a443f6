package textbox

import (
	"fmt"

	"github.com/vellumtext/vellum/format"
)

// Unwritten carries content a box could not fit, ready for
// ContinueParagraph on a box with the same configuration. Joining
// what was written with what an Unwritten holds reproduces every word
// of the original input exactly once, in order, styles intact.
type Unwritten struct {
	lines     []Line
	tail      []token // raw words from Write, never wrapped
	justify   bool
	formatted bool
	cfg       config
}

func (tb *TextBox) newUnwritten(lines []Line, tail []token, opts WriteOptions) *Unwritten {
	return &Unwritten{
		lines:     lines,
		tail:      tail,
		justify:   opts.Justify,
		formatted: opts.Formatting && !opts.DiscardFormatting,
		cfg:       tb.config(),
	}
}

// Empty reports whether nothing is pending.
func (u *Unwritten) Empty() bool {
	return u == nil || (len(u.lines) == 0 && len(u.tail) == 0)
}

// Len returns the number of pre-wrapped lines pending.
func (u *Unwritten) Len() int {
	if u == nil {
		return 0
	}
	return len(u.lines)
}

// Justify reports whether the producing write asked for
// justification.
func (u *Unwritten) Justify() bool { return u != nil && u.justify }

// Text reconstructs the pending content as marker text. Soft-wrapped
// line boundaries become single spaces; explicit breaks survive as
// newlines.
func (u *Unwritten) Text() string {
	if u.Empty() {
		return ""
	}
	var rb runsCollector
	for _, ln := range u.lines {
		for _, w := range ln.Words {
			rb.word(w)
		}
		if ln.EndsBreak {
			rb.lineBreak()
		}
	}
	for _, tk := range u.tail {
		if tk.brk {
			rb.lineBreak()
		} else {
			rb.word(tk.word)
		}
	}
	runs := rb.finish()
	if !u.formatted {
		for i := range runs {
			runs[i].Style = format.Plain
		}
	}
	return format.Markup(runs)
}

// runsCollector rebuilds format runs from laid-out words.
type runsCollector struct {
	runs []format.Run
	cur  []string
	sty  format.Style
}

func (rc *runsCollector) word(w format.Word) {
	if len(rc.cur) > 0 && w.Style != rc.sty {
		rc.flush()
	}
	rc.sty = w.Style
	rc.cur = append(rc.cur, w.Text)
}

func (rc *runsCollector) lineBreak() {
	rc.flush()
	rc.runs = append(rc.runs, format.Run{Break: true})
}

func (rc *runsCollector) flush() {
	if len(rc.cur) > 0 {
		rc.runs = append(rc.runs, format.Run{Words: rc.cur, Style: rc.sty})
		rc.cur = nil
	}
}

func (rc *runsCollector) finish() []format.Run {
	rc.flush()
	return rc.runs
}

// config is the comparable fingerprint continuation checks against.
type config struct {
	Width, Height   int
	Margins         Margins
	ParagraphIndent int
	NewLineIndent   int
	LineSpacing     int
	Sizes           [4]float64
	MetricsID       string
}

func (tb *TextBox) config() config {
	c := config{
		Width:           tb.opts.Width,
		Height:          tb.opts.Height,
		Margins:         tb.opts.Margins,
		ParagraphIndent: tb.opts.ParagraphIndent,
		NewLineIndent:   tb.opts.NewLineIndent,
		LineSpacing:     tb.opts.LineSpacing,
	}
	for i, s := range tb.slots {
		if s != nil {
			c.Sizes[i] = s.size
		}
	}
	if id, ok := tb.slots[0].src.(Identifier); ok {
		c.MetricsID = id.MetricsID()
	}
	return c
}

// checkConfig verifies the box matches the fingerprint captured with
// an Unwritten. Metrics identities only count when both sides report
// one.
func (tb *TextBox) checkConfig(want config) error {
	got := tb.config()
	if want.MetricsID == "" || got.MetricsID == "" {
		want.MetricsID, got.MetricsID = "", ""
	}
	if got == want {
		return nil
	}
	mismatch := func(field string, want, got any) error {
		return &ConfigMismatchError{Field: field, Want: fmt.Sprint(want), Got: fmt.Sprint(got)}
	}
	switch {
	case got.Width != want.Width:
		return mismatch("Width", want.Width, got.Width)
	case got.Height != want.Height:
		return mismatch("Height", want.Height, got.Height)
	case got.Margins != want.Margins:
		return mismatch("Margins", want.Margins, got.Margins)
	case got.ParagraphIndent != want.ParagraphIndent:
		return mismatch("ParagraphIndent", want.ParagraphIndent, got.ParagraphIndent)
	case got.NewLineIndent != want.NewLineIndent:
		return mismatch("NewLineIndent", want.NewLineIndent, got.NewLineIndent)
	case got.LineSpacing != want.LineSpacing:
		return mismatch("LineSpacing", want.LineSpacing, got.LineSpacing)
	case got.Sizes != want.Sizes:
		return mismatch("FontSizes", want.Sizes, got.Sizes)
	default:
		return mismatch("MetricsID", want.MetricsID, got.MetricsID)
	}
}
