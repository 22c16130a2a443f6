package textbox

import "github.com/vellumtext/vellum/format"

// Overflow is reported by returning an *Unwritten, never by an error:
// a full box is a normal outcome, a parse failure is not. Operations
// that fail to parse commit nothing.

func parseRuns(text string, opts WriteOptions) ([]format.Run, error) {
	switch {
	case opts.DiscardFormatting:
		return format.ParseDiscard(text)
	case opts.Formatting:
		return format.Parse(text)
	default:
		return format.Literal(text), nil
	}
}

// WriteParagraph wraps text into the box and writes lines until the
// vertical budget runs out. The first line takes the paragraph
// indent, later lines the new-line indent. Content that did not fit
// comes back as an *Unwritten for a same-config box to continue.
func (tb *TextBox) WriteParagraph(text string, opts WriteOptions) (*Unwritten, error) {
	runs, err := parseRuns(text, opts)
	if err != nil {
		return nil, err
	}
	lines := tb.wrap(tokenize(runs), tb.opts.ParagraphIndent, tb.opts.NewLineIndent)
	return tb.writeLines(lines, opts), nil
}

// ContinueParagraph resumes content a same-config box could not fit.
// The saved lines are written without re-wrapping; a raw word tail
// (from Write) is wrapped at continuation budgets first. justify
// applies to the resumed lines. A further overflow comes back as
// another *Unwritten.
func (tb *TextBox) ContinueParagraph(u *Unwritten, justify bool) (*Unwritten, error) {
	if u.Empty() {
		return nil, nil
	}
	if err := tb.checkConfig(u.cfg); err != nil {
		logger().Debug("continuation rejected", "err", err)
		return nil, err
	}
	lines := u.lines
	if len(u.tail) > 0 {
		lines = append(lines[:len(lines):len(lines)],
			tb.wrap(u.tail, tb.opts.NewLineIndent, tb.opts.NewLineIndent)...)
	}
	opts := WriteOptions{Justify: justify, Formatting: u.formatted}
	return tb.writeLines(lines, opts), nil
}

// writeLines commits lines one per slot until the box is exhausted
// (or one slot earlier under ReserveLastLine) and bundles the rest.
func (tb *TextBox) writeLines(lines []Line, opts WriteOptions) *Unwritten {
	for i := range lines {
		if tb.IsExhausted() || (opts.ReserveLastLine && tb.OnLastLine()) {
			logger().Debug("box full", "pending", len(lines)-i)
			return tb.newUnwritten(lines[i:], nil, opts)
		}
		tb.commitLine(&lines[i], opts.Justify)
	}
	return nil
}

// commitLine draws ln on the cursor's line slot and advances to the
// next one.
func (tb *TextBox) commitLine(ln *Line, justify bool) {
	gaps := tb.gapWidths(ln, justify)
	for _, seg := range tb.segments(ln, gaps) {
		tb.drawRun(seg.x, tb.cursorY, seg.text, seg.style)
	}
	tb.NextLineCursor()
}

// WriteLine composes the whole input as exactly one line; it never
// wraps. Input that cannot fit its width budget, or that arrives with
// no line slot left, comes back unwritten in full. Unlike wrapped
// lines, a solitary written line may be justified.
func (tb *TextBox) WriteLine(text string, opts WriteOptions) (*Unwritten, error) {
	runs, err := parseRuns(text, opts)
	if err != nil {
		return nil, err
	}
	toks := tokenize(runs)
	ln := Line{}
	for _, tk := range toks {
		if !tk.brk {
			ln.Words = append(ln.Words, tk.word)
		}
	}
	if len(ln.Words) == 0 {
		return nil, nil
	}
	ln.EndsBreak = toks[len(toks)-1].brk
	ln.Justifiable = len(ln.Words) > 1 && !ln.EndsBreak

	blocked := tb.IsExhausted() ||
		(opts.ReserveLastLine && tb.OnLastLine()) ||
		tb.naturalWidth(&ln) > tb.width-ln.Indent
	if blocked {
		logger().Debug("line does not fit", "words", len(ln.Words))
		return tb.newUnwritten([]Line{ln}, nil, opts), nil
	}
	tb.commitLine(&ln, opts.Justify)
	return nil, nil
}

// Write places words one at a time from the current cursor, wrapping
// at the right edge. It applies no indents and never justifies; the
// cursor stays just after the last word written, so successive calls
// run on. Words that find no line slot come back as a raw tail.
func (tb *TextBox) Write(text string, formatting bool) (*Unwritten, error) {
	opts := WriteOptions{Formatting: formatting}
	runs, err := parseRuns(text, opts)
	if err != nil {
		return nil, err
	}
	toks := tokenize(runs)
	sp := tb.spaceWidth()

	for i, tk := range toks {
		if tb.IsExhausted() {
			return tb.newUnwritten(nil, toks[i:], opts), nil
		}
		if tk.brk {
			tb.NextLineCursor()
			tb.cursorX = 0
			continue
		}
		w := tb.wordWidth(tk.word)
		if tb.midLine && tb.cursorX+sp+w > tb.width {
			tb.NextLineCursor()
			tb.cursorX = 0
			if tb.IsExhausted() {
				return tb.newUnwritten(nil, toks[i:], opts), nil
			}
		}
		x := tb.cursorX
		if tb.midLine {
			x += sp
		}
		tb.drawRun(x, tb.cursorY, tk.word.Text, tk.word.Style)
		tb.cursorX = x + w
		tb.midLine = true
	}
	return nil, nil
}
