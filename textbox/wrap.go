package textbox

import "github.com/vellumtext/vellum/format"

// Line is one laid-out row of words.
type Line struct {
	Words []format.Word

	// Indent is reserved before the first word, shrinking the width
	// budget by the same amount.
	Indent int

	// EndsBreak marks a line terminated by an explicit break in the
	// source rather than by wrapping.
	EndsBreak bool

	// Justifiable lines may have their gaps stretched. Wrapping
	// clears it on the final line of the input, on lines ending in an
	// explicit break, and on lines with fewer than two words.
	Justifiable bool
}

type token struct {
	word format.Word
	brk  bool
}

func tokenize(runs []format.Run) []token {
	var toks []token
	for _, r := range runs {
		if r.Break {
			toks = append(toks, token{brk: true})
			continue
		}
		for _, w := range r.Words {
			toks = append(toks, token{word: format.Word{Text: w, Style: r.Style}})
		}
	}
	return toks
}

// wrap splits tokens greedily into lines against the writable width.
// The first line reserves firstIndent pixels, later lines restIndent.
// A word wider than a fresh line's budget overflows alone on its own
// line. Empty lines from consecutive breaks are preserved.
func (tb *TextBox) wrap(toks []token, firstIndent, restIndent int) []Line {
	sp := tb.spaceWidth()

	var lines []Line
	cur := Line{Indent: firstIndent}
	width := 0

	flush := func(endsBreak bool) {
		cur.EndsBreak = endsBreak
		lines = append(lines, cur)
		cur = Line{Indent: restIndent}
		width = 0
	}

	for _, tk := range toks {
		if tk.brk {
			flush(true)
			continue
		}
		w := tb.wordWidth(tk.word)
		budget := tb.width - cur.Indent
		if len(cur.Words) > 0 && width+sp+w > budget {
			flush(false)
			budget = tb.width - cur.Indent
		}
		if len(cur.Words) > 0 {
			width += sp
		}
		cur.Words = append(cur.Words, tk.word)
		width += w
		if len(cur.Words) == 1 && width > budget {
			// over-wide word stays alone
			flush(false)
		}
	}
	if len(cur.Words) > 0 {
		lines = append(lines, cur)
	}

	for i := range lines {
		ln := &lines[i]
		ln.Justifiable = len(ln.Words) > 1 && !ln.EndsBreak && i < len(lines)-1
	}
	return lines
}

// naturalWidth is the line's width at single-space gaps, indent
// excluded.
func (tb *TextBox) naturalWidth(ln *Line) int {
	if len(ln.Words) == 0 {
		return 0
	}
	w := tb.spaceWidth() * (len(ln.Words) - 1)
	for _, word := range ln.Words {
		w += tb.wordWidth(word)
	}
	return w
}
