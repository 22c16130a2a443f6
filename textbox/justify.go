package textbox

import "github.com/vellumtext/vellum/format"

// gapWidths returns the pixel width of each inter-word gap in ln.
// Justified lines absorb the slack between natural width and budget:
// every gap grows by the integer quotient, and the leftmost gaps take
// the remainder one pixel each. Lines that are not justifiable, or
// that leave no slack, keep single spaces.
func (tb *TextBox) gapWidths(ln *Line, justify bool) []int {
	n := len(ln.Words)
	if n < 2 {
		return nil
	}
	sp := tb.spaceWidth()
	gaps := make([]int, n-1)
	for i := range gaps {
		gaps[i] = sp
	}
	if !justify || !ln.Justifiable {
		return gaps
	}
	slack := tb.width - ln.Indent - tb.naturalWidth(ln)
	if slack <= 0 {
		return gaps
	}
	q, r := slack/(n-1), slack%(n-1)
	for i := range gaps {
		gaps[i] += q
		if i < r {
			gaps[i]++
		}
	}
	return gaps
}

type segment struct {
	x     int
	text  string
	style format.Style
}

// segments lays ln out against its gaps. Adjacent same-style words
// separated by a plain single space merge into one draw call; any
// stretched gap or style change starts a new segment.
func (tb *TextBox) segments(ln *Line, gaps []int) []segment {
	sp := tb.spaceWidth()
	var segs []segment
	x := ln.Indent
	for i, w := range ln.Words {
		if i > 0 {
			x += gaps[i-1]
		}
		if i > 0 && gaps[i-1] == sp && segs[len(segs)-1].style == w.Style {
			segs[len(segs)-1].text += " " + w.Text
		} else {
			segs = append(segs, segment{x: x, text: w.Text, style: w.Style})
		}
		x += tb.wordWidth(w)
	}
	return segs
}
