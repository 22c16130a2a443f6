package textbox

import (
	"reflect"
	"strings"
	"testing"
)

func TestWriteLineNaturalWidth(t *testing.T) {
	tb, surf := newTestBox(t, Options{})
	left, err := tb.WriteLine("Hello world", WriteOptions{})
	if err != nil {
		t.Fatalf("WriteLine returned error: %v", err)
	}
	if !left.Empty() {
		t.Fatalf("unwritten = %q, want empty", left.Text())
	}
	if len(surf.runs) != 1 {
		t.Fatalf("drew %d runs, want 1 merged run", len(surf.runs))
	}
	run := surf.runs[0]
	if run.text != "Hello world" || run.x != 0 || run.y != 8 {
		t.Fatalf("run = %q at (%d, %d), want \"Hello world\" at (0, 8)", run.text, run.x, run.y)
	}
	if got := tb.LinesLeft(); got != 4 {
		t.Fatalf("LinesLeft after one line = %d, want 4", got)
	}
}

func TestWriteLineJustifiedFillsBudget(t *testing.T) {
	tb, surf := newTestBox(t, Options{})
	// natural width 110 against a 200 budget: the one gap absorbs all
	// 90px of slack
	left, err := tb.WriteLine("Hello world", WriteOptions{Justify: true})
	if err != nil {
		t.Fatalf("WriteLine returned error: %v", err)
	}
	if !left.Empty() {
		t.Fatalf("unwritten = %q, want empty", left.Text())
	}
	if len(surf.runs) != 2 {
		t.Fatalf("drew %d runs, want 2", len(surf.runs))
	}
	if surf.runs[0].x != 0 || surf.runs[1].x != 150 {
		t.Fatalf("runs at x %d and %d, want 0 and 150", surf.runs[0].x, surf.runs[1].x)
	}
}

func TestWriteLineOverflowReturnsAllUnwritten(t *testing.T) {
	tb, surf := newTestBox(t, Options{Width: 100})
	left, err := tb.WriteLine("Hello world", WriteOptions{})
	if err != nil {
		t.Fatalf("WriteLine returned error: %v", err)
	}
	if left.Empty() {
		t.Fatal("110px of text fit a 100px budget")
	}
	if got := left.Text(); got != "Hello world" {
		t.Fatalf("unwritten text = %q, want the whole input", got)
	}
	if len(surf.runs) != 0 {
		t.Fatalf("drew %d runs on overflow, want 0", len(surf.runs))
	}
	if x, y := tb.Cursor(); x != 0 || y != 0 {
		t.Fatalf("cursor moved to (%d, %d) on overflow", x, y)
	}
}

func TestWriteLineHonorsReserveLastLine(t *testing.T) {
	tb, _ := newTestBox(t, Options{})
	for i := 0; i < 4; i++ {
		tb.NextLineCursor()
	}
	if !tb.OnLastLine() {
		t.Fatal("fixture expected the last line slot")
	}
	left, err := tb.WriteLine("hold", WriteOptions{ReserveLastLine: true})
	if err != nil {
		t.Fatalf("WriteLine returned error: %v", err)
	}
	if left.Empty() {
		t.Fatal("ReserveLastLine wrote on the final slot")
	}
	if left, err = tb.WriteLine("hold", WriteOptions{}); err != nil || !left.Empty() {
		t.Fatalf("last slot write = (%v, %v), want fit", left, err)
	}
}

func TestWriteParagraphWrapsGreedily(t *testing.T) {
	tb, surf := newTestBox(t, Options{})
	left, err := tb.WriteParagraph("aaaa bbbb cccc dddd eeee ffff", WriteOptions{})
	if err != nil {
		t.Fatalf("WriteParagraph returned error: %v", err)
	}
	if !left.Empty() {
		t.Fatalf("unwritten = %q, want empty", left.Text())
	}
	want := []string{"aaaa bbbb cccc dddd", "eeee ffff"}
	if got := surf.texts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
	if surf.runs[0].y != 8 || surf.runs[1].y != 28 {
		t.Fatalf("baselines = %d, %d, want 8, 28", surf.runs[0].y, surf.runs[1].y)
	}
}

func TestWriteParagraphIndents(t *testing.T) {
	tb, surf := newTestBox(t, Options{ParagraphIndent: 20, NewLineIndent: 10})
	left, err := tb.WriteParagraph("aaaa bbbb cccc dddd eeee ffff", WriteOptions{})
	if err != nil {
		t.Fatalf("WriteParagraph returned error: %v", err)
	}
	if !left.Empty() {
		t.Fatalf("unwritten = %q, want empty", left.Text())
	}
	// 180px first-line budget takes three 40px words, the 190px
	// continuation budget takes the rest
	want := []string{"aaaa bbbb cccc", "dddd eeee ffff"}
	if got := surf.texts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
	if surf.runs[0].x != 20 || surf.runs[1].x != 10 {
		t.Fatalf("indents = %d, %d, want 20, 10", surf.runs[0].x, surf.runs[1].x)
	}
}

func TestWriteParagraphJustify(t *testing.T) {
	tb, surf := newTestBox(t, Options{})
	left, err := tb.WriteParagraph("aaaa bbbb cccc dddd eeee ffff", WriteOptions{Justify: true})
	if err != nil {
		t.Fatalf("WriteParagraph returned error: %v", err)
	}
	if !left.Empty() {
		t.Fatalf("unwritten = %q, want empty", left.Text())
	}
	// first line: slack 10 over three gaps -> 14, 13, 13
	wantX := []int{0, 54, 107, 160}
	for i, want := range wantX {
		if surf.runs[i].x != want {
			t.Fatalf("justified word %d at x=%d, want %d", i, surf.runs[i].x, want)
		}
	}
	// the input's final line keeps natural spacing
	last := surf.runs[len(surf.runs)-1]
	if last.text != "eeee ffff" || last.x != 0 {
		t.Fatalf("last line = %q at x=%d, want natural \"eeee ffff\" at 0", last.text, last.x)
	}
}

func TestExplicitBreakSuppressesJustify(t *testing.T) {
	tb, surf := newTestBox(t, Options{})
	left, err := tb.WriteParagraph("aa bb\ncc dd", WriteOptions{Justify: true})
	if err != nil {
		t.Fatalf("WriteParagraph returned error: %v", err)
	}
	if !left.Empty() {
		t.Fatalf("unwritten = %q, want empty", left.Text())
	}
	want := []string{"aa bb", "cc dd"}
	if got := surf.texts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %v, want %v (natural spacing on both)", got, want)
	}
}

func TestOverWideWordStandsAlone(t *testing.T) {
	wide := strings.Repeat("x", 25) // 250px in a 200px box
	tb, surf := newTestBox(t, Options{})
	left, err := tb.WriteParagraph("aa "+wide+" bb", WriteOptions{})
	if err != nil {
		t.Fatalf("WriteParagraph returned error: %v", err)
	}
	if !left.Empty() {
		t.Fatalf("unwritten = %q, want empty", left.Text())
	}
	want := []string{"aa", wide, "bb"}
	if got := surf.texts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
}

func TestBlankLineConsumesSlot(t *testing.T) {
	tb, surf := newTestBox(t, Options{})
	if _, err := tb.WriteParagraph("aa\n\nbb", WriteOptions{}); err != nil {
		t.Fatalf("WriteParagraph returned error: %v", err)
	}
	if len(surf.runs) != 2 {
		t.Fatalf("drew %d runs, want 2", len(surf.runs))
	}
	if surf.runs[1].y != 48 {
		t.Fatalf("second line baseline = %d, want 48 (blank line kept its slot)", surf.runs[1].y)
	}
}

func TestWriteParagraphParseErrorCommitsNothing(t *testing.T) {
	tb, surf := newTestBox(t, Options{})
	if _, err := tb.WriteParagraph("<b>never closed", WriteOptions{Formatting: true}); err == nil {
		t.Fatal("WriteParagraph accepted an unclosed marker")
	}
	if len(surf.runs) != 0 {
		t.Fatalf("drew %d runs after a parse error", len(surf.runs))
	}
	if x, y := tb.Cursor(); x != 0 || y != 0 {
		t.Fatalf("cursor moved to (%d, %d) after a parse error", x, y)
	}
}

func TestWriteParagraphDiscardFormatting(t *testing.T) {
	tb, surf := newTestBox(t, Options{})
	if _, err := tb.WriteParagraph("<b>x</b> y", WriteOptions{DiscardFormatting: true}); err != nil {
		t.Fatalf("WriteParagraph returned error: %v", err)
	}
	// both words plain: a single merged run
	if len(surf.runs) != 1 || surf.runs[0].text != "x y" {
		t.Fatalf("runs = %v, want one plain \"x y\"", surf.texts())
	}
}

func TestWriteWordByWord(t *testing.T) {
	tb, surf := newTestBox(t, Options{Width: 90})
	left, err := tb.Write("one two three", false)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if !left.Empty() {
		t.Fatalf("unwritten = %q, want empty", left.Text())
	}
	want := []drawnRun{
		{x: 0, y: 8, text: "one"},
		{x: 40, y: 8, text: "two"},
		{x: 0, y: 28, text: "three"},
	}
	if len(surf.runs) != len(want) {
		t.Fatalf("drew %d runs, want %d", len(surf.runs), len(want))
	}
	for i, w := range want {
		got := surf.runs[i]
		if got.x != w.x || got.y != w.y || got.text != w.text {
			t.Fatalf("run %d = %q at (%d, %d), want %q at (%d, %d)",
				i, got.text, got.x, got.y, w.text, w.x, w.y)
		}
	}

	// a second call runs on from the cursor: "more" cannot follow
	// "three" within 90px, so it wraps
	if _, err := tb.Write("more", false); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	next := surf.runs[len(surf.runs)-1]
	if next.x != 0 || next.y != 48 {
		t.Fatalf("continued run at (%d, %d), want (0, 48)", next.x, next.y)
	}
}

func TestWriteReturnsTailOnExhaustion(t *testing.T) {
	tb, _ := newTestBox(t, Options{Width: 90, Height: 20})
	left, err := tb.Write("aaaa bbbb cccc dddd eeee", false)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if left.Empty() {
		t.Fatal("five 40px words fit a single 90px line")
	}
	if got := left.Text(); got != "cccc dddd eeee" {
		t.Fatalf("tail = %q, want \"cccc dddd eeee\"", got)
	}
}
