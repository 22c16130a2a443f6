// Package textbox lays out styled text inside a fixed-size box: greedy
// word wrapping against pixel budgets, optional justification, a
// cursor tracking the remaining line slots, and continuation hand-off
// of content that did not fit.
//
// The engine owns no font or pixel knowledge of its own. Metrics come
// through the FontSource/Face interfaces and drawing goes out through
// a Surface, so backends stay interchangeable.
package textbox

import (
	"fmt"
	"image"

	"github.com/vellumtext/vellum/format"
)

// TextBox writes text into a fixed writable area, line slot by line
// slot. It is not safe for concurrent use.
type TextBox struct {
	opts Options

	// writable area, margins removed
	width, height int

	// cursor in writable-area pixels
	cursorX, cursorY int
	midLine          bool

	// font slots indexed by format.Style bits; slot 0 (main) is
	// always populated
	slots [4]*fontSlot

	widths  map[widthKey]int
	surface Surface
}

type fontSlot struct {
	src     FontSource
	size    float64
	face    Face
	inherit bool // size follows the main slot
}

type widthKey struct {
	style format.Style
	text  string
}

// New builds a box from opts. The main font is required; margins must
// leave a positive writable area.
func New(opts Options) (*TextBox, error) {
	opts = opts.withDefaults()
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("textbox: box size %dx%d is not positive", opts.Width, opts.Height)
	}
	if opts.Font == nil {
		return nil, ErrNoMainFont
	}
	w := opts.Width - opts.Margins.Left - opts.Margins.Right
	h := opts.Height - opts.Margins.Top - opts.Margins.Bottom
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("textbox: margins %+v leave no writable area in %dx%d",
			opts.Margins, opts.Width, opts.Height)
	}
	tb := &TextBox{
		opts:    opts,
		width:   w,
		height:  h,
		widths:  make(map[widthKey]int),
		surface: opts.Surface,
	}
	if err := tb.SetFont(format.Plain, opts.Font, opts.FontSize); err != nil {
		return nil, err
	}
	return tb, nil
}

// SetFont installs a font source for one style slot. A size at or
// below zero inherits the main size. Installing the plain slot
// replaces the main font and re-sizes slots that inherited from it; a
// nil source clears a styled slot back to the main fallback.
func (tb *TextBox) SetFont(style format.Style, src FontSource, size float64) error {
	style &= format.Bold | format.Italic
	if style == format.Plain {
		if src == nil {
			return ErrNoMainFont
		}
		if size <= 0 {
			if main := tb.slots[0]; main != nil {
				size = main.size
			} else {
				size = tb.opts.FontSize
			}
		}
		slot, err := newSlot(src, size, false)
		if err != nil {
			return err
		}
		tb.slots[0] = slot
		// re-derive styled slots that track the main size
		for st := format.Style(1); st <= format.Bold|format.Italic; st++ {
			s := tb.slots[st]
			if s == nil || !s.inherit || s.size == size {
				continue
			}
			resized, err := newSlot(s.src, size, true)
			if err != nil {
				return fmt.Errorf("textbox: resize %s slot: %w", st, err)
			}
			tb.slots[st] = resized
		}
		tb.invalidate()
		return nil
	}

	if src == nil {
		tb.slots[style] = nil
		tb.invalidate()
		return nil
	}
	inherit := size <= 0
	if inherit {
		size = tb.slots[0].size
	}
	slot, err := newSlot(src, size, inherit)
	if err != nil {
		return fmt.Errorf("textbox: %s slot: %w", style, err)
	}
	tb.slots[style] = slot
	tb.invalidate()
	return nil
}

func newSlot(src FontSource, size float64, inherit bool) (*fontSlot, error) {
	face, err := src.Face(size)
	if err != nil {
		return nil, err
	}
	return &fontSlot{src: src, size: size, face: face, inherit: inherit}, nil
}

func (tb *TextBox) invalidate() {
	tb.widths = make(map[widthKey]int)
}

// face resolves the slot for style, falling back to main.
func (tb *TextBox) face(style format.Style) Face {
	if s := tb.slots[style&(format.Bold|format.Italic)]; s != nil {
		return s.face
	}
	return tb.slots[0].face
}

func (tb *TextBox) wordWidth(w format.Word) int {
	key := widthKey{style: w.Style, text: w.Text}
	if px, ok := tb.widths[key]; ok {
		return px
	}
	px := tb.face(w.Style).TextWidth(w.Text)
	tb.widths[key] = px
	return px
}

// spaceWidth is the main font's space; justification gaps and word
// separators are measured with it.
func (tb *TextBox) spaceWidth() int {
	return tb.wordWidth(format.Word{Text: " "})
}

func (tb *TextBox) lineHeight() int { return tb.slots[0].face.LineHeight() }
func (tb *TextBox) ascent() int     { return tb.slots[0].face.Ascent() }

// Cursor returns the write position in writable-area pixels.
func (tb *TextBox) Cursor() (x, y int) { return tb.cursorX, tb.cursorY }

// LinesLeft returns how many full line slots remain below the cursor.
// A slot is the main line height plus the line spacing.
func (tb *TextBox) LinesLeft() int {
	step := tb.lineHeight() + tb.opts.LineSpacing
	if step <= 0 {
		return 0
	}
	left := (tb.height - tb.cursorY) / step
	if left < 0 {
		left = 0
	}
	return left
}

// OnLastLine reports whether exactly one line slot remains.
func (tb *TextBox) OnLastLine() bool { return tb.LinesLeft() == 1 }

// IsExhausted reports whether no line slot remains. It is recomputed
// from the cursor on every call; nothing is latched.
func (tb *TextBox) IsExhausted() bool { return tb.LinesLeft() == 0 }

// NextLineCursor moves the cursor to the start of the next line slot.
func (tb *TextBox) NextLineCursor() {
	tb.cursorX = tb.opts.NewLineIndent
	tb.cursorY += tb.lineHeight() + tb.opts.LineSpacing
	tb.midLine = false
}

// NewSameConfig returns a fresh box sharing this box's configuration
// and font slots, drawing into surface. Continuations produced by one
// box are accepted by the other.
func (tb *TextBox) NewSameConfig(surface Surface) (*TextBox, error) {
	opts := tb.opts
	opts.Surface = surface
	opts.Font = tb.slots[0].src
	opts.FontSize = tb.slots[0].size
	nb, err := New(opts)
	if err != nil {
		return nil, err
	}
	for st := format.Style(1); st <= format.Bold|format.Italic; st++ {
		s := tb.slots[st]
		if s == nil {
			continue
		}
		size := s.size
		if s.inherit {
			size = 0
		}
		if err := nb.SetFont(st, s.src, size); err != nil {
			return nil, err
		}
	}
	return nb, nil
}

// Render flattens the surface into an image. The surface must
// implement ImageSurface.
func (tb *TextBox) Render() (image.Image, error) {
	if is, ok := tb.surface.(ImageSurface); ok {
		return is.Flatten(), nil
	}
	return nil, ErrNoSurface
}

// drawRun pushes one draw call, translating writable-area coordinates
// to full-box pixels. y is the top of the line.
func (tb *TextBox) drawRun(x, y int, text string, style format.Style) {
	if tb.surface == nil || text == "" {
		return
	}
	tb.surface.DrawRun(
		tb.opts.Margins.Left+x,
		tb.opts.Margins.Top+y+tb.ascent(),
		text,
		tb.face(style),
	)
}
