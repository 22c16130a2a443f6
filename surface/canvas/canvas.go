// Package canvassurface draws text boxes through tdewolff/canvas:
// vector text placement with PDF and rasterized image output. One
// canvas unit maps to one pixel.
package canvassurface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/vellumtext/vellum/textbox"
)

var (
	_ textbox.FontSource   = (*Font)(nil)
	_ textbox.Identifier   = (*Font)(nil)
	_ textbox.Face         = (*Face)(nil)
	_ textbox.ImageSurface = (*Surface)(nil)
)

// Font wraps a single-face canvas font family as a text box font
// source.
type Font struct {
	family *canvas.FontFamily
	col    color.Color
	name   string
}

// LoadFont loads a font file into a fresh family.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("canvassurface: read font: %w", err)
	}
	return ParseFont(filepath.Base(path), data)
}

// ParseFont loads font data into a fresh family named name.
func ParseFont(name string, data []byte) (*Font, error) {
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("canvassurface: load font %s: %w", name, err)
	}
	return &Font{family: family, col: canvas.Black, name: name}, nil
}

// SetColor sets the fill color used by faces created afterwards.
func (f *Font) SetColor(c color.Color) { f.col = c }

// Face builds a face at the given point size.
func (f *Font) Face(size float64) (textbox.Face, error) {
	ff := f.family.Face(size, f.col, canvas.FontRegular, canvas.FontNormal)
	return &Face{ff: ff}, nil
}

// MetricsID names the font for continuation fingerprints.
func (f *Font) MetricsID() string { return "canvas:" + f.name }

// Face adapts canvas font metrics to integer pixels.
type Face struct {
	ff *canvas.FontFace
}

func (f *Face) TextWidth(s string) int {
	return int(math.Ceil(f.ff.TextWidth(s)))
}

func (f *Face) LineHeight() int {
	return int(math.Ceil(f.ff.Metrics().LineHeight))
}

func (f *Face) Ascent() int {
	return int(math.Ceil(f.ff.Metrics().Ascent))
}

// Surface draws onto a canvas context with the origin at the top
// left.
type Surface struct {
	c   *canvas.Canvas
	ctx *canvas.Context
}

// NewSurface creates a w by h pixel drawing surface.
func NewSurface(w, h int) *Surface {
	c := canvas.New(float64(w), float64(h))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	return &Surface{c: c, ctx: ctx}
}

// DrawRun renders text with x at its left edge and y on its baseline.
// Faces from other backends are ignored.
func (s *Surface) DrawRun(x, y int, text string, f textbox.Face) {
	cf, ok := f.(*Face)
	if !ok {
		return
	}
	s.ctx.DrawText(float64(x), float64(y), canvas.NewTextLine(cf.ff, text, canvas.Left))
}

// Flatten rasterizes the canvas at one pixel per unit.
func (s *Surface) Flatten() image.Image {
	return rasterizer.Draw(s.c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
}

// PDF writes the surface as a single-page PDF.
func (s *Surface) PDF() ([]byte, error) {
	var buf bytes.Buffer
	writer := pdf.New(&buf, s.c.W, s.c.H, nil)
	s.c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("canvassurface: close pdf: %w", err)
	}
	return buf.Bytes(), nil
}
