// Package raster draws text boxes into in-memory RGBA images, with
// metrics and glyphs supplied by golang.org/x/image font faces.
package raster

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/vellumtext/vellum/textbox"
)

var (
	_ textbox.FontSource = (*Font)(nil)
	_ textbox.Identifier = (*Font)(nil)
	_ textbox.Face       = (*Face)(nil)
)

// Font is a parsed OpenType font usable as a text box font source.
type Font struct {
	fnt  *opentype.Font
	name string
}

// LoadFont reads and parses an OpenType font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("raster: read font: %w", err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("raster: font %s: %w", path, err)
	}
	return f, nil
}

// ParseFont parses OpenType font data.
func ParseFont(data []byte) (*Font, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	f := &Font{fnt: fnt}
	if name, err := fnt.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		f.name = name
	} else {
		f.name = fmt.Sprintf("font-%dB", len(data))
	}
	return f, nil
}

// Face builds a face at the given point size, hinted at 72 DPI so one
// point maps to one pixel.
func (f *Font) Face(size float64) (textbox.Face, error) {
	face, err := opentype.NewFace(f.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: face %s at %g: %w", f.name, size, err)
	}
	return &Face{face: face}, nil
}

// MetricsID names the font for continuation fingerprints.
func (f *Font) MetricsID() string { return "raster:" + f.name }

// Face adapts a font.Face to the engine's integer pixel metrics.
type Face struct {
	face font.Face
}

func (f *Face) TextWidth(s string) int { return font.MeasureString(f.face, s).Ceil() }
func (f *Face) LineHeight() int        { return f.face.Metrics().Height.Ceil() }
func (f *Face) Ascent() int            { return f.face.Metrics().Ascent.Ceil() }

// Basic returns a font source over the fixed 7x13 bitmap face. It
// ignores the requested size; its metrics are the same everywhere,
// which makes it a convenient default and test font.
func Basic() textbox.FontSource { return basicFont{} }

type basicFont struct{}

func (basicFont) Face(float64) (textbox.Face, error) {
	return &Face{face: basicfont.Face7x13}, nil
}

func (basicFont) MetricsID() string { return "raster:basicfont-7x13" }
