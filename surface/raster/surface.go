package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/vellumtext/vellum/textbox"
)

var _ textbox.ImageSurface = (*Surface)(nil)

// Surface is an RGBA draw target with a uniform background and text
// color.
type Surface struct {
	img *image.RGBA
	src *image.Uniform
}

// NewSurface allocates a w by h pixel surface filled with bg; text
// draws in fg.
func NewSurface(w, h int, bg, fg color.Color) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Surface{img: img, src: image.NewUniform(fg)}
}

// DrawRun renders text with x at its left edge and y on its baseline.
// Faces from other backends are ignored.
func (s *Surface) DrawRun(x, y int, text string, f textbox.Face) {
	rf, ok := f.(*Face)
	if !ok {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  s.src,
		Face: rf.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Flatten returns a copy of the rendered image.
func (s *Surface) Flatten() image.Image {
	out := image.NewRGBA(s.img.Bounds())
	draw.Draw(out, out.Bounds(), s.img, image.Point{}, draw.Src)
	return out
}
