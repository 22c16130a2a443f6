package textbox

import "image"

// Face exposes the metrics of one font at a fixed size, in integer
// pixels. The engine hands the same value back to the Surface on draw
// calls, so backends can type-assert their own face implementation.
type Face interface {
	// TextWidth returns the advance width of s.
	TextWidth(s string) int
	// LineHeight returns the vertical distance between baselines.
	LineHeight() int
	// Ascent returns the distance from the line top to the baseline.
	Ascent() int
}

// FontSource produces faces at a given point size; typically it wraps
// a single font file.
type FontSource interface {
	Face(size float64) (Face, error)
}

// Identifier is optionally implemented by font sources that can name
// their metrics. Continuation checks compare the names when both
// sides provide one.
type Identifier interface {
	MetricsID() string
}

// Surface receives draw calls from the engine. Coordinates are
// full-box pixels with the origin at the top left; y is the baseline.
type Surface interface {
	DrawRun(x, y int, text string, f Face)
}

// ImageSurface is implemented by surfaces that can flatten their
// content into an image.
type ImageSurface interface {
	Surface
	Flatten() image.Image
}
