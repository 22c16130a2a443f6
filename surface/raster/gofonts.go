package raster

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// The Go font family ships inside x/image, so a box can be styled
// without any font files on disk.

func Regular() (*Font, error)    { return ParseFont(goregular.TTF) }
func Bold() (*Font, error)       { return ParseFont(gobold.TTF) }
func Italic() (*Font, error)     { return ParseFont(goitalic.TTF) }
func BoldItalic() (*Font, error) { return ParseFont(gobolditalic.TTF) }
