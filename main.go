package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vellumtext/vellum/format"
	canvassurface "github.com/vellumtext/vellum/surface/canvas"
	"github.com/vellumtext/vellum/surface/raster"
	"github.com/vellumtext/vellum/textbox"
)

func main() {
	input := flag.String("in", "", "text file to lay out (default: stdin)")
	output := flag.String("out", "output/box.png", "output path (.png or .pdf)")
	width := flag.Int("width", 400, "box width in pixels")
	height := flag.Int("height", 600, "box height in pixels")
	size := flag.Float64("size", 12, "font size in points")
	margin := flag.Int("margin", 20, "margin on all four sides in pixels")
	indent := flag.Int("indent", 16, "paragraph first-line indent in pixels")
	justify := flag.Bool("justify", false, "justify wrapped lines")
	markers := flag.Bool("markers", true, "interpret inline <b>/<i> markers")
	flag.Parse()

	if err := run(*input, *output, boxConfig{
		width: *width, height: *height,
		size: *size, margin: *margin, indent: *indent,
		justify: *justify, markers: *markers,
	}); err != nil {
		log.Fatalf("layout failed: %v", err)
	}
	fmt.Printf("wrote %s\n", *output)
}

type boxConfig struct {
	width, height int
	size          float64
	margin        int
	indent        int
	justify       bool
	markers       bool
}

// run reads the input text and lays it out into the backend selected
// by the output extension.
func run(inputPath, outputPath string, cfg boxConfig) error {
	text, err := readInput(inputPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	switch filepath.Ext(outputPath) {
	case ".pdf":
		return writePDF(text, outputPath, cfg)
	default:
		return writePNG(text, outputPath, cfg)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func (c boxConfig) options(main textbox.FontSource, surf textbox.Surface) textbox.Options {
	return textbox.Options{
		Width: c.width, Height: c.height,
		Font: main, FontSize: c.size,
		ParagraphIndent: c.indent,
		Margins: textbox.Margins{
			Left: c.margin, Top: c.margin, Right: c.margin, Bottom: c.margin,
		},
		Surface: surf,
	}
}

func (c boxConfig) writeOptions() textbox.WriteOptions {
	return textbox.WriteOptions{Justify: c.justify, Formatting: c.markers}
}

func fillBox(tb *textbox.TextBox, text string, opts textbox.WriteOptions) error {
	left, err := tb.WriteParagraph(text, opts)
	if err != nil {
		return err
	}
	if !left.Empty() {
		fmt.Fprintf(os.Stderr, "warning: box full, %d line(s) dropped\n", left.Len())
	}
	return nil
}

func writePNG(text, outputPath string, cfg boxConfig) error {
	main, err := raster.Regular()
	if err != nil {
		return err
	}
	surf := raster.NewSurface(cfg.width, cfg.height, color.White, color.Black)
	tb, err := textbox.New(cfg.options(main, surf))
	if err != nil {
		return err
	}
	styled := []struct {
		style format.Style
		load  func() (*raster.Font, error)
	}{
		{format.Bold, raster.Bold},
		{format.Italic, raster.Italic},
		{format.Bold | format.Italic, raster.BoldItalic},
	}
	for _, s := range styled {
		fnt, err := s.load()
		if err != nil {
			return err
		}
		if err := tb.SetFont(s.style, fnt, 0); err != nil {
			return err
		}
	}

	if err := fillBox(tb, text, cfg.writeOptions()); err != nil {
		return err
	}
	img, err := tb.Render()
	if err != nil {
		return err
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func writePDF(text, outputPath string, cfg boxConfig) error {
	surf := canvassurface.NewSurface(cfg.width, cfg.height)
	main, err := canvassurface.ParseFont("go-regular", goregular.TTF)
	if err != nil {
		return err
	}
	tb, err := textbox.New(cfg.options(main, surf))
	if err != nil {
		return err
	}
	styled := []struct {
		style format.Style
		name  string
		data  []byte
	}{
		{format.Bold, "go-bold", gobold.TTF},
		{format.Italic, "go-italic", goitalic.TTF},
		{format.Bold | format.Italic, "go-bolditalic", gobolditalic.TTF},
	}
	for _, s := range styled {
		fnt, err := canvassurface.ParseFont(s.name, s.data)
		if err != nil {
			return err
		}
		if err := tb.SetFont(s.style, fnt, 0); err != nil {
			return err
		}
	}

	if err := fillBox(tb, text, cfg.writeOptions()); err != nil {
		return err
	}
	data, err := surf.PDF()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
