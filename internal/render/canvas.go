package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/paymee-charts/internal/palette"
	"go.uber.org/zap"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	DefaultFormat = "png"
	DefaultDPI    = 100
)

// Formats lists the accepted output formats.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

type Options struct {
	Format  string
	DPI     int
	Scale   float64
	Font    font.Font
	Palette palette.Palette
	Logger  *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		Format:  DefaultFormat,
		DPI:     DefaultDPI,
		Scale:   1,
		Font:    DefaultFont,
		Palette: palette.Default,
		Logger:  zap.NewNop(),
	}
}

func (o Options) normalized() Options {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.Format = strings.ToLower(o.Format)
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Font.Typeface == "" {
		o.Font = DefaultFont
	}
	if o.Palette.Name == "" {
		o.Palette = palette.Default
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// FormatFromPath returns the lower-cased extension of path without the dot.
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func newCanvas(format string, w, h vg.Length, dpi int, bg color.Color) (vg.CanvasWriterTo, error) {
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: rasterCanvas(w, h, dpi, bg)}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: rasterCanvas(w, h, dpi, bg)}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: rasterCanvas(w, h, dpi, bg)}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	case "eps":
		return vgeps.New(w, h), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func rasterCanvas(w, h vg.Length, dpi int, bg color.Color) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(bg))
}

// fill paints the whole canvas; vector backends have no background of their own.
func fill(c *draw.Canvas, clr color.Color) {
	c.FillPolygon(clr, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	})
}

// ToFile creates path and hands the file to draw along with the format
// implied by its extension. A partially written file is removed on error.
func ToFile(path string, render func(w io.Writer, format string) error) (err error) {
	format := FormatFromPath(path)
	if format == "" {
		return fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return render(f, format)
}
