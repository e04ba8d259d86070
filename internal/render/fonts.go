package render

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// DefaultFont is the embedded Liberation Sans face.
var DefaultFont = font.Font{Typeface: "Liberation", Variant: "Sans"}

// boldSuffix names the typeface holding the bold faces of another one. The
// PDF backend looks bold weights up under a style it never registers, so
// bold text is drawn from a regular-weight face of its own typeface.
const boldSuffix = "Bold"

func init() {
	font.DefaultCache.Add(boldFaces(liberation.Collection()))
}

// boldFaces re-registers the bold faces of coll at normal weight under the
// bold typeface.
func boldFaces(coll font.Collection) font.Collection {
	var out font.Collection
	for _, f := range coll {
		if f.Font.Weight != xfont.WeightBold {
			continue
		}
		fnt := f.Font
		fnt.Typeface += boldSuffix
		fnt.Weight = xfont.WeightNormal
		out = append(out, font.Face{Font: fnt, Face: f.Face})
	}
	return out
}

// LoadFont registers the font file at path in gonum's font cache and returns
// its descriptor. An empty path selects DefaultFont silently; any other
// failure logs a warning and falls back to DefaultFont.
func LoadFont(path string, log *zap.Logger) font.Font {
	if path == "" {
		return DefaultFont
	}
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("font unavailable, using default", zap.String("path", path), zap.Error(err))
		return DefaultFont
	}
	face, err := opentype.Parse(data)
	if err != nil {
		log.Warn("font unreadable, using default", zap.String("path", path), zap.Error(err))
		return DefaultFont
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	fnt := font.Font{Typeface: font.Typeface(name)}
	font.DefaultCache.Add(font.Collection{
		{Font: fnt, Face: face},
		{Font: bold(fnt), Face: face},
	})
	log.Debug("font loaded", zap.String("path", path), zap.String("typeface", name))
	return fnt
}

func bold(f font.Font) font.Font {
	f.Typeface += boldSuffix
	return f
}

// style builds a text style; size is in points before scaling.
func style(f font.Font, size, scale float64, clr color.Color, xa text.XAlignment, ya text.YAlignment) text.Style {
	return text.Style{
		Color:   clr,
		Font:    font.From(f, vg.Points(size*scale)),
		XAlign:  xa,
		YAlign:  ya,
		Handler: plot.DefaultTextHandler,
	}
}
