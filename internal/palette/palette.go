package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines the brand colors used by both charts.
type Palette struct {
	Name        string
	Coral       string
	Celeste     string
	Lavanda     string
	GreyQR      string
	Background  string
	TextDark    string
	DarkTitle   string
	Arrow       string
	Note        string
	DarkCeleste string
	DarkLavanda string
	DarkGreyQR  string
	Fallback    string
}

// Available palettes
var (
	Paymee = Palette{
		Name:        "paymee",
		Coral:       "#FF6B81", // coral pink
		Celeste:     "#A5E4FF", // pastel sky
		Lavanda:     "#D9C6FF", // soft lavender
		GreyQR:      "#B0B0B0",
		Background:  "#F7F8FA", // smoke grey
		TextDark:    "#333333",
		DarkTitle:   "#2A2A2A",
		Arrow:       "#666666",
		Note:        "#666666",
		DarkCeleste: "#50B0D1",
		DarkLavanda: "#A080D0",
		DarkGreyQR:  "#858585",
		Fallback:    "#CCCCCC",
	}

	Mono = Palette{
		Name:        "mono",
		Coral:       "#5A5A5A",
		Celeste:     "#D0D0D0",
		Lavanda:     "#E4E4E4",
		GreyQR:      "#BDBDBD",
		Background:  "#FFFFFF",
		TextDark:    "#222222",
		DarkTitle:   "#111111",
		Arrow:       "#555555",
		Note:        "#555555",
		DarkCeleste: "#707070",
		DarkLavanda: "#8C8C8C",
		DarkGreyQR:  "#4A4A4A",
		Fallback:    "#CCCCCC",
	}

	Default = Paymee

	Palettes = []Palette{
		Paymee,
		Mono,
	}
)

// Get returns a palette by name, falling back to the default one.
func Get(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return Default
}

// Exists reports whether name is a built-in palette.
func Exists(name string) bool {
	for _, p := range Palettes {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Names returns list of available palette names
func Names() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// Role returns the hex value for a named role such as "coral" or "lavanda".
func (p Palette) Role(role string) (string, bool) {
	switch role {
	case "coral":
		return p.Coral, true
	case "celeste":
		return p.Celeste, true
	case "lavanda":
		return p.Lavanda, true
	case "grey_qr":
		return p.GreyQR, true
	case "background":
		return p.Background, true
	case "text":
		return p.TextDark, true
	case "title":
		return p.DarkTitle, true
	case "arrow":
		return p.Arrow, true
	case "note":
		return p.Note, true
	case "dark_celeste":
		return p.DarkCeleste, true
	case "dark_lavanda":
		return p.DarkLavanda, true
	case "dark_grey_qr":
		return p.DarkGreyQR, true
	}
	return "", false
}

// Parse converts a "#RRGGBB" string into an opaque color.
func Parse(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("palette: invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(hex string) color.Color {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced; alpha is clamped to [0, 1].
func WithAlpha(c color.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(alpha*255 + 0.5)
	return n
}
