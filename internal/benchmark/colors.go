package benchmark

import (
	"image/color"

	"github.com/san-kum/paymee-charts/internal/palette"
)

// ColorFor picks the bar color for a category. Highlighted actors get the
// darker shade of the same hue.
func ColorFor(p palette.Palette, highlight bool, c Category) color.Color {
	return palette.MustParse(colorHex(p, highlight, c))
}

func colorHex(p palette.Palette, highlight bool, c Category) string {
	if highlight {
		switch c {
		case Credit:
			return p.DarkCeleste
		case Debit:
			return p.DarkLavanda
		case QR:
			return p.DarkGreyQR
		}
		return p.Fallback
	}
	switch c {
	case Credit:
		return p.Celeste
	case Debit:
		return p.Lavanda
	case QR:
		return p.GreyQR
	}
	return p.Fallback
}

// LegendEntry is one swatch of the chart legend.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Legend returns competitor/highlight pairs per category, in category order.
func Legend(p palette.Palette, highlightName string) []LegendEntry {
	entries := make([]LegendEntry, 0, 2*len(Categories))
	for _, c := range Categories {
		entries = append(entries,
			LegendEntry{Label: c.Short() + " (Competidores)", Color: ColorFor(p, false, c)},
			LegendEntry{Label: c.Short() + " (" + highlightName + ")", Color: ColorFor(p, true, c)},
		)
	}
	return entries
}
