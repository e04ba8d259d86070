package preview

import (
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/paymee-charts/internal/benchmark"
)

var seriesColors = map[benchmark.Category]asciigraph.AnsiColor{
	benchmark.Credit: asciigraph.SkyBlue,
	benchmark.Debit:  asciigraph.Lavender,
	benchmark.QR:     asciigraph.Gray,
}

// Profile plots each category's rate across actors, in table order.
func Profile(t *benchmark.Table, width, height int) string {
	if len(t.Actors) < 2 {
		return "profile needs at least two actors\n"
	}

	series := make([][]float64, 0, len(benchmark.Categories))
	colors := make([]asciigraph.AnsiColor, 0, len(benchmark.Categories))
	legends := make([]string, 0, len(benchmark.Categories))
	for _, c := range benchmark.Categories {
		s := make([]float64, len(t.Actors))
		for i, a := range t.Actors {
			s[i] = a.Rates[c]
		}
		series = append(series, s)
		colors = append(colors, seriesColors[c])
		legends = append(legends, c.Title())
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(strings.Join(t.Names(), " → ")),
	)
	return graph + "\n"
}
