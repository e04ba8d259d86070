package render

import (
	"image/color"
	"io"

	"github.com/san-kum/paymee-charts/internal/benchmark"
	"github.com/san-kum/paymee-charts/internal/palette"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	chartWidth  = 12.0
	chartHeight = 8.0

	barWidth    = 0.25
	barFill     = 0.9
	labelGap    = 0.05
	xHeadroom   = 1.25
	noteBand    = 0.05
	noteLift    = 0.01
	chartTitle  = 14.0
	titlePad    = 20.0
	tickSize    = 12.0
	labelSize   = 10.0
	legendSize  = 10.0
	noteSize    = 12.0
	legendThumb = 14.0
	legendCols  = 2
	legendPad   = 0.5 // em, from the axes corner
	legendRow   = 0.5 // em, between entries
	legendGap   = 2.0 // em, between columns
)

// feeBars draws one bar per observation, grouped by actor row, and its label.
type feeBars struct {
	rows  []benchmark.Observation
	table *benchmark.Table
	n     int
	label text.Style
}

func (b *feeBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	half := barWidth * barFill / 2

	for _, r := range b.rows {
		y := float64(r.Index) + r.Category.Offset(barWidth)
		x0, x1 := trX(0), trX(r.Rate)
		y0, y1 := trY(y-half), trY(y+half)
		c.FillPolygon(r.Color, []vg.Point{
			{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
		})
		c.FillText(b.label, vg.Point{X: trX(r.Rate + labelGap), Y: trY(y)}, b.table.Label(r.Actor, r.Category, r.Rate))
	}
}

func (b *feeBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	for _, r := range b.rows {
		if r.Rate > xmax {
			xmax = r.Rate
		}
	}
	return 0, xmax, -0.5, float64(b.n) - 0.5
}

// swatch is a filled legend thumbnail.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(s.color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y}, {X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y}, {X: c.Min.X, Y: c.Max.Y},
	})
}

// legendColumns fills its columns top to bottom, one after the other, and
// anchors them in the top right corner of the data area.
type legendColumns struct {
	cols  []plot.Legend
	style text.Style
	inset vg.Length
	gap   vg.Length
}

func newLegendColumns(entries []benchmark.LegendEntry, ncol int, sty text.Style, thumb, row, inset, gap vg.Length) *legendColumns {
	lc := &legendColumns{style: sty, inset: inset, gap: gap}
	if len(entries) == 0 || ncol < 1 {
		return lc
	}
	rows := (len(entries) + ncol - 1) / ncol
	for start := 0; start < len(entries); start += rows {
		l := plot.NewLegend()
		l.TextStyle = sty
		l.Left = true
		l.Top = true
		l.ThumbnailWidth = thumb
		l.Padding = row
		for _, e := range entries[start:min(start+rows, len(entries))] {
			l.Add(e.Label, swatch{color: e.Color})
		}
		lc.cols = append(lc.cols, l)
	}
	return lc
}

// layout returns the box of each column inside c.
func (lc *legendColumns) layout(c draw.Canvas) []vg.Rectangle {
	rects := make([]vg.Rectangle, len(lc.cols))
	var total vg.Length
	for i := range lc.cols {
		r := lc.cols[i].Rectangle(c)
		rects[i] = vg.Rectangle{Max: vg.Point{X: r.Max.X - r.Min.X, Y: r.Max.Y - r.Min.Y}}
		total += rects[i].Max.X
	}
	if len(rects) > 1 {
		total += lc.gap * vg.Length(len(rects)-1)
	}

	x := c.Max.X - lc.inset - total
	top := c.Max.Y - lc.inset
	for i, r := range rects {
		rects[i] = vg.Rectangle{
			Min: vg.Point{X: x, Y: top - r.Max.Y},
			Max: vg.Point{X: x + r.Max.X, Y: top},
		}
		x += r.Max.X + lc.gap
	}
	return rects
}

func (lc *legendColumns) Plot(c draw.Canvas, _ *plot.Plot) {
	for i, r := range lc.layout(c) {
		lc.cols[i].Draw(draw.Canvas{Canvas: c.Canvas, Rectangle: r})
	}
}

// BenchmarkPlot builds the fee comparison plot without drawing it.
func BenchmarkPlot(t *benchmark.Table, opts Options) *plot.Plot {
	opts = opts.normalized()
	pal := opts.Palette
	ink := palette.MustParse(pal.TextDark)
	bg := palette.MustParse(pal.Background)
	s := opts.Scale

	p := plot.New()
	p.BackgroundColor = bg

	p.Title.Text = t.Title
	p.Title.TextStyle = style(bold(opts.Font), chartTitle, s, ink, text.XCenter, text.YTop)
	p.Title.Padding = vg.Points(titlePad * s)

	bars := &feeBars{
		rows:  t.Melt(pal),
		table: t,
		n:     len(t.Actors),
		label: style(opts.Font, labelSize, s, ink, text.XLeft, text.YCenter),
	}
	p.Add(bars)

	p.HideX()
	p.X.Min = 0
	p.X.Max = t.MaxRate(benchmark.Credit) * xHeadroom

	p.Y.Tick.Label = style(opts.Font, tickSize, s, ink, text.XRight, text.YCenter)
	p.NominalY(t.Names()...)
	p.Y.LineStyle.Width = 0
	p.Y.Tick.LineStyle.Width = 0
	p.Y.Tick.Length = 0
	p.Y.Min = -0.5
	p.Y.Max = float64(len(t.Actors)) - 0.5

	p.Add(benchmarkLegend(t, opts))
	return p
}

func benchmarkLegend(t *benchmark.Table, opts Options) *legendColumns {
	s := opts.Scale
	name := "Paymee"
	if hl, ok := t.Highlighted(); ok {
		name = hl.Name
	}
	// The legend measures entries by their bottom-aligned extent.
	sty := style(opts.Font, legendSize, s, palette.MustParse(opts.Palette.TextDark), text.XLeft, text.YBottom)
	em := vg.Points(legendSize * s)
	return newLegendColumns(benchmark.Legend(opts.Palette, name), legendCols, sty,
		vg.Points(legendThumb*s), legendRow*em, legendPad*em, legendGap*em)
}

// Benchmark draws the competitor fee comparison with the footnote below it.
func Benchmark(w io.Writer, t *benchmark.Table, opts Options) error {
	if t == nil {
		return &RenderError{Chart: "benchmark", Err: ErrNilData}
	}
	opts = opts.normalized()
	if err := t.Validate(); err != nil {
		return &RenderError{Chart: "benchmark", Err: err}
	}

	unit := vg.Inch * vg.Length(opts.Scale)
	width, height := chartWidth*unit, chartHeight*unit
	bg := palette.MustParse(opts.Palette.Background)
	cw, err := newCanvas(opts.Format, width, height, opts.DPI, bg)
	if err != nil {
		return &RenderError{Chart: "benchmark", Err: err}
	}

	dc := draw.New(cw)
	fill(&dc, bg)
	BenchmarkPlot(t, opts).Draw(draw.Crop(dc, 0, 0, height*noteBand, 0))

	if t.Note != "" {
		note := style(opts.Font, noteSize, opts.Scale, palette.MustParse(opts.Palette.Note), text.XCenter, text.YBottom)
		dc.FillText(note, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Min.Y + height*noteLift}, t.Note)
	}

	n, err := cw.WriteTo(w)
	if err != nil {
		return &RenderError{Chart: "benchmark", Err: err}
	}
	opts.Logger.Debug("benchmark rendered",
		zap.String("format", opts.Format),
		zap.Int("actors", len(t.Actors)),
		zap.Int64("bytes", n))
	return nil
}
