package render

import (
	"testing"

	"github.com/san-kum/paymee-charts/internal/benchmark"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestBenchmarkLegend_EntriesDoNotOverlap(t *testing.T) {
	lc := benchmarkLegend(benchmark.Default(), DefaultOptions())
	if len(lc.cols) != legendCols {
		t.Fatalf("expected %d columns, got %d", legendCols, len(lc.cols))
	}

	var tallest vg.Length
	for _, e := range benchmark.Legend(DefaultOptions().Palette, "Paymee") {
		step := lc.style.Rectangle(e.Label).Max.Y
		h := lc.style.Height(e.Label)
		if step < h {
			t.Errorf("entry %q advances %.2fpt but is %.2fpt tall", e.Label, step, h)
		}
		if h > tallest {
			tallest = h
		}
	}

	c := draw.New(vgimg.New(12*vg.Inch, 8*vg.Inch))
	rects := lc.layout(c)
	rows := 3
	for i, r := range rects {
		if r.Max.Y-r.Min.Y < vg.Length(rows)*tallest {
			t.Errorf("column %d is %.2fpt tall, want at least %.2fpt", i, r.Max.Y-r.Min.Y, vg.Length(rows)*tallest)
		}
		if r.Min.X < c.Min.X || r.Max.X > c.Max.X || r.Max.Y > c.Max.Y {
			t.Errorf("column %d %v outside canvas", i, r)
		}
		if i > 0 && r.Min.X < rects[i-1].Max.X {
			t.Errorf("column %d starts at %.2f before column %d ends at %.2f", i, r.Min.X, i-1, rects[i-1].Max.X)
		}
	}
	if last := rects[len(rects)-1]; last.Max.X != c.Max.X-lc.inset {
		t.Errorf("legend should end %.2fpt from the right edge, ends at %.2f", lc.inset, last.Max.X)
	}
}

func TestNewLegendColumns_FillsColumnsInOrder(t *testing.T) {
	entries := benchmark.Legend(DefaultOptions().Palette, "Paymee")
	sty := style(DefaultFont, legendSize, 1, nil, 0, 0)

	for _, tt := range []struct {
		ncol int
		want int
	}{
		{1, 1},
		{2, 2},
		{4, 3},
		{0, 0},
	} {
		lc := newLegendColumns(entries, tt.ncol, sty, 10, 2, 5, 20)
		if len(lc.cols) != tt.want {
			t.Errorf("ncol=%d: got %d columns, want %d", tt.ncol, len(lc.cols), tt.want)
		}
	}
}

func TestBold_RegistersRegularWeightFace(t *testing.T) {
	b := bold(DefaultFont)
	if b.Weight != xfont.WeightNormal {
		t.Errorf("bold face should keep normal weight, got %v", b.Weight)
	}
	if !font.DefaultCache.Has(b) {
		t.Errorf("bold face %q not registered", b.Name())
	}
	if b.Name() == DefaultFont.Name() {
		t.Errorf("bold face shares its name with the regular face")
	}
}
