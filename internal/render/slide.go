package render

import (
	"image/color"
	"io"
	"math"

	"github.com/san-kum/paymee-charts/internal/deck"
	"github.com/san-kum/paymee-charts/internal/palette"
	"go.uber.org/zap"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Slide geometry, in slide units (inches at scale 1).
const (
	slideWidth  = 16.0
	slideHeight = 9.0

	titleX        = 8.5
	titleY        = 7.8
	titleSize     = 40.0
	titleLeading  = 1.1
	titleMaxWidth = slideWidth - titleX - 0.3

	cardX      = 0.8
	cardY      = 1.0
	cardWidth  = 7.0
	cardHeight = 6.8
	cardRadius = 0.3

	textInset     = 0.6
	bodyIndent    = 0.2
	firstLineDrop = 0.7
	headingSize   = 16.0
	bodySize      = 13.0
	bodyLeading   = 1.3
	headingStep   = 0.4
	pointStep     = 1.3

	iconY         = 3.5
	iconStartX    = 9.0
	iconSpacing   = 3.2
	iconDiameter  = 0.84
	glyphLift     = 0.05
	captionDrop   = 1.0
	captionSize   = 14.0
	arrowGap      = 0.8
	arrowWidth    = 2.0
	arrowHeadLen  = 0.15
	arrowHeadSpan = math.Pi / 7
)

type blot struct {
	x, y, d float64
	role    string
	alpha   float64
}

var blots = []blot{
	{x: 15.5, y: 8.5, d: 2.5, role: "lavanda", alpha: 0.3},
	{x: 0.5, y: 0.5, d: 2.0, role: "coral", alpha: 0.2},
	{x: 1.5, y: 8.0, d: 1.0, role: "celeste", alpha: 0.2},
}

// slideCanvas maps slide units onto a draw.Canvas.
type slideCanvas struct {
	draw.Canvas
	unit  vg.Length
	scale float64
	opts  Options
}

func (s *slideCanvas) pt(x, y float64) vg.Point {
	return vg.Point{X: s.Min.X + vg.Length(x)*s.unit, Y: s.Min.Y + vg.Length(y)*s.unit}
}

func (s *slideCanvas) span(v float64) vg.Length {
	return vg.Length(v) * s.unit
}

func (s *slideCanvas) color(role string) color.Color {
	hex, ok := s.opts.Palette.Role(role)
	if !ok {
		hex = s.opts.Palette.Fallback
	}
	return palette.MustParse(hex)
}

// Slide draws the partnership slide.
func Slide(w io.Writer, sl *deck.Slide, opts Options) error {
	if sl == nil {
		return &RenderError{Chart: "slide", Err: ErrNilData}
	}
	opts = opts.normalized()
	if err := sl.Validate(); err != nil {
		return &RenderError{Chart: "slide", Err: err}
	}

	unit := vg.Inch * vg.Length(opts.Scale)
	bg := palette.MustParse(opts.Palette.Background)
	cw, err := newCanvas(opts.Format, slideWidth*unit, slideHeight*unit, opts.DPI, bg)
	if err != nil {
		return &RenderError{Chart: "slide", Err: err}
	}

	sc := &slideCanvas{Canvas: draw.New(cw), unit: unit, scale: opts.Scale, opts: opts}
	fill(&sc.Canvas, bg)
	sc.blots()
	sc.card(sl.Points)
	sc.flow(sl.Flow)
	sc.title(sl.Title)

	n, err := cw.WriteTo(w)
	if err != nil {
		return &RenderError{Chart: "slide", Err: err}
	}
	opts.Logger.Debug("slide rendered", zap.String("format", opts.Format), zap.Int64("bytes", n))
	return nil
}

func (s *slideCanvas) blots() {
	for _, b := range blots {
		s.SetColor(palette.WithAlpha(s.color(b.role), b.alpha))
		s.Fill(circle(s.pt(b.x, b.y), s.span(b.d/2)))
	}
}

func (s *slideCanvas) card(points []deck.Point) {
	s.SetColor(s.color("lavanda"))
	s.Fill(roundedRect(s.pt(cardX, cardY), s.span(cardWidth), s.span(cardHeight), s.span(cardRadius)))

	ink := s.color("text")
	heading := style(bold(s.opts.Font), headingSize, s.scale, ink, text.XLeft, text.YTop)
	body := style(s.opts.Font, bodySize, s.scale, ink, text.XLeft, text.YTop)

	x := cardX + textInset
	maxBody := s.span(cardX + cardWidth - textInset - x - bodyIndent)
	lineHeight := bodySize * bodyLeading / 72

	y := cardY + cardHeight - firstLineDrop
	for i, p := range points {
		if i > 0 {
			y -= pointStep
		}
		s.FillText(heading, s.pt(x, y), p.Heading)
		y -= headingStep
		for j, line := range wrap(body, p.Body, maxBody) {
			s.FillText(body, s.pt(x+bodyIndent, y-float64(j)*lineHeight), line)
		}
	}
}

func (s *slideCanvas) flow(nodes []deck.Node) {
	caption := style(bold(s.opts.Font), captionSize, s.scale, s.color("text"), text.XCenter, text.YCenter)
	arrow := draw.LineStyle{Color: s.color("arrow"), Width: vg.Points(arrowWidth * s.scale)}
	white := color.White

	for i, n := range nodes {
		x := iconStartX + float64(i)*iconSpacing

		s.SetColor(s.color(n.Color))
		s.Fill(circle(s.pt(x, iconY), s.span(iconDiameter/2)))

		glyphPts := iconDiameter * 72 * n.GlyphScale
		glyph := style(bold(s.opts.Font), glyphPts, s.scale, white, text.XCenter, text.YCenter)
		s.FillText(glyph, s.pt(x, iconY+iconDiameter*glyphLift), n.Glyph)

		s.FillText(caption, s.pt(x, iconY-captionDrop), n.Label)

		if i < len(nodes)-1 {
			s.arrow(arrow, x+arrowGap, x+iconSpacing-arrowGap, iconY)
		}
	}
}

func (s *slideCanvas) arrow(ls draw.LineStyle, x0, x1, y float64) {
	tip := s.pt(x1, y)
	head := s.span(arrowHeadLen)
	dx := vg.Length(math.Cos(arrowHeadSpan)) * head
	dy := vg.Length(math.Sin(arrowHeadSpan)) * head

	s.StrokeLines(ls,
		[]vg.Point{s.pt(x0, y), tip},
		[]vg.Point{{X: tip.X - dx, Y: tip.Y + dy}, tip, {X: tip.X - dx, Y: tip.Y - dy}},
	)
}

func (s *slideCanvas) title(t string) {
	sty := style(bold(s.opts.Font), titleSize, s.scale, s.color("title"), text.XLeft, text.YCenter)
	lines := wrap(sty, t, s.span(titleMaxWidth))
	if len(lines) == 0 {
		return
	}
	lead := titleSize * titleLeading / 72
	top := titleY + lead*float64(len(lines)-1)/2
	for i, line := range lines {
		s.FillText(sty, s.pt(titleX, top-float64(i)*lead), line)
	}
}

func circle(c vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: c.X + r, Y: c.Y})
	p.Arc(c, r, 0, 2*math.Pi)
	p.Close()
	return p
}

func roundedRect(origin vg.Point, w, h, r vg.Length) vg.Path {
	x, y := origin.X, origin.Y
	var p vg.Path
	p.Move(vg.Point{X: x + r, Y: y})
	p.Line(vg.Point{X: x + w - r, Y: y})
	p.Arc(vg.Point{X: x + w - r, Y: y + r}, r, -math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: x + w, Y: y + h - r})
	p.Arc(vg.Point{X: x + w - r, Y: y + h - r}, r, 0, math.Pi/2)
	p.Line(vg.Point{X: x + r, Y: y + h})
	p.Arc(vg.Point{X: x + r, Y: y + h - r}, r, math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: x, Y: y + r})
	p.Arc(vg.Point{X: x + r, Y: y + r}, r, math.Pi, math.Pi/2)
	p.Close()
	return p
}
