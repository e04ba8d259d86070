package render_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/san-kum/paymee-charts/internal/benchmark"
	"github.com/san-kum/paymee-charts/internal/deck"
	"github.com/san-kum/paymee-charts/internal/palette"
	"github.com/san-kum/paymee-charts/internal/render"
)

func decode(buf *bytes.Buffer) image.Image {
	img, err := png.Decode(buf)
	Expect(err).NotTo(HaveOccurred())
	return img
}

func nrgba(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func hex(s string) color.NRGBA {
	return palette.MustParse(s).(color.NRGBA)
}

func contains(img image.Image, want color.NRGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if nrgba(img, x, y) == want {
				return true
			}
		}
	}
	return false
}

var _ = Describe("Benchmark", func() {
	var (
		buf  *bytes.Buffer
		opts render.Options
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		opts = render.DefaultOptions()
	})

	It("renders a 12x8 inch PNG at the configured DPI", func() {
		Expect(render.Benchmark(buf, benchmark.Default(), opts)).To(Succeed())

		img := decode(buf)
		Expect(img.Bounds().Dx()).To(Equal(1200))
		Expect(img.Bounds().Dy()).To(Equal(800))
	})

	It("paints the smoke background and both bar shades", func() {
		Expect(render.Benchmark(buf, benchmark.Default(), opts)).To(Succeed())
		img := decode(buf)

		p := palette.Paymee
		Expect(nrgba(img, 0, 0)).To(Equal(hex(p.Background)))
		Expect(nrgba(img, img.Bounds().Dx()-1, img.Bounds().Dy()-1)).To(Equal(hex(p.Background)))
		for _, c := range []string{p.Celeste, p.Lavanda, p.GreyQR, p.DarkCeleste, p.DarkLavanda, p.DarkGreyQR} {
			Expect(contains(img, hex(c))).To(BeTrue(), "missing bar color %s", c)
		}
	})

	It("scales the canvas", func() {
		opts.Scale = 0.5
		opts.DPI = 72
		Expect(render.Benchmark(buf, benchmark.Default(), opts)).To(Succeed())

		img := decode(buf)
		Expect(img.Bounds().Dx()).To(Equal(432))
		Expect(img.Bounds().Dy()).To(Equal(288))
	})

	It("rejects unknown formats", func() {
		opts.Format = "bmp"
		err := render.Benchmark(buf, benchmark.Default(), opts)
		Expect(err).To(MatchError(render.ErrUnknownFormat))

		var re *render.RenderError
		Expect(errors.As(err, &re)).To(BeTrue())
		Expect(re.Chart).To(Equal("benchmark"))
	})

	It("rejects invalid tables", func() {
		t := benchmark.Default()
		t.Actors[0].Rates[benchmark.Credit] = -1
		Expect(render.Benchmark(buf, t, opts)).To(MatchError(benchmark.ErrInvalidRate))
		Expect(render.Benchmark(buf, nil, opts)).To(MatchError(render.ErrNilData))
	})

	Describe("BenchmarkPlot", func() {
		It("reserves headroom for labels and one row per actor", func() {
			p := render.BenchmarkPlot(benchmark.Default(), opts)
			Expect(p.X.Min).To(Equal(0.0))
			Expect(p.X.Max).To(BeNumerically("~", 6.29*1.25, 1e-9))
			Expect(p.Y.Min).To(Equal(-0.5))
			Expect(p.Y.Max).To(Equal(3.5))
			Expect(p.Title.Text).To(Equal("Benchmark de comisiones – Argentina 2025"))
		})
	})
})

var _ = Describe("Slide", func() {
	var (
		buf  *bytes.Buffer
		opts render.Options
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		opts = render.DefaultOptions()
	})

	It("renders a 16:9 PNG", func() {
		Expect(render.Slide(buf, deck.Default(), opts)).To(Succeed())

		img := decode(buf)
		Expect(img.Bounds().Dx()).To(Equal(1600))
		Expect(img.Bounds().Dy()).To(Equal(900))
	})

	It("places the card, icons and background", func() {
		Expect(render.Slide(buf, deck.Default(), opts)).To(Succeed())
		img := decode(buf)
		p := palette.Paymee

		// Bottom-right corner is clear of decorations.
		Expect(nrgba(img, 1599, 899)).To(Equal(hex(p.Background)))
		// Lower part of the card at (7.0in, 1.5in) holds no text.
		Expect(nrgba(img, 700, 900-150)).To(Equal(hex(p.Lavanda)))
		// Left of the glyph inside the first icon centred at (9.0in, 3.5in).
		Expect(nrgba(img, 870, 900-350)).To(Equal(hex(p.Coral)))
		// Second icon at 12.2in.
		Expect(nrgba(img, 1190, 900-350)).To(Equal(hex(p.Celeste)))
	})

	It("blends the decorative circles with the background", func() {
		Expect(render.Slide(buf, deck.Default(), opts)).To(Succeed())
		img := decode(buf)

		// Centre of the lavender blot at (15.5in, 8.5in).
		c := nrgba(img, 1550, 50)
		Expect(c).NotTo(Equal(hex(palette.Paymee.Background)))
		Expect(c).NotTo(Equal(hex(palette.Paymee.Lavanda)))
	})

	It("uses the selected palette", func() {
		opts.Palette = palette.Mono
		Expect(render.Slide(buf, deck.Default(), opts)).To(Succeed())
		Expect(nrgba(decode(buf), 1599, 899)).To(Equal(hex(palette.Mono.Background)))
	})

	It("rejects content that does not fit the slide", func() {
		sl := deck.Default()
		for len(sl.Flow) <= deck.MaxFlowNodes {
			sl.Flow = append(sl.Flow, sl.Flow[0])
		}
		Expect(render.Slide(buf, sl, opts)).To(MatchError(deck.ErrTooManyNodes))
		Expect(buf.Len()).To(BeZero())

		sl = deck.Default()
		sl.Title = ""
		Expect(render.Slide(buf, sl, opts)).To(MatchError(deck.ErrEmptyTitle))
	})

	It("fails on nil content and unknown formats", func() {
		Expect(render.Slide(buf, nil, opts)).To(MatchError(render.ErrNilData))
		opts.Format = "gif"
		Expect(render.Slide(buf, deck.Default(), opts)).To(MatchError(render.ErrUnknownFormat))
	})
})

var _ = Describe("Formats", func() {
	DescribeTable("every chart in every format",
		func(format, magic string) {
			opts := render.DefaultOptions()
			opts.Format = format
			opts.DPI = 40

			var slide, bench bytes.Buffer
			Expect(render.Slide(&slide, deck.Default(), opts)).To(Succeed())
			Expect(render.Benchmark(&bench, benchmark.Default(), opts)).To(Succeed())
			Expect(slide.String()).To(ContainSubstring(magic))
			Expect(bench.String()).To(ContainSubstring(magic))
		},
		Entry("png", "png", "\x89PNG"),
		Entry("jpg", "jpg", "\xff\xd8\xff"),
		Entry("jpeg", "jpeg", "\xff\xd8\xff"),
		Entry("tiff", "tiff", "II*\x00"),
		Entry("tif", "tif", "II*\x00"),
		Entry("svg", "svg", "<svg"),
		Entry("pdf with bold text", "pdf", "%PDF"),
		Entry("eps", "eps", "%!PS-Adobe"),
	)

	It("lists only formats the renderers accept", func() {
		for _, f := range render.Formats {
			opts := render.DefaultOptions()
			opts.Format = f
			opts.DPI = 20
			Expect(render.Benchmark(&bytes.Buffer{}, benchmark.Default(), opts)).To(Succeed(), f)
		}
	})
})

var _ = Describe("LoadFont", func() {
	It("returns the default font for an empty path", func() {
		Expect(render.LoadFont("", nil)).To(Equal(render.DefaultFont))
	})

	It("falls back when the file is missing", func() {
		Expect(render.LoadFont(filepath.Join(GinkgoT().TempDir(), "arialbd.ttf"), nil)).To(Equal(render.DefaultFont))
	})

	It("falls back when the file is not a font", func() {
		path := filepath.Join(GinkgoT().TempDir(), "junk.ttf")
		Expect(os.WriteFile(path, []byte("not a font"), 0644)).To(Succeed())
		Expect(render.LoadFont(path, nil)).To(Equal(render.DefaultFont))
	})

	It("registers a valid font and renders with it", func() {
		path := filepath.Join(GinkgoT().TempDir(), "goregular.ttf")
		Expect(os.WriteFile(path, goregular.TTF, 0644)).To(Succeed())

		fnt := render.LoadFont(path, nil)
		Expect(string(fnt.Typeface)).To(Equal("goregular"))

		opts := render.DefaultOptions()
		opts.Font = fnt
		Expect(render.Benchmark(&bytes.Buffer{}, benchmark.Default(), opts)).To(Succeed())

		opts.Format = "pdf"
		Expect(render.Slide(&bytes.Buffer{}, deck.Default(), opts)).To(Succeed())
	})
})

var _ = Describe("ToFile", func() {
	It("picks the format from the extension", func() {
		path := filepath.Join(GinkgoT().TempDir(), "nested", "chart.svg")
		err := render.ToFile(path, func(w io.Writer, format string) error {
			Expect(format).To(Equal("svg"))
			return render.Benchmark(w, benchmark.Default(), render.Options{Format: format})
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(BeAnExistingFile())
	})

	It("removes the file when rendering fails", func() {
		path := filepath.Join(GinkgoT().TempDir(), "chart.png")
		boom := errors.New("boom")
		err := render.ToFile(path, func(io.Writer, string) error { return boom })
		Expect(err).To(MatchError(boom))
		Expect(path).NotTo(BeAnExistingFile())
	})

	It("requires an extension", func() {
		err := render.ToFile(filepath.Join(GinkgoT().TempDir(), "chart"), func(io.Writer, string) error { return nil })
		Expect(err).To(MatchError(render.ErrUnknownFormat))
	})
})
