// Package pipeline loads chart content, renders it to the configured
// outputs and records what was written.
package pipeline

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/san-kum/paymee-charts/internal/benchmark"
	"github.com/san-kum/paymee-charts/internal/config"
	"github.com/san-kum/paymee-charts/internal/deck"
	"github.com/san-kum/paymee-charts/internal/palette"
	"github.com/san-kum/paymee-charts/internal/render"
	"github.com/san-kum/paymee-charts/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ChartSlide     = "slide"
	ChartBenchmark = "benchmark"
)

// Output is one written chart.
type Output struct {
	Chart string
	Path  string
}

type Pipeline struct {
	cfg  *config.Config
	opts render.Options
	log  *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		cfg: cfg,
		opts: render.Options{
			Format:  cfg.Format,
			DPI:     cfg.DPI,
			Scale:   cfg.Scale,
			Font:    render.LoadFont(cfg.Font, log),
			Palette: palette.Get(cfg.Palette),
			Logger:  log,
		},
		log: log,
	}
}

func (p *Pipeline) Config() *config.Config { return p.cfg }

func (p *Pipeline) Palette() palette.Palette { return p.opts.Palette }

// Table returns the configured fee table, or the built-in one.
func (p *Pipeline) Table() (*benchmark.Table, error) {
	if p.cfg.Benchmark.Data == "" {
		return benchmark.Default(), nil
	}
	return benchmark.Load(p.cfg.Benchmark.Data)
}

// Slide returns the configured slide content, or the built-in one.
func (p *Pipeline) Slide() (*deck.Slide, error) {
	if p.cfg.Slide.Data == "" {
		return deck.Default(), nil
	}
	return deck.Load(p.cfg.Slide.Data)
}

func (p *Pipeline) RenderSlide(ctx context.Context) (Output, error) {
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	s, err := p.Slide()
	if err != nil {
		return Output{}, &render.RenderError{Chart: ChartSlide, Path: p.cfg.Slide.Data, Err: err}
	}
	path := p.cfg.SlidePath()
	if err := render.ToFile(path, func(w io.Writer, format string) error {
		opts := p.opts
		opts.Format = format
		return render.Slide(w, s, opts)
	}); err != nil {
		return Output{}, renderFailed(ChartSlide, path, err)
	}
	p.log.Info("chart written", zap.String("chart", ChartSlide), zap.String("path", path))
	return Output{Chart: ChartSlide, Path: path}, nil
}

func (p *Pipeline) RenderBenchmark(ctx context.Context) (Output, error) {
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	t, err := p.Table()
	if err != nil {
		return Output{}, &render.RenderError{Chart: ChartBenchmark, Path: p.cfg.Benchmark.Data, Err: err}
	}
	path := p.cfg.BenchmarkPath()
	if err := render.ToFile(path, func(w io.Writer, format string) error {
		opts := p.opts
		opts.Format = format
		return render.Benchmark(w, t, opts)
	}); err != nil {
		return Output{}, renderFailed(ChartBenchmark, path, err)
	}
	p.log.Info("chart written", zap.String("chart", ChartBenchmark), zap.String("path", path))
	return Output{Chart: ChartBenchmark, Path: path}, nil
}

// renderFailed attaches path to the renderer's own error, or wraps err when
// the file could not be written.
func renderFailed(chart, path string, err error) error {
	var re *render.RenderError
	if errors.As(err, &re) {
		if re.Path == "" {
			re.Path = path
		}
		return re
	}
	return &render.RenderError{Chart: chart, Path: path, Err: err}
}

// RenderAll draws both charts concurrently and, when enabled, writes the
// manifest and the melted fee table. Outputs are sorted by chart name.
func (p *Pipeline) RenderAll(ctx context.Context) ([]Output, error) {
	outs := make([]Output, 2)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		o, err := p.RenderSlide(gctx)
		outs[0] = o
		return err
	})
	g.Go(func() error {
		o, err := p.RenderBenchmark(gctx)
		outs[1] = o
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(outs, func(i, j int) bool { return outs[i].Chart < outs[j].Chart })

	if p.cfg.Manifest {
		if err := p.Record(outs); err != nil {
			return outs, err
		}
	}
	return outs, nil
}

// Record writes the manifest for outs and the long-format fee table.
func (p *Pipeline) Record(outs []Output) error {
	st := storage.New(p.cfg.OutDir)
	m := storage.NewManifest(p.opts.Palette.Name, p.opts.Format, p.opts.DPI)
	for _, o := range outs {
		if _, err := st.Record(m, o.Chart, o.Path); err != nil {
			return err
		}
	}
	t, err := p.Table()
	if err != nil {
		return err
	}
	if _, err := st.SaveTable(t, p.opts.Palette); err != nil {
		return err
	}
	if err := st.Save(m); err != nil {
		return err
	}
	p.log.Debug("manifest written", zap.String("id", m.ID), zap.Int("files", len(m.Files)))
	return nil
}
