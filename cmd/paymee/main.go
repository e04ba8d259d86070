package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/paymee-charts/internal/config"
	"github.com/san-kum/paymee-charts/internal/palette"
	"github.com/san-kum/paymee-charts/internal/pipeline"
	"github.com/san-kum/paymee-charts/internal/preview"
	"github.com/san-kum/paymee-charts/internal/render"
	"github.com/san-kum/paymee-charts/internal/storage"
	"github.com/san-kum/paymee-charts/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile  string
	outDir      string
	preset      string
	format      string
	dpi         int
	paletteName string
	fontFile    string
	verbose     bool
	// Per-command output file overrides
	slideFile     string
	benchmarkFile string
	noRender      bool

	logger *zap.Logger
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// main registers the commands and exits with status 1 when one fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "paymee",
		Short: "render the Paymee partnership slide and fee benchmark chart",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: renderAll,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&outDir, "out", "", "output directory")
	pf.StringVar(&preset, "preset", "", "use preset resolution (see presets)")
	pf.StringVar(&format, "format", "", "output format: "+strings.Join(render.Formats, ", "))
	pf.IntVar(&dpi, "dpi", 0, "raster resolution")
	pf.StringVar(&paletteName, "palette", "", "color palette")
	pf.StringVar(&fontFile, "font", "", "TrueType/OpenType font file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	slideCmd := &cobra.Command{
		Use:   "slide",
		Short: "render the partnership slide",
		Args:  cobra.NoArgs,
		RunE:  renderSlide,
	}
	slideCmd.Flags().StringVar(&slideFile, "file", "", "output file name")

	benchmarkCmd := &cobra.Command{
		Use:   "benchmark",
		Short: "render the competitor fee benchmark",
		Args:  cobra.NoArgs,
		RunE:  renderBenchmark,
	}
	benchmarkCmd.Flags().StringVar(&benchmarkFile, "file", "", "output file name")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "render both charts and the manifest",
		Args:  cobra.NoArgs,
		RunE:  renderAll,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "render both charts and preview them in the terminal",
		Args:  cobra.NoArgs,
		RunE:  showCharts,
	}
	showCmd.Flags().BoolVar(&noRender, "no-render", false, "preview without writing images")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "re-render when the config or data files change",
		Args:  cobra.NoArgs,
		RunE:  watchFiles,
	}

	savingsCmd := &cobra.Command{
		Use:   "savings",
		Short: "compare the highlighted actor's fees with the competition",
		Args:  cobra.NoArgs,
		RunE:  printSavings,
	}

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "check rendered files against the manifest",
		Args:  cobra.NoArgs,
		RunE:  verifyManifest,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available resolution presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFORMAT\tDPI\tSCALE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\n", name, p.Format, p.DPI, p.Scale)
			}
			return w.Flush()
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list available color palettes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range palette.Names() {
				p := palette.Get(name)
				swatches := ""
				for _, hex := range []string{p.Coral, p.Celeste, p.Lavanda, p.DarkCeleste, p.DarkLavanda, p.DarkGreyQR} {
					swatches += lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
				}
				fmt.Printf("  %-8s %s\n", name, swatches)
			}
		},
	}

	rootCmd.AddCommand(slideCmd, benchmarkCmd, allCmd, showCmd, watchCmd, savingsCmd, verifyCmd, presetsCmd, palettesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers flags over the config file, environment and preset.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Apply(cfg)
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
	if format != "" {
		cfg.Format = format
	}
	if dpi != 0 {
		cfg.DPI = dpi
	}
	if paletteName != "" {
		cfg.Palette = paletteName
	}
	if fontFile != "" {
		cfg.Font = fontFile
	}
	if slideFile != "" {
		cfg.Slide.File = slideFile
	}
	if benchmarkFile != "" {
		cfg.Benchmark.File = benchmarkFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newPipeline() (*pipeline.Pipeline, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return pipeline.New(cfg, logger), nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func renderSlide(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	out, err := p.RenderSlide(ctx)
	if err != nil {
		return err
	}
	printOutputs([]pipeline.Output{out})
	return nil
}

func renderBenchmark(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	out, err := p.RenderBenchmark(ctx)
	if err != nil {
		return err
	}
	printOutputs([]pipeline.Output{out})
	return nil
}

func renderAll(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	start := time.Now()
	outs, err := p.RenderAll(ctx)
	if err != nil {
		return err
	}
	printOutputs(outs)
	fmt.Println(dimStyle.Render(fmt.Sprintf("done in %v", time.Since(start).Round(time.Millisecond))))
	return nil
}

func printOutputs(outs []pipeline.Output) {
	for _, o := range outs {
		fmt.Printf("%s %-10s %s\n", okStyle.Render("✓"), o.Chart, o.Path)
	}
}

func showCharts(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	t, err := p.Table()
	if err != nil {
		return err
	}
	s, err := p.Slide()
	if err != nil {
		return err
	}

	var files []string
	if !noRender {
		ctx, cancel := signalContext()
		defer cancel()
		outs, err := p.RenderAll(ctx)
		if err != nil {
			return err
		}
		for _, o := range outs {
			files = append(files, o.Path)
		}
	}
	return preview.Run(t, s, p.Palette(), files)
}

func watchFiles(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	cfg := p.Config()

	files := cfg.DataFiles()
	if configFile != "" {
		files = append(files, configFile)
	}
	if len(files) == 0 {
		return fmt.Errorf("nothing to watch: set --config or slide/benchmark data files")
	}

	w, err := watch.New(files, time.Duration(cfg.Watch.DebounceMs)*time.Millisecond, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := signalContext()
	defer cancel()

	if _, err := p.RenderAll(ctx); err != nil {
		logger.Error("initial render failed", zap.Error(err))
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("watching %d file(s), ctrl+c to stop", len(files))))

	return w.Run(ctx, func(ctx context.Context, path string) error {
		// A changed config may alter any setting, so rebuild from scratch.
		np, err := newPipeline()
		if err != nil {
			return err
		}
		// Data files the config now points at join the watch list.
		if err := w.Add(np.Config().DataFiles()...); err != nil {
			return err
		}
		outs, err := np.RenderAll(ctx)
		if err != nil {
			return err
		}
		fmt.Println(dimStyle.Render("changed: " + path))
		printOutputs(outs)
		return nil
	})
}

func printSavings(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	t, err := p.Table()
	if err != nil {
		return err
	}
	savings := t.Savings()
	if savings == nil {
		fmt.Println(warnStyle.Render("no highlighted actor or no competitors"))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tRATE\tCHEAPEST\tMEAN\tDEAREST\tVS CHEAPEST\tVS MEAN\tVS DEAREST")
	for _, s := range savings {
		fmt.Fprintf(w, "%s\t%s%%\t%s%%\t%s%%\t%s%%\t%s%%\t%s%%\t%s%%\n",
			s.Category.Title(),
			s.Rate.StringFixed(2), s.Cheapest.StringFixed(2), s.Competitors.StringFixed(2), s.Dearest.StringFixed(2),
			s.VsCheapest.StringFixed(1), s.VsMean.StringFixed(1), s.VsDearest.StringFixed(1))
	}
	return w.Flush()
}

func verifyManifest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.OutDir)
	m, err := st.Load()
	if err != nil {
		return fmt.Errorf("no manifest in %s: %w", cfg.OutDir, err)
	}
	stale, err := st.Verify(m)
	if err != nil {
		return err
	}
	if len(stale) > 0 {
		return fmt.Errorf("stale charts: %v", stale)
	}
	fmt.Printf("%s manifest %s: %d file(s) match\n", okStyle.Render("✓"), m.ID, len(m.Files))
	return nil
}
