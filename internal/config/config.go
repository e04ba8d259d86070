package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/san-kum/paymee-charts/internal/palette"
	"github.com/san-kum/paymee-charts/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutDir        = "."
	DefaultFormat        = "png"
	DefaultDPI           = 100
	DefaultScale         = 1.0
	DefaultPalette       = "paymee"
	DefaultSlideFile     = "paymee_slide"
	DefaultBenchmarkFile = "paymee_competitor_comparison_final_no_grid_large_note"
	ManifestFile         = "manifest.json"
)

type Config struct {
	OutDir    string      `yaml:"out_dir" env:"PAYMEE_OUT_DIR" validate:"required"`
	Format    string      `yaml:"format" env:"PAYMEE_FORMAT" validate:"format"`
	DPI       int         `yaml:"dpi" env:"PAYMEE_DPI" validate:"gte=36,lte=1200"`
	Scale     float64     `yaml:"scale" env:"PAYMEE_SCALE" validate:"gt=0,lte=4"`
	Font      string      `yaml:"font" env:"PAYMEE_FONT"`
	Palette   string      `yaml:"palette" env:"PAYMEE_PALETTE" validate:"palette"`
	Manifest  bool        `yaml:"manifest" env:"PAYMEE_MANIFEST"`
	Slide     ChartConfig `yaml:"slide" envPrefix:"PAYMEE_SLIDE_"`
	Benchmark ChartConfig `yaml:"benchmark" envPrefix:"PAYMEE_BENCHMARK_"`
	Watch     WatchConfig `yaml:"watch"`
}

// ChartConfig names the output file (without extension) and an optional
// YAML data file replacing the built-in content.
type ChartConfig struct {
	File string `yaml:"file" env:"FILE" validate:"required,excludesall=/\\"`
	Data string `yaml:"data" env:"DATA"`
}

type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms" validate:"gte=0"`
}

func DefaultConfig() *Config {
	return &Config{
		OutDir:   DefaultOutDir,
		Format:   DefaultFormat,
		DPI:      DefaultDPI,
		Scale:    DefaultScale,
		Palette:  DefaultPalette,
		Manifest: true,
		Slide: ChartConfig{
			File: DefaultSlideFile,
		},
		Benchmark: ChartConfig{
			File: DefaultBenchmarkFile,
		},
		Watch: WatchConfig{DebounceMs: 300},
	}
}

// Load reads a YAML config on top of the defaults. An empty path yields the
// defaults alone. Environment variables (and a .env file, if present) are
// applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PAYMEE_* variables.
func ApplyEnv(cfg *Config) error {
	_ = godotenv.Load()
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: env: %w", err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
		return palette.Exists(fl.Field().String())
	})
	_ = v.RegisterValidation("format", func(fl validator.FieldLevel) bool {
		return lo.Contains(render.Formats, fl.Field().String())
	})
	return v
}

func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SlidePath is where the slide image is written.
func (c *Config) SlidePath() string {
	return c.output(c.Slide.File)
}

// BenchmarkPath is where the benchmark chart is written.
func (c *Config) BenchmarkPath() string {
	return c.output(c.Benchmark.File)
}

func (c *Config) ManifestPath() string {
	return filepath.Join(c.OutDir, ManifestFile)
}

func (c *Config) output(name string) string {
	if filepath.Ext(name) == "" {
		name += "." + c.Format
	}
	return filepath.Join(c.OutDir, name)
}

// DataFiles returns the data files the charts are read from, for watching.
func (c *Config) DataFiles() []string {
	var files []string
	for _, f := range []string{c.Slide.Data, c.Benchmark.Data} {
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}
