package config

import "sort"

// Preset is a named output resolution.
type Preset struct {
	DPI    int
	Scale  float64
	Format string
}

var Presets = map[string]Preset{
	"slide":  {DPI: 100, Scale: 1.0, Format: "png"},
	"print":  {DPI: 300, Scale: 1.0, Format: "pdf"},
	"social": {DPI: 150, Scale: 0.75, Format: "jpg"},
	"draft":  {DPI: 72, Scale: 0.5, Format: "png"},
	"vector": {DPI: 100, Scale: 1.0, Format: "svg"},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset's values into cfg.
func (p *Preset) Apply(cfg *Config) {
	cfg.DPI = p.DPI
	cfg.Scale = p.Scale
	cfg.Format = p.Format
}
