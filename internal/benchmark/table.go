package benchmark

import (
	_ "embed"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/samber/lo"
	"github.com/san-kum/paymee-charts/internal/palette"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTable []byte

type Actor struct {
	Name      string               `yaml:"name"`
	Rates     map[Category]float64 `yaml:"rates"`
	Highlight bool                 `yaml:"highlight,omitempty"`
}

// Promo attaches a note to one bar, e.g. a free period on a single product.
type Promo struct {
	Actor    string   `yaml:"actor"`
	Category Category `yaml:"category"`
	Note     string   `yaml:"note"`
}

type Table struct {
	Title  string  `yaml:"title"`
	Note   string  `yaml:"note"`
	Actors []Actor `yaml:"actors"`
	Promo  *Promo  `yaml:"promo,omitempty"`
}

// Observation is one (actor, category) row of the melted table.
type Observation struct {
	Actor     string
	Index     int
	Category  Category
	Rate      float64
	Highlight bool
	Color     color.Color
}

// Default returns the built-in fee table.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("benchmark: embedded table: %v", err))
	}
	return t
}

func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Table, error) {
	t := &Table{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("benchmark: decode table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) Validate() error {
	if len(t.Actors) == 0 {
		return ErrNoActors
	}
	seen := make(map[string]bool, len(t.Actors))
	for _, a := range t.Actors {
		if seen[a.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateActor, a.Name)
		}
		seen[a.Name] = true
		for key := range a.Rates {
			if !lo.Contains(Categories, key) {
				return fmt.Errorf("%w: %s on %s", ErrUnknownCategory, key, a.Name)
			}
		}
		for _, c := range Categories {
			r, ok := a.Rates[c]
			if !ok {
				return fmt.Errorf("%w: %s has no %s rate", ErrMissingCategory, a.Name, c)
			}
			if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
				return fmt.Errorf("%w: %s %s = %v", ErrInvalidRate, a.Name, c, r)
			}
		}
	}
	if t.Promo != nil {
		if !seen[t.Promo.Actor] {
			return fmt.Errorf("benchmark: promo references unknown actor %q", t.Promo.Actor)
		}
		if !lo.Contains(Categories, t.Promo.Category) {
			return fmt.Errorf("%w: promo %s", ErrUnknownCategory, t.Promo.Category)
		}
	}
	return nil
}

// Names returns actor names in table order; the first one is drawn lowest.
func (t *Table) Names() []string {
	return lo.Map(t.Actors, func(a Actor, _ int) string { return a.Name })
}

// Melt returns the table in long format, actor by actor, categories in order.
func (t *Table) Melt(p palette.Palette) []Observation {
	out := make([]Observation, 0, len(t.Actors)*len(Categories))
	for i, a := range t.Actors {
		for _, c := range Categories {
			out = append(out, Observation{
				Actor:     a.Name,
				Index:     i,
				Category:  c,
				Rate:      a.Rates[c],
				Highlight: a.Highlight,
				Color:     ColorFor(p, a.Highlight, c),
			})
		}
	}
	return out
}

// MaxRate returns the largest rate for a category across all actors.
func (t *Table) MaxRate(c Category) float64 {
	if len(t.Actors) == 0 {
		return 0
	}
	return lo.MaxBy(t.Actors, func(a, b Actor) bool { return a.Rates[c] > b.Rates[c] }).Rates[c]
}

// Label formats the text drawn next to a bar.
func (t *Table) Label(actor string, c Category, rate float64) string {
	label := fmt.Sprintf("%.2f%%", rate)
	if t.Promo != nil && t.Promo.Actor == actor && t.Promo.Category == c && t.Promo.Note != "" {
		label += " (" + t.Promo.Note + ")"
	}
	return label
}

// Highlighted returns the highlighted actor, if any.
func (t *Table) Highlighted() (Actor, bool) {
	return lo.Find(t.Actors, func(a Actor) bool { return a.Highlight })
}
