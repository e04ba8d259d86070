// Package deck describes the content of the partnership slide: a title, a
// card of headed bullet points and a left-to-right flow of round icons.
package deck

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSlide []byte

var (
	ErrEmptyTitle   = errors.New("deck: slide has no title")
	ErrEmptyPoint   = errors.New("deck: point has no heading")
	ErrEmptyNode    = errors.New("deck: flow node has no label")
	ErrTooManyNodes = errors.New("deck: flow has more nodes than fit on the slide")
)

// MaxFlowNodes is how many icons fit between x=9 and the right edge at the
// default 3.2 spacing.
const MaxFlowNodes = 3

type Point struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Node is one icon of the flow. Color names a palette role.
type Node struct {
	Label string `yaml:"label"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	// GlyphScale is the glyph height relative to the icon diameter.
	GlyphScale float64 `yaml:"glyph_scale,omitempty"`
}

type Slide struct {
	Title  string  `yaml:"title"`
	Points []Point `yaml:"points"`
	Flow   []Node  `yaml:"flow"`
}

func Default() *Slide {
	s, err := Parse(defaultSlide)
	if err != nil {
		panic(fmt.Sprintf("deck: embedded slide: %v", err))
	}
	return s
}

func Load(path string) (*Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Slide, error) {
	s := &Slide{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("deck: decode slide: %w", err)
	}
	for i := range s.Flow {
		if s.Flow[i].GlyphScale == 0 {
			s.Flow[i].GlyphScale = defaultGlyphScale
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

const defaultGlyphScale = 0.6

func (s *Slide) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrEmptyTitle
	}
	for i, p := range s.Points {
		if strings.TrimSpace(p.Heading) == "" {
			return fmt.Errorf("%w (point %d)", ErrEmptyPoint, i)
		}
	}
	if len(s.Flow) > MaxFlowNodes {
		return fmt.Errorf("%w: %d > %d", ErrTooManyNodes, len(s.Flow), MaxFlowNodes)
	}
	for i, n := range s.Flow {
		if strings.TrimSpace(n.Label) == "" {
			return fmt.Errorf("%w (node %d)", ErrEmptyNode, i)
		}
	}
	return nil
}
