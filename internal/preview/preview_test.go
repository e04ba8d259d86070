package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/paymee-charts/internal/benchmark"
	"github.com/san-kum/paymee-charts/internal/deck"
	"github.com/san-kum/paymee-charts/internal/palette"
)

func TestBarLen(t *testing.T) {
	tests := []struct {
		rate, max float64
		width     int
		want      int
	}{
		{6.29, 6.29 * 1.25, 40, 32},
		{0.6, 6.29 * 1.25, 40, 3},
		{0, 10, 40, 0},
		{5, 0, 40, 0},
		{20, 10, 40, 40},
		{1, 10, 0, 0},
	}
	for _, tt := range tests {
		if got := barLen(tt.rate, tt.max, tt.width); got != tt.want {
			t.Errorf("barLen(%v, %v, %d) = %d, want %d", tt.rate, tt.max, tt.width, got, tt.want)
		}
	}
}

func TestBars(t *testing.T) {
	out := Bars(benchmark.Default(), palette.Paymee, 40)

	for _, want := range []string{"Mercado Pago", "Ualá Bis", "6.29%", "0.60% (3 meses gratis)", "QR interoperable", "Nota:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if strings.Index(out, "Paymee\n") > strings.Index(out, "Mercado Pago") {
		t.Error("highlighted actor should be listed first, as the top row of the chart")
	}
}

func TestProfile(t *testing.T) {
	out := Profile(benchmark.Default(), 30, 8)
	if !strings.Contains(out, "Mercado Pago → Getnet → Ualá Bis → Paymee") {
		t.Errorf("missing caption:\n%s", out)
	}

	single := &benchmark.Table{Actors: benchmark.Default().Actors[:1]}
	if !strings.Contains(Profile(single, 30, 8), "at least two") {
		t.Error("expected a notice for single-actor tables")
	}
}

func TestOutline(t *testing.T) {
	out := Outline(deck.Default())
	for _, want := range []string{"Implementación y Alianza Técnica", "Integración regulada:", "Paymee", "BCRA", "──▶"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in outline", want)
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewer_Navigation(t *testing.T) {
	var m tea.Model = NewViewer(benchmark.Default(), deck.Default(), palette.Paymee, []string{"out/a.png"})

	steps := []struct {
		key  string
		want int
	}{
		{"tab", 1},
		{"right", 2},
		{"l", 0},
		{"left", 2},
		{"shift+tab", 1},
		{"h", 0},
	}
	for _, s := range steps {
		m, _ = m.Update(key(s.key))
		if got := m.(model).cursor; got != s.want {
			t.Fatalf("after %s: cursor = %d, want %d", s.key, got, s.want)
		}
	}

	view := m.View()
	if !strings.Contains(view, "wrote out/a.png") {
		t.Error("view should list written files")
	}
	if !strings.Contains(view, "6.29%") {
		t.Error("first view should show the benchmark bars")
	}
}

func TestViewer_Quit(t *testing.T) {
	m := NewViewer(benchmark.Default(), deck.Default(), palette.Paymee, nil)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewer_Resize(t *testing.T) {
	m := NewViewer(benchmark.Default(), deck.Default(), palette.Paymee, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if got := next.(model).barWidth(); got != 10 {
		t.Errorf("barWidth() = %d, want minimum 10", got)
	}
}
