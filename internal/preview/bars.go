package preview

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/paymee-charts/internal/benchmark"
	"github.com/san-kum/paymee-charts/internal/palette"
)

const barRune = "█"

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	catStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true).MarginTop(1)
)

// barLen scales rate to a bar of at most width cells against limit.
func barLen(rate, limit float64, width int) int {
	if limit <= 0 || width <= 0 || rate <= 0 {
		return 0
	}
	n := int(math.Round(rate / limit * float64(width)))
	if n > width {
		n = width
	}
	return n
}

func hexOf(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// Bars renders the fee table with the highest row first, as on the chart.
func Bars(t *benchmark.Table, p palette.Palette, width int) string {
	limit := t.MaxRate(benchmark.Credit) * 1.25
	rows := t.Melt(p)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(t.Title))
	sb.WriteString("\n")

	for i := len(t.Actors) - 1; i >= 0; i-- {
		sb.WriteString(nameStyle.Render(t.Actors[i].Name))
		sb.WriteString("\n")
		for j := len(benchmark.Categories) - 1; j >= 0; j-- {
			o := rows[i*len(benchmark.Categories)+j]
			bar := lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(o.Color))).
				Render(strings.Repeat(barRune, barLen(o.Rate, limit, width)))
			fmt.Fprintf(&sb, "  %s%s %s\n",
				catStyle.Render(o.Category.Title()),
				bar,
				valueStyle.Render(t.Label(o.Actor, o.Category, o.Rate)))
		}
	}

	if t.Note != "" {
		sb.WriteString(noteStyle.Render(t.Note))
		sb.WriteString("\n")
	}
	return sb.String()
}
