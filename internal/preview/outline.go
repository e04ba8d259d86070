package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/paymee-charts/internal/deck"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2).Width(72)
	flowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).MarginTop(1)
)

// Outline renders the slide's text content.
func Outline(s *deck.Slide) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(s.Title))
	sb.WriteString("\n")

	for _, p := range s.Points {
		sb.WriteString(headingStyle.Render("• " + p.Heading))
		sb.WriteString("\n")
		if p.Body != "" {
			sb.WriteString(bodyStyle.Render(p.Body))
			sb.WriteString("\n")
		}
	}

	if len(s.Flow) > 0 {
		labels := make([]string, len(s.Flow))
		for i, n := range s.Flow {
			labels[i] = "(" + n.Glyph + ") " + n.Label
		}
		sb.WriteString(flowStyle.Render(strings.Join(labels, "  ──▶  ")))
		sb.WriteString("\n")
	}
	return sb.String()
}
