package preview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/paymee-charts/internal/benchmark"
	"github.com/san-kum/paymee-charts/internal/deck"
	"github.com/san-kum/paymee-charts/internal/palette"
)

var (
	activeTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 2)
	inactiveTab = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 2)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	fileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type view struct {
	name   string
	render func(width int) string
}

type model struct {
	views         []view
	cursor        int
	files         []string
	width, height int
}

// NewViewer builds the viewer model; files are listed under the views.
func NewViewer(t *benchmark.Table, s *deck.Slide, p palette.Palette, files []string) tea.Model {
	return model{
		views: []view{
			{name: "benchmark", render: func(w int) string { return Bars(t, p, w) }},
			{name: "profile", render: func(w int) string { return Profile(t, w, 12) }},
			{name: "slide", render: func(int) string { return Outline(s) }},
		},
		files:  files,
		width:  100,
		height: 30,
	}
}

// Run opens the viewer in the alternate screen and blocks until it quits.
func Run(t *benchmark.Table, s *deck.Slide, p palette.Palette, files []string) error {
	_, err := tea.NewProgram(NewViewer(t, s, p, files), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.cursor = (m.cursor + 1) % len(m.views)
		case "shift+tab", "left", "h":
			m.cursor = (m.cursor - 1 + len(m.views)) % len(m.views)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) barWidth() int {
	w := m.width - 50
	if w < 10 {
		w = 10
	}
	return w
}

func (m model) View() string {
	tabs := make([]string, len(m.views))
	for i, v := range m.views {
		if i == m.cursor {
			tabs[i] = activeTab.Render(v.name)
		} else {
			tabs[i] = inactiveTab.Render(v.name)
		}
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("\n")
	sb.WriteString(panelStyle.Render(m.views[m.cursor].render(m.barWidth())))
	sb.WriteString("\n")
	for _, f := range m.files {
		sb.WriteString(fileStyle.Render("  wrote " + f))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render("tab/←/→ switch view • q quit"))
	return sb.String()
}
