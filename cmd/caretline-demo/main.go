// Command caretline-demo is a small bubbletea program that exercises the
// controller package against a real terminal, the way
// iw2rmb-flourish/cmd/flourish-demo exercises the editor package.
package main

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"caretline/controller"
	"caretline/internal/cputil"
)

var cursorStyle = lipgloss.NewStyle().Reverse(true)

type model struct {
	ctl *controller.Controller
}

func newModel() model {
	ctl := controller.New(controller.Config{
		InitialText: "Hello from caretline.\n\nType to edit.\nUse arrows to move.\nCtrl+C to quit.",
		Viewport:    controller.Viewport{Width: 80, Height: 24},
		Host:        controller.DefaultHostCapabilities(),
	})
	return model{ctl: ctl}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ctl.SetViewport(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.ctl.HandleInput(msg)
	}
	return m, nil
}

func (m model) View() string {
	lines := m.ctl.ViewportVisualLines()
	scrollRow := m.ctl.VisualScrollRow()
	cursor := m.ctl.VisualCursor()

	var sb strings.Builder
	for i, line := range lines {
		if scrollRow+i == cursor.Row {
			sb.WriteString(renderCursorLine(line, cursor.Col))
		} else {
			sb.WriteString(line)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderCursorLine reverses the cell at col, or appends a reversed blank
// cell when the cursor sits past the line's last code point.
func renderCursorLine(line string, col int) string {
	cps := cputil.CodePoints(line)
	if col < 0 || col > len(cps) {
		return line
	}
	if col == len(cps) {
		return line + cursorStyle.Render(" ")
	}
	before := strings.Join(cps[:col], "")
	at := cps[col]
	after := strings.Join(cps[col+1:], "")
	return before + cursorStyle.Render(at) + after
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
