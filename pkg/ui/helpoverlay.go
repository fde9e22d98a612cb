package ui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// helpMarkdown is rendered with glamour when the overlay opens
const helpMarkdown = `# Ribbon

## Mouse

| gesture | effect |
|---|---|
| click | move the selection to the pointer |
| double click | expand or contract the selection |
| drag inside the selection | move it with the pointer |
| drag outside the selection | put its center under the pointer |
| drag a handle | resize from that edge |
| hold, then release on the card | open or close the door |
| click the open door | close it |

Dragging near an anchor snaps the selection onto it.

## Keys

| key | action |
|---|---|
| ? | toggle this help |
| y | copy center and range |
| r | reset |
| q / esc | quit |
`

// HelpOverlayModel shows the gesture and keyboard reference
type HelpOverlayModel struct {
	visible  bool
	width    int
	height   int
	theme    Theme
	rendered string
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	return HelpOverlayModel{
		theme: theme,
	}
}

// Show makes the help overlay visible
func (m *HelpOverlayModel) Show() {
	m.visible = true
}

// Hide makes the help overlay invisible
func (m *HelpOverlayModel) Hide() {
	m.visible = false
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions and drops the cached rendering
func (m *HelpOverlayModel) SetSize(width, height int) {
	if width != m.width {
		m.rendered = ""
	}
	m.width = width
	m.height = height
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}

	return m, nil
}

// View renders the help overlay
func (m *HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}
	if m.rendered == "" {
		m.rendered = m.renderMarkdown()
	}

	var b strings.Builder
	b.WriteString(m.rendered)
	b.WriteString("\n")
	hintStyle := m.theme.Renderer.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)

	return boxStyle.Render(b.String())
}

func (m *HelpOverlayModel) renderMarkdown() string {
	wrap := m.width - 8
	if wrap < 40 {
		wrap = 40
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		var out string
		if out, err = r.Render(helpMarkdown); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	log.Printf("Warning: could not render help: %v", err)
	return helpMarkdown
}
