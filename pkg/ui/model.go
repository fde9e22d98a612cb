package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Dicklesworthstone/ribbon/pkg/config"
	"github.com/Dicklesworthstone/ribbon/pkg/flip"
	"github.com/Dicklesworthstone/ribbon/pkg/gesture"
	"github.com/Dicklesworthstone/ribbon/pkg/model"
	"github.com/Dicklesworthstone/ribbon/pkg/ribbon"
)

// ConfigReloadedMsg carries a configuration that changed on disk
type ConfigReloadedMsg struct {
	Config config.Config
}

// ConfigErrorMsg reports a configuration file that failed to load
type ConfigErrorMsg struct {
	Err error
}

// timerMsg fires when the dispatcher's next deadline is due. Stale
// generations are dropped.
type timerMsg struct {
	gen int
}

const defaultTermWidth = 80

// Model is the root bubbletea model: one ribbon slider on a flip card
type Model struct {
	cfg        config.Config
	theme      Theme
	keys       keyMap
	help       help.Model
	overlay    HelpOverlayModel
	dispatcher *gesture.Dispatcher
	anim       *animation
	layout     Layout
	now        func() time.Time

	width  int
	height int

	timerGen  int
	animating bool

	status    string
	statusErr bool
}

// NewModel builds the widget from cfg
func NewModel(cfg config.Config, theme Theme) Model {
	m := Model{
		cfg:     cfg,
		theme:   theme,
		keys:    defaultKeys(),
		help:    help.New(),
		overlay: NewHelpOverlayModel(theme),
		now:     time.Now,
		width:   defaultTermWidth,
	}
	m.build()
	m.layout = NewLayout(m.width, cfg.Width, cfg.Height)
	return m
}

// WithClock replaces the time source used to stamp pointer events
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	return m
}

// build creates fresh gesture state for m.cfg
func (m *Model) build() {
	r := ribbon.New(m.cfg.RibbonSettings())
	card := flip.New(model.SideFront)
	d := gesture.New(m.cfg.GestureSettings(), r, card)
	d.OnPress(func(p model.PressState) {
		log.Printf("door gesture: %s", p)
	})
	a := newAnimation(d.Frame(), card)
	m.dispatcher = d
	m.anim = &a
}

// Dispatcher exposes the gesture core
func (m Model) Dispatcher() *gesture.Dispatcher {
	return m.dispatcher
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout = NewLayout(msg.Width, m.cfg.Width, m.cfg.Height)
		m.help.Width = msg.Width
		m.overlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.overlay.IsVisible() {
			m.overlay, _ = m.overlay.Update(msg)
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.overlay.IsVisible() {
			return m, nil
		}
		ev, ok := m.pointerEvent(msg)
		if !ok {
			return m, nil
		}
		if ev.Phase == model.PhaseDown {
			m.setStatus("", false)
		}
		m.dispatcher.Handle(ev)
		return m, tea.Batch(m.schedule(), m.animate())

	case timerMsg:
		if msg.gen != m.timerGen {
			return m, nil
		}
		m.dispatcher.Tick(m.now())
		return m, tea.Batch(m.schedule(), m.animate())

	case frameMsg:
		if m.anim.step(m.dispatcher.Frame(), m.dispatcher.Card()) {
			return m, frameCmd()
		}
		m.animating = false
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.layout = NewLayout(m.width, m.cfg.Width, m.cfg.Height)
		m.build()
		m.timerGen++
		m.setStatus("configuration reloaded", false)
		return m, nil

	case ConfigErrorMsg:
		log.Printf("Warning: config reload failed: %v", msg.Err)
		m.setStatus(fmt.Sprintf("config: %v", msg.Err), true)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay.Show()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.dispatcher.Reset()
		m.timerGen++
		m.setStatus("reset", false)
		return m, m.animate()

	case key.Matches(msg, m.keys.Yank):
		s := m.dispatcher.Ribbon().State()
		text := fmt.Sprintf("center=%.1f range=%.1f", s.Center, s.Range)
		if err := clipboard.WriteAll(text); err != nil {
			log.Printf("Warning: clipboard unavailable: %v", err)
			m.setStatus("clipboard unavailable", true)
			return m, nil
		}
		m.setStatus("copied "+text, false)
		return m, nil
	}
	return m, nil
}

// pointerEvent converts a terminal mouse report to widget-local units.
// Only the left button drives gestures.
func (m Model) pointerEvent(msg tea.MouseMsg) (model.PointerEvent, bool) {
	var phase model.Phase
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return model.PointerEvent{}, false
		}
		phase = model.PhaseDown
	case tea.MouseActionMotion:
		if !m.dispatcher.Active() {
			return model.PointerEvent{}, false
		}
		phase = model.PhaseMove
	case tea.MouseActionRelease:
		phase = model.PhaseUp
	default:
		return model.PointerEvent{}, false
	}

	x, y := m.layout.ToUnits(msg.X, msg.Y)
	return model.PointerEvent{Phase: phase, X: x, Y: y, Time: m.now()}, true
}

// schedule arms a timer for the dispatcher's next deadline, invalidating
// any earlier one
func (m *Model) schedule() tea.Cmd {
	m.timerGen++
	at, ok := m.dispatcher.Deadline()
	if !ok {
		return nil
	}
	wait := at.Sub(m.now())
	if wait < 0 {
		wait = 0
	}
	gen := m.timerGen
	return tea.Tick(wait, func(time.Time) tea.Msg { return timerMsg{gen: gen} })
}

// animate starts the frame loop unless it is already running
func (m *Model) animate() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frameCmd()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// View implements tea.Model
func (m Model) View() string {
	if m.overlay.IsVisible() {
		overlay := m.overlay.View()
		if m.width > 0 && m.height > 0 {
			return m.theme.Renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}

	var b strings.Builder
	title := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Bold(true)
	b.WriteString(strings.Repeat(" ", m.layout.Left) + title.Render("Ribbon"))
	b.WriteString("\n\n")
	b.WriteString(m.scene().render())
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", m.layout.Left) + m.help.View(m.keys))
	return b.String()
}

func (m Model) scene() scene {
	f := m.dispatcher.Frame()
	return scene{
		layout:        m.layout,
		theme:         m.theme,
		center:        m.anim.center.position,
		rng:           m.anim.rng.position,
		scale:         m.anim.scale.position,
		progress:      f.Progress,
		handle:        f.Handle,
		practicalZero: m.cfg.PracticalZero,
		handleWidth:   m.cfg.HandleWidth,
	}
}

// statusLine shows the last message, or the live center and range
func (m Model) statusLine() string {
	text := m.status
	style := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	if m.statusErr {
		style = m.theme.Renderer.NewStyle().Foreground(m.theme.Warning)
	}
	if text == "" {
		f := m.dispatcher.Frame()
		text = fmt.Sprintf("center %.0f  range %.0f  %s", f.Center, f.Range, f.Side)
	}
	maxW := m.width - 2*m.layout.Left
	if maxW < 1 {
		maxW = 1
	}
	return strings.Repeat(" ", m.layout.Left) + style.Render(truncate.StringWithTail(text, uint(maxW), "…"))
}
