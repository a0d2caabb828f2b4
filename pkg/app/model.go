package app

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/year-pulse/pkg/components"
	"gitlab.com/tinyland/lab/year-pulse/pkg/theme"
)

// Config controls the application shell.
type Config struct {
	// TickInterval is the countdown refresh period. Must be positive.
	TickInterval time.Duration

	// QuoteInterval is the quote rotation period. Zero disables rotation.
	QuoteInterval time.Duration

	Keys  KeyMap
	Theme theme.Theme

	// Zones resolves mouse clicks to marked regions. May be nil, in which
	// case clicks are ignored.
	Zones *zone.Manager

	Logger *slog.Logger
}

// DefaultConfig returns a 1s tick, 10s quote rotation and the default keys.
func DefaultConfig() Config {
	return Config{
		TickInterval:  time.Second,
		QuoteInterval: 10 * time.Second,
		Keys:          DefaultKeyMap(),
		Theme:         theme.Current,
	}
}

// AppModel is the root Bubble Tea model. It frames a single widget, drives
// the tick schedule and handles the global keys.
type AppModel struct {
	cfg    Config
	widget Widget
	help   help.Model
	log    *slog.Logger

	width, height int
	ready         bool
	quitting      bool
}

// NewAppModel builds the root model around w.
func NewAppModel(cfg Config, w Widget) AppModel {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	h := help.New()
	keyStyle := fg(cfg.Theme.HelpKey)
	descStyle := fg(cfg.Theme.HelpDesc)
	sepStyle := fg(cfg.Theme.Dim)
	h.Styles.ShortKey = keyStyle
	h.Styles.FullKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.FullDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.FullSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle

	return AppModel{
		cfg:    cfg,
		widget: w,
		help:   h,
		log:    logger.With("widget", w.ID()),
	}
}

// Init arms both timers and starts the widget.
func (m AppModel) Init() tea.Cmd {
	m.log.Debug("mount",
		"tick_interval", m.cfg.TickInterval,
		"quote_interval", m.cfg.QuoteInterval)
	return tea.Batch(
		TickCmd(m.cfg.TickInterval),
		QuoteTickCmd(m.cfg.QuoteInterval),
		m.widget.Init(),
	)
}

// Update routes messages. Once quitting, everything is dropped so no timer
// re-arms after teardown.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.log.Debug("resize", "width", msg.Width, "height", msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.cfg.Keys.Quit):
			m.quitting = true
			m.log.Info("quit requested", "key", msg.String())
			return m, tea.Quit
		case key.Matches(msg, m.cfg.Keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, m.widget.HandleKey(msg)

	case TickEvent:
		return m, tea.Batch(m.widget.Update(msg), TickCmd(m.cfg.TickInterval))

	case QuoteTickEvent:
		return m, tea.Batch(m.widget.Update(msg), QuoteTickCmd(m.cfg.QuoteInterval))
	}

	return m, m.widget.Update(msg)
}

// View renders the framed widget with the help bar underneath.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	helpView := m.help.View(m.helpKeys())
	helpH := lipgloss.Height(helpView)
	boxH := m.height - helpH

	minW, minH := m.widget.MinSize()
	if m.width < minW+4 || boxH < minH+2 {
		return components.FitLines([]string{"Terminal too small"}, m.width, m.height, components.AlignCenter)
	}

	body := m.widget.View(m.width-4, boxH-2)
	frame := components.RenderBox(body, m.width, boxH, components.BoxStyle{
		Title:      m.widget.Title(),
		TitleAlign: components.AlignCenter,
		Color:      m.cfg.Theme.Border,
		PadX:       1,
	})

	var b strings.Builder
	b.WriteString(frame)
	for _, line := range strings.Split(helpView, "\n") {
		b.WriteString("\n")
		b.WriteString(components.PadCenter(line, m.width))
	}

	if m.cfg.Zones != nil {
		return m.cfg.Zones.Scan(b.String())
	}
	return b.String()
}

func (m AppModel) helpKeys() helpKeys {
	hk := helpKeys{app: m.cfg.Keys}
	if kb, ok := m.widget.(KeyBinder); ok {
		hk.widget = kb.KeyBindings()
	}
	return hk
}

// Width returns the last known terminal width.
func (m AppModel) Width() int { return m.width }

// Height returns the last known terminal height.
func (m AppModel) Height() int { return m.height }

// Quitting reports whether quit has been requested.
func (m AppModel) Quitting() bool { return m.quitting }

// HelpVisible reports whether the full help is shown.
func (m AppModel) HelpVisible() bool { return m.help.ShowAll }

func fg(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if color != "" {
		s = s.Foreground(lipgloss.Color(color))
	}
	return s
}
