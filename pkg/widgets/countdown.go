package widgets

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/year-pulse/pkg/app"
	"gitlab.com/tinyland/lab/year-pulse/pkg/clock"
	"gitlab.com/tinyland/lab/year-pulse/pkg/components"
	"gitlab.com/tinyland/lab/year-pulse/pkg/countdown"
	"gitlab.com/tinyland/lab/year-pulse/pkg/quotes"
	"gitlab.com/tinyland/lab/year-pulse/pkg/theme"
)

const (
	cdWidgetID   = "countdown"
	cdQuoteZone  = "countdown-quote"
	cdGaugeWidth = 48
)

// cdHourglass flips the hourglass twice a second while the countdown runs.
var cdHourglass = spinner.Spinner{
	Frames: []string{"⏳", "⌛"},
	FPS:    time.Second / 2,
}

// CountdownOptions configures a CountdownWidget.
type CountdownOptions struct {
	Countdown countdown.Countdown

	// Quotes and QuoteStart seed the rotator. Ignored unless ShowQuotes.
	Quotes     []quotes.Quote
	QuoteStart int
	ShowQuotes bool

	Theme    theme.Theme
	Title    string
	Subtitle string
	Caption  string

	// Clock supplies the initial state before the first tick. Nil means
	// the system clock.
	Clock clock.Clock

	// Zones marks the quote as clickable. May be nil.
	Zones *zone.Manager

	Logger *slog.Logger
}

// CountdownKeyMap holds the quote navigation bindings.
type CountdownKeyMap struct {
	NextQuote key.Binding
	PrevQuote key.Binding
}

// DefaultCountdownKeyMap binds n/right and p/left.
func DefaultCountdownKeyMap() CountdownKeyMap {
	return CountdownKeyMap{
		NextQuote: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next quote"),
		),
		PrevQuote: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "prev quote"),
		),
	}
}

// CountdownWidget shows the time remaining until a target instant, the
// progress through the range leading up to it, and a rotating quote.
type CountdownWidget struct {
	cd      countdown.Countdown
	state   countdown.State
	rotator *quotes.Rotator // nil when quotes are hidden
	keys    CountdownKeyMap
	spin    spinner.Model

	th                       theme.Theme
	title, subtitle, caption string

	zones *zone.Manager
	log   *slog.Logger
}

// NewCountdownWidget builds the widget and computes its initial state.
func NewCountdownWidget(opts CountdownOptions) (*CountdownWidget, error) {
	var rot *quotes.Rotator
	if opts.ShowQuotes {
		r, err := quotes.NewRotator(opts.Quotes, opts.QuoteStart)
		if err != nil {
			return nil, fmt.Errorf("countdown widget: %w", err)
		}
		rot = r
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	keys := DefaultCountdownKeyMap()
	keys.NextQuote.SetEnabled(rot != nil)
	keys.PrevQuote.SetEnabled(rot != nil)

	now := clock.OrReal(opts.Clock).Now()
	return &CountdownWidget{
		cd:      opts.Countdown,
		state:   opts.Countdown.At(now),
		rotator: rot,
		keys:    keys,
		spin: spinner.New(
			spinner.WithSpinner(cdHourglass),
			spinner.WithStyle(fg(opts.Theme.Accent)),
		),
		th:       opts.Theme,
		title:    opts.Title,
		subtitle: opts.Subtitle,
		caption:  opts.Caption,
		zones:    opts.Zones,
		log:      logger.With("target", opts.Countdown.Target),
	}, nil
}

// ID returns the widget identifier.
func (w *CountdownWidget) ID() string { return cdWidgetID }

// Title returns the frame title.
func (w *CountdownWidget) Title() string { return "Countdown" }

// MinSize returns the smallest area the compact layout fits in.
func (w *CountdownWidget) MinSize() (int, int) { return 20, 3 }

// State returns the most recently computed countdown state.
func (w *CountdownWidget) State() countdown.State { return w.state }

// Quote returns the quote on display and whether quotes are shown at all.
func (w *CountdownWidget) Quote() (quotes.Quote, bool) {
	if w.rotator == nil {
		return quotes.Quote{}, false
	}
	return w.rotator.Current(), true
}

// QuoteIndex returns the rotator position, or -1 when quotes are hidden.
func (w *CountdownWidget) QuoteIndex() int {
	if w.rotator == nil {
		return -1
	}
	return w.rotator.Index()
}

// KeyBindings lists the quote bindings for the help bar.
func (w *CountdownWidget) KeyBindings() []key.Binding {
	if w.rotator == nil {
		return nil
	}
	return []key.Binding{w.keys.NextQuote, w.keys.PrevQuote}
}

// Init starts the hourglass animation unless the target has passed.
func (w *CountdownWidget) Init() tea.Cmd {
	if w.state.Done {
		return nil
	}
	return w.spin.Tick
}

// Update applies ticks, quote rotations, spinner frames and clicks.
func (w *CountdownWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TickEvent:
		next, crossed := w.cd.Next(w.state, msg.Time)
		w.state = next
		if crossed {
			w.log.Info("target reached", "at", msg.Time)
		}
		return nil

	case app.QuoteTickEvent:
		w.advanceQuote(1)
		return nil

	case spinner.TickMsg:
		if w.state.Done {
			return nil
		}
		var cmd tea.Cmd
		w.spin, cmd = w.spin.Update(msg)
		return cmd

	case tea.MouseMsg:
		if w.zones == nil || w.rotator == nil {
			return nil
		}
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if z := w.zones.Get(cdQuoteZone); z != nil && z.InBounds(msg) {
			w.advanceQuote(1)
		}
	}
	return nil
}

// HandleKey moves between quotes.
func (w *CountdownWidget) HandleKey(k tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(k, w.keys.NextQuote):
		w.advanceQuote(1)
	case key.Matches(k, w.keys.PrevQuote):
		w.advanceQuote(-1)
	}
	return nil
}

func (w *CountdownWidget) advanceQuote(n int) {
	if w.rotator == nil {
		return
	}
	w.rotator.AdvanceBy(n)
	w.log.Debug("quote rotated", "index", w.rotator.Index())
}

// View renders into exactly width x height cells. The full layout is used
// when it fits; otherwise the compact one.
func (w *CountdownWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := w.cdFullLines(width)
	if len(lines) > height {
		lines = w.cdCompactLines(width, height)
	}
	return components.FitLines(lines, width, height, components.AlignCenter)
}

func (w *CountdownWidget) cdFullLines(width int) []string {
	lines := []string{
		fg(w.th.Title).Bold(true).Render(w.title),
	}
	if w.subtitle != "" {
		lines = append(lines, fg(w.th.Subtitle).Render(w.subtitle))
	}
	lines = append(lines,
		"",
		w.cdClockLine(),
		fg(w.th.Caption).Render(w.caption),
		"",
		w.cdProgressLine(width),
	)

	if q, ok := w.Quote(); ok {
		lines = append(lines, "")
		lines = append(lines, w.cdQuoteLines(q, width)...)
	}
	return lines
}

func (w *CountdownWidget) cdCompactLines(width, height int) []string {
	switch {
	case height >= 3:
		return []string{
			fg(w.th.Title).Bold(true).Render(w.title),
			w.cdClockLine(),
			w.cdProgressLine(width),
		}
	case height == 2:
		return []string{w.cdClockLine(), w.cdProgressLine(width)}
	default:
		return []string{w.cdClockLine()}
	}
}

func (w *CountdownWidget) cdClockLine() string {
	readout := fg(w.th.Clock).Bold(true).Render(w.state.Remaining.String())
	if w.state.Done {
		return readout
	}
	return w.spin.View() + " " + readout
}

func (w *CountdownWidget) cdProgressLine(width int) string {
	pct := w.state.ProgressString()
	barW := width - len(pct) - 1
	if barW > cdGaugeWidth {
		barW = cdGaugeWidth
	}
	pctText := fg(w.th.Foreground).Render(pct)
	if barW < 4 {
		return pctText
	}

	filled := w.th.ProgressFilled
	if w.state.Done {
		filled = w.th.ProgressDone
	}
	g := components.NewGauge(components.GaugeStyle{
		FilledColor: filled,
		EmptyColor:  w.th.ProgressEmpty,
	})
	return g.Render(w.state.Progress, barW) + " " + pctText
}

// cdQuoteLines wraps the quote and its author. When zones are enabled the
// block is marked so a click on it advances the rotator.
func (w *CountdownWidget) cdQuoteLines(q quotes.Quote, width int) []string {
	wrapW := width - 4
	if wrapW < 10 {
		wrapW = width
	}

	quoteStyle := fg(w.th.Quote).Italic(true)
	var block []string
	for _, l := range components.Wrap("“"+q.Text+"”", wrapW) {
		block = append(block, quoteStyle.Render(l))
	}
	if q.Author != "" {
		block = append(block, fg(w.th.Author).Render("— "+q.Author))
	}

	if w.zones == nil {
		return block
	}
	return strings.Split(w.zones.Mark(cdQuoteZone, strings.Join(block, "\n")), "\n")
}
