package widgets

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/year-pulse/pkg/app"
	"gitlab.com/tinyland/lab/year-pulse/pkg/clock"
	"gitlab.com/tinyland/lab/year-pulse/pkg/components"
	"gitlab.com/tinyland/lab/year-pulse/pkg/countdown"
	"gitlab.com/tinyland/lab/year-pulse/pkg/quotes"
	"gitlab.com/tinyland/lab/year-pulse/pkg/theme"
)

var cdTestTarget = time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

func cdTestOptions(now time.Time) CountdownOptions {
	return CountdownOptions{
		Countdown:  countdown.New(cdTestTarget),
		Quotes:     quotes.Builtin(),
		ShowQuotes: true,
		Theme:      theme.Get("default"),
		Title:      "2025",
		Subtitle:   "Your Story Awaits",
		Caption:    "Time remaining in 2025",
		Clock:      clock.Fixed{T: now},
	}
}

func newTestWidget(t *testing.T, now time.Time) *CountdownWidget {
	t.Helper()
	w, err := NewCountdownWidget(cdTestOptions(now))
	if err != nil {
		t.Fatalf("NewCountdownWidget: %v", err)
	}
	return w
}

func TestCountdownInitialState(t *testing.T) {
	now := time.Date(2025, 10, 20, 19, 57, 43, 0, time.UTC)
	w := newTestWidget(t, now)

	st := w.State()
	if got := st.Remaining.String(); got != "72d 4h 2m 16s" {
		t.Errorf("remaining = %q, want 72d 4h 2m 16s", got)
	}
	if st.Done {
		t.Error("state should not be done")
	}
	if w.QuoteIndex() != 0 {
		t.Errorf("quote index = %d, want 0", w.QuoteIndex())
	}
}

func TestCountdownTickRecomputes(t *testing.T) {
	w := newTestWidget(t, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC))
	w.Update(app.TickEvent{Time: time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)})

	if got := w.State().Remaining.String(); got != "0d 0h 0m 59s" {
		t.Errorf("remaining = %q, want 0d 0h 0m 59s", got)
	}
}

func TestCountdownLogsCrossingOnce(t *testing.T) {
	var buf bytes.Buffer
	opts := cdTestOptions(cdTestTarget.Add(-2 * time.Second))
	opts.Logger = slog.New(slog.NewTextHandler(&buf, nil))
	w, err := NewCountdownWidget(opts)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		w.Update(app.TickEvent{Time: cdTestTarget.Add(time.Duration(i-1) * time.Second)})
	}

	if n := strings.Count(buf.String(), "target reached"); n != 1 {
		t.Errorf("logged crossing %d times, want 1:\n%s", n, buf.String())
	}
	st := w.State()
	if !st.Done || !st.Remaining.IsZero() || st.Progress != 100 {
		t.Errorf("after target: %+v", st)
	}
}

func TestCountdownQuoteTickRotates(t *testing.T) {
	w := newTestWidget(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	for i := 0; i < 7; i++ {
		w.Update(app.QuoteTickEvent{Time: time.Now()})
	}
	if w.QuoteIndex() != 1 {
		t.Errorf("quote index after 7 rotations = %d, want 1", w.QuoteIndex())
	}
}

func TestCountdownQuoteKeys(t *testing.T) {
	w := newTestWidget(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	w.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	w.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	if w.QuoteIndex() != 2 {
		t.Errorf("after n, right: index = %d, want 2", w.QuoteIndex())
	}

	w.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	w.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	w.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	if w.QuoteIndex() != 2 {
		t.Errorf("after p, left, left: index = %d, want 2", w.QuoteIndex())
	}
}

func TestCountdownWithoutQuotes(t *testing.T) {
	opts := cdTestOptions(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	opts.ShowQuotes = false
	opts.Quotes = nil
	w, err := NewCountdownWidget(opts)
	if err != nil {
		t.Fatalf("hidden quotes should not need a list: %v", err)
	}

	w.Update(app.QuoteTickEvent{Time: time.Now()})
	if w.QuoteIndex() != -1 {
		t.Errorf("QuoteIndex = %d, want -1", w.QuoteIndex())
	}
	if len(w.KeyBindings()) != 0 {
		t.Error("quote bindings should be hidden")
	}
	if out := ansi.Strip(w.View(60, 20)); strings.Contains(out, "Fullmetal") {
		t.Error("quote rendered while hidden")
	}
}

func TestCountdownEmptyQuotesRejected(t *testing.T) {
	opts := cdTestOptions(time.Now())
	opts.Quotes = nil
	if _, err := NewCountdownWidget(opts); err == nil {
		t.Error("expected error for empty quote list")
	}
}

func TestCountdownViewFull(t *testing.T) {
	now := time.Date(2025, 10, 20, 19, 57, 43, 0, time.UTC)
	w := newTestWidget(t, now)

	out := ansi.Strip(w.View(60, 20))
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for i, l := range lines {
		if components.VisibleLen(l) != 60 {
			t.Errorf("line %d width = %d, want 60", i, components.VisibleLen(l))
		}
	}
	for _, want := range []string{
		"2025",
		"Your Story Awaits",
		"72d 4h 2m 16s",
		"Time remaining in 2025",
		w.State().ProgressString(),
		"A lesson without pain is meaningless.",
		"Fullmetal Alchemist: Brotherhood",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestCountdownViewCompact(t *testing.T) {
	w := newTestWidget(t, time.Date(2025, 10, 20, 19, 57, 43, 0, time.UTC))

	out := ansi.Strip(w.View(40, 3))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(out, "72d 4h 2m 16s") {
		t.Errorf("compact view missing remaining time:\n%s", out)
	}
	if strings.Contains(out, "Fullmetal") {
		t.Error("compact view should drop the quote")
	}

	if one := ansi.Strip(w.View(40, 1)); !strings.Contains(one, "72d") {
		t.Errorf("single-line view = %q", one)
	}
}

func TestCountdownViewZero(t *testing.T) {
	w := newTestWidget(t, time.Now())
	if w.View(0, 10) != "" || w.View(10, 0) != "" {
		t.Error("expected empty output for zero dimensions")
	}
}

func TestCountdownViewDone(t *testing.T) {
	w := newTestWidget(t, cdTestTarget.Add(time.Hour))
	out := ansi.Strip(w.View(60, 20))
	if !strings.Contains(out, "0d 0h 0m 0s") || !strings.Contains(out, "100.0%") {
		t.Errorf("done view:\n%s", out)
	}
	if w.Init() != nil {
		t.Error("spinner should not start once the target has passed")
	}
}

func TestCountdownSpinnerTick(t *testing.T) {
	w := newTestWidget(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	cmd := w.Init()
	if cmd == nil {
		t.Fatal("Init should start the spinner")
	}
	if out := ansi.Strip(w.View(60, 20)); !strings.Contains(out, "⏳") {
		t.Errorf("first hourglass frame missing:\n%s", out)
	}
	msg, ok := cmd().(spinner.TickMsg)
	if !ok {
		t.Fatal("expected spinner.TickMsg")
	}
	if w.Update(msg) == nil {
		t.Error("spinner should re-arm while counting down")
	}
	if out := ansi.Strip(w.View(60, 20)); !strings.Contains(out, "⌛") {
		t.Errorf("hourglass did not flip:\n%s", out)
	}
}

func TestCountdownMouseWithoutZones(t *testing.T) {
	w := newTestWidget(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	w.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if w.QuoteIndex() != 0 {
		t.Error("click without zones should be ignored")
	}
}

func TestCountdownClickOnQuoteAdvances(t *testing.T) {
	zones := zone.New()
	defer zones.Close()

	opts := cdTestOptions(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	opts.Zones = zones
	w, err := NewCountdownWidget(opts)
	if err != nil {
		t.Fatalf("NewCountdownWidget: %v", err)
	}

	out := zones.Scan(w.View(80, 20))
	if !strings.Contains(ansi.Strip(out), "Your Story Awaits") {
		t.Fatalf("scanned view lost its content:\n%s", out)
	}

	// Scan hands zone positions to a worker goroutine.
	var z *zone.ZoneInfo
	for deadline := time.Now().Add(time.Second); time.Now().Before(deadline); time.Sleep(5 * time.Millisecond) {
		if z = zones.Get(cdQuoteZone); !z.IsZero() {
			break
		}
	}
	if z.IsZero() {
		t.Fatal("quote zone was never recorded")
	}

	click := func(x, y int) {
		w.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	}

	click(0, 0)
	if w.QuoteIndex() != 0 {
		t.Fatalf("click outside the quote moved index to %d", w.QuoteIndex())
	}

	w.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if w.QuoteIndex() != 0 {
		t.Fatalf("press without release moved index to %d", w.QuoteIndex())
	}

	click(z.StartX, z.StartY)
	if w.QuoteIndex() != 1 {
		t.Errorf("click on quote: index = %d, want 1", w.QuoteIndex())
	}
	click(z.EndX, z.EndY)
	if w.QuoteIndex() != 2 {
		t.Errorf("click on quote end: index = %d, want 2", w.QuoteIndex())
	}
	click(z.EndX+1, z.EndY+1)
	if w.QuoteIndex() != 2 {
		t.Errorf("click below the quote moved index to %d", w.QuoteIndex())
	}
}

func TestCountdownThemeDoesNotChangeValues(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	a := newTestWidget(t, now)
	opts := cdTestOptions(now)
	opts.Theme = theme.Get("dracula")
	b, err := NewCountdownWidget(opts)
	if err != nil {
		t.Fatal(err)
	}
	if a.State() != b.State() {
		t.Errorf("theme changed state: %+v vs %+v", a.State(), b.State())
	}
	if ansi.Strip(a.View(60, 20)) != ansi.Strip(b.View(60, 20)) {
		t.Error("theme changed the visible text")
	}
}
