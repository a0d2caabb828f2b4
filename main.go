// year-pulse counts down to the end of the year (or any configured instant)
// in the terminal.
//
// It runs as a full-screen Bubble Tea TUI by default, prints a single
// framed snapshot with --banner, or a one-line prompt segment with
// --starship.
//
// Usage:
//
//	year-pulse [flags]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"gitlab.com/tinyland/lab/year-pulse/pkg/app"
	"gitlab.com/tinyland/lab/year-pulse/pkg/banner"
	"gitlab.com/tinyland/lab/year-pulse/pkg/clock"
	"gitlab.com/tinyland/lab/year-pulse/pkg/config"
	"gitlab.com/tinyland/lab/year-pulse/pkg/countdown"
	"gitlab.com/tinyland/lab/year-pulse/pkg/shell"
	"gitlab.com/tinyland/lab/year-pulse/pkg/starship"
	"gitlab.com/tinyland/lab/year-pulse/pkg/terminal"
	"gitlab.com/tinyland/lab/year-pulse/pkg/theme"
	"gitlab.com/tinyland/lab/year-pulse/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "year-pulse: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath  string
	banner      bool
	preset      string
	starship    bool
	shell       string
	theme       string
	target      string
	color       string
	listThemes  bool
	dumpTheme   bool
	noMouse     bool
	termWidth   int
	termHeight  int
	verbose     bool
	showVersion bool
	help        bool
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	var o options
	flagSet := pflag.NewFlagSet("year-pulse", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&o.configPath, "config", "c", os.Getenv("YEAR_PULSE_CONFIG"), "path to config file (default: $XDG_CONFIG_HOME/year-pulse/config.toml)")
	flagSet.BoolVar(&o.banner, "banner", false, "print a single static frame and exit")
	flagSet.StringVar(&o.preset, "preset", "", "banner size: compact, standard or wide (default: fit terminal)")
	flagSet.BoolVar(&o.starship, "starship", false, "print a one-line starship segment and exit")
	flagSet.StringVar(&o.shell, "shell", "", "print the shell startup snippet for bash, zsh, fish, ksh or auto, and exit")
	flagSet.StringVarP(&o.theme, "theme", "t", "", "color theme (overrides config and YEAR_PULSE_THEME)")
	flagSet.StringVar(&o.target, "target", "", "countdown target, e.g. 2026-12-31T23:59:59 (overrides config and YEAR_PULSE_TARGET)")
	flagSet.StringVar(&o.color, "color", "auto", "color mode: auto, truecolor, 256, 16 or none")
	flagSet.BoolVar(&o.listThemes, "list-themes", false, "list available themes and exit")
	flagSet.BoolVar(&o.dumpTheme, "dump-theme", false, "print the selected theme as TOML (a starting point for theme_file) and exit")
	flagSet.BoolVar(&o.noMouse, "no-mouse", false, "disable mouse support in the TUI")
	flagSet.IntVar(&o.termWidth, "term-width", 0, "terminal width override (0 = auto-detect)")
	flagSet.IntVar(&o.termHeight, "term-height", 0, "terminal height override (0 = auto-detect)")
	flagSet.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	flagSet.BoolVar(&o.showVersion, "version", false, "print version and exit")
	flagSet.BoolVarP(&o.help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			o.help = true
			return &o, flagSet, nil
		}
		return nil, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if o.banner && o.starship {
		return nil, flagSet, errors.New("--banner and --starship are mutually exclusive")
	}
	return &o, flagSet, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `year-pulse counts down to the end of the year in your terminal.

Usage:
  year-pulse [flags]

Modes:
  (default)     interactive full-screen countdown
  --banner      one static frame sized to the terminal
  --starship    one-line prompt segment
  --shell SH    rc snippet that prints the banner in new shells

Flags:
%s`, flagSet.FlagUsages())
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, flagSet, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(stdout, flagSet)
		return nil
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "year-pulse %s (%s) built %s\n", version, commit, date)
		return nil
	}

	if opts.shell != "" {
		return printShellIntegration(stdout, opts)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.listThemes {
		for _, name := range theme.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.dumpTheme {
		data, err := theme.SaveToTOML(theme.Get(cfg.Display.Theme))
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	tui := !opts.banner && !opts.starship
	logger, closeLog, err := setupLogger(cfg.General, tui, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	now := clock.Real{}.Now()
	cd, err := cfg.Countdown.Resolve(now)
	if err != nil {
		return err
	}
	logger.Debug("countdown resolved",
		"target", cd.Target,
		"range_start", cd.RangeStart,
		"clamp", cd.Clamp)

	caps := terminal.DetectCapabilities()
	profile, err := terminal.ParseProfile(opts.color, terminal.ProfileFor(stdout))
	if err != nil {
		return err
	}
	lipgloss.SetColorProfile(profile)
	th := theme.Adapt(theme.Get(cfg.Display.Theme), profile)
	theme.Current = th
	logger.Debug("terminal",
		"profile", terminal.ProfileName(profile),
		"cols", caps.Size.Cols,
		"rows", caps.Size.Rows,
		"mux", caps.Mux,
		"ssh", caps.SSH)

	switch {
	case opts.starship:
		line := starship.Render(starship.Config{
			Icon:         cfg.Starship.Icon,
			MaxWidth:     cfg.Starship.MaxWidth,
			ShowProgress: cfg.Starship.ShowProgress,
			Color:        profile != termenv.Ascii,
		}, cd.At(now))
		fmt.Fprintln(stdout, line)
		return nil

	case opts.banner:
		w, err := newCountdownWidget(cfg, cd, th, nil, logger)
		if err != nil {
			return err
		}
		size := caps.Size.Override(opts.termWidth, opts.termHeight)
		preset := banner.SelectPreset(size.Cols, size.Rows)
		if opts.preset != "" {
			p, ok := banner.PresetByName(opts.preset)
			if !ok {
				return fmt.Errorf("unknown preset %q (available: compact, standard, wide)", opts.preset)
			}
			preset = p
		}
		logger.Debug("banner", "preset", preset.Name)
		fmt.Fprintln(stdout, banner.Render(w, preset))
		return nil
	}

	if !caps.Interactive {
		return errors.New("not a terminal; use --banner or --starship for non-interactive output")
	}
	return runTUI(cfg, cd, th, opts, logger)
}

func printShellIntegration(w io.Writer, opts *options) error {
	sh, err := shell.Parse(opts.shell)
	if err != nil {
		return err
	}
	bin, err := os.Executable()
	if err != nil {
		bin = "year-pulse"
	}
	fmt.Fprint(w, shell.Integration(sh, shell.IntegrationConfig{
		Binary: bin,
		Preset: opts.preset,
	}))
	return nil
}

// loadConfig reads the config file and applies --theme, --target,
// --verbose and the theme file.
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if cfg.Display.ThemeFile != "" {
		t, err := theme.LoadFile(cfg.Display.ThemeFile)
		if err != nil {
			return nil, err
		}
		if os.Getenv("YEAR_PULSE_THEME") == "" {
			cfg.Display.Theme = t.Name
		}
	}
	if opts.theme != "" {
		cfg.Display.Theme = opts.theme
		cfg.Display.ThemeFile = ""
	}
	if opts.target != "" {
		cfg.Countdown.Target = opts.target
	}
	if opts.verbose {
		cfg.General.LogLevel = "debug"
	}
	return cfg, nil
}

func newCountdownWidget(cfg *config.Config, cd countdown.Countdown, th theme.Theme, zones *zone.Manager, logger *slog.Logger) (*widgets.CountdownWidget, error) {
	list, err := cfg.Quotes.QuoteList()
	if err != nil {
		return nil, err
	}
	title, subtitle, caption := cfg.Display.Labels(cd.Target)
	return widgets.NewCountdownWidget(widgets.CountdownOptions{
		Countdown:  cd,
		Quotes:     list,
		QuoteStart: cfg.Quotes.StartIndex,
		ShowQuotes: cfg.Display.ShowQuotes,
		Theme:      th,
		Title:      title,
		Subtitle:   subtitle,
		Caption:    caption,
		Zones:      zones,
		Logger:     logger,
	})
}

// runTUI runs the interactive program until quit, SIGINT or SIGTERM.
func runTUI(cfg *config.Config, cd countdown.Countdown, th theme.Theme, opts *options, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var zones *zone.Manager
	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if !opts.noMouse {
		zones = zone.New()
		defer zones.Close()
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	w, err := newCountdownWidget(cfg, cd, th, zones, logger)
	if err != nil {
		return err
	}

	model := app.NewAppModel(app.Config{
		TickInterval:  cfg.Countdown.TickInterval.Or(time.Second),
		QuoteInterval: cfg.Countdown.QuoteInterval.Duration,
		Keys:          app.DefaultKeyMap(),
		Theme:         th,
		Zones:         zones,
		Logger:        logger,
	}, w)

	logger.Info("starting tui", "version", version, "theme", th.Name)
	_, err = tea.NewProgram(model, progOpts...).Run()
	switch {
	case err == nil:
		logger.Info("tui exited")
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		logger.Info("tui stopped by signal")
		return nil
	default:
		return fmt.Errorf("tui: %w", err)
	}
}

// setupLogger logs to the configured file in TUI mode, where stderr would
// corrupt the screen, and to stderr otherwise.
func setupLogger(g config.GeneralConfig, tui bool, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := config.ParseLogLevel(g.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if !tui && level > slog.LevelDebug {
		// Prompt modes print only warnings unless debugging.
		level = max(level, slog.LevelWarn)
	}
	hopts := &slog.HandlerOptions{Level: level}

	if !tui || g.LogFile == "" {
		return slog.New(slog.NewTextHandler(stderr, hopts)), func() {}, nil
	}

	if err := ensureLogDir(g.LogFile); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, hopts)), func() { _ = f.Close() }, nil
}

func ensureLogDir(logFile string) error {
	return os.MkdirAll(filepath.Dir(logFile), 0o755)
}
