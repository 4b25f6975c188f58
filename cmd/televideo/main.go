package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/televideo"
	"github.com/fwojciec/televideo/client"
	"github.com/fwojciec/televideo/goquery"
	tvhttp "github.com/fwojciec/televideo/http"
	tvslog "github.com/fwojciec/televideo/slog"
	"github.com/fwojciec/televideo/tui"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service used by the browser. Nil means Run wires the real stack;
	// tests inject a mock here.
	Service televideo.PageService

	// Input the program reads key presses from. Nil means the terminal.
	Input io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("televideo"),
		kong.Description("Browse RAI Televideo teletext pages in the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	for _, arg := range args {
		if arg == "--help" || arg == "-h" || arg == "help" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Page < televideo.MinPage || cli.Page > televideo.MaxPage {
		return televideo.Errorf(televideo.EINVALID, "page must be between %d and %d", televideo.MinPage, televideo.MaxPage)
	}
	if cli.SubPage < 1 {
		return televideo.Errorf(televideo.EINVALID, "sub-page must be at least 1")
	}
	if cli.RPS < 0 {
		return televideo.Errorf(televideo.EINVALID, "rps must not be negative")
	}

	// A TUI owns the terminal, so logs go to a file or nowhere.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Log != "" {
		f, err := os.OpenFile(cli.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	svc := m.Service
	if svc == nil {
		fetcher := tvhttp.NewFetcher(
			tvhttp.WithTimeout(cli.Timeout),
			tvhttp.WithRateLimit(cli.RPS),
		)
		svc = client.New(
			tvslog.NewLoggingFetcher(fetcher, logger),
			goquery.NewExtractor(),
		)
	}
	svc = tvslog.NewLoggingPageService(svc, logger)

	mode := tui.ModeImage
	if cli.Text {
		mode = tui.ModeText
	}

	model := tui.New(svc,
		tui.WithStartPage(cli.Page, cli.SubPage),
		tui.WithMode(mode),
	)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(stdout),
		tea.WithContext(ctx),
	}
	if m.Input != nil {
		opts = append(opts, tea.WithInput(m.Input))
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	return nil
}
