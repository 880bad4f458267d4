package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/time/rate"

	"github.com/marcusvs/praticagem"
	"github.com/marcusvs/praticagem/goquery"
	praticagemhttp "github.com/marcusvs/praticagem/http"
	"github.com/marcusvs/praticagem/pipeline"
	praticagemslog "github.com/marcusvs/praticagem/slog"
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
	// Movements is the wired pipeline, kept for end-to-end testing.
	Movements praticagem.MovementService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("praticagem"),
		kong.Description("Vessel-movement scraper for the port of Itajaí-SC"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'praticagem --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the pipeline: retrying fetcher -> table extractor, both behind
	// logging decorators.
	opts := []praticagemhttp.Option{
		praticagemhttp.WithTimeout(cli.Timeout),
		praticagemhttp.WithMaxAttempts(cli.MaxAttempts),
		praticagemhttp.WithBackoff(cli.Backoff),
	}
	if cli.RPS > 0 {
		opts = append(opts, praticagemhttp.WithLimiter(rate.NewLimiter(rate.Limit(cli.RPS), 1)))
	}

	var fetcher praticagem.Fetcher = praticagemhttp.NewFetcher(cli.URL, opts...)
	fetcher = praticagemslog.NewLoggingFetcher(fetcher, logger)

	var movements praticagem.MovementService = pipeline.NewService(fetcher, goquery.NewExtractor())
	movements = praticagemslog.NewLoggingMovementService(movements, logger)
	m.Movements = movements

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Movements: movements,
	}

	return kongCtx.Run(deps)
}
