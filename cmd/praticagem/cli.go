package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/marcusvs/praticagem"
)

// Dependencies holds services and IO for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Movements praticagem.MovementService
}

// CLI defines the command-line interface structure for Kong. Every
// connection flag can also come from the environment, which keeps the
// container deployment configurable without arguments.
type CLI struct {
	URL         string        `env:"PRATICAGEM_URL" default:"https://praticoszp21.com.br/movimentacao-de-navios/" help:"Movement page URL."`
	Timeout     time.Duration `env:"PRATICAGEM_TIMEOUT" default:"10s" help:"Per-attempt fetch timeout."`
	MaxAttempts int           `env:"PRATICAGEM_MAX_RETRIES" default:"3" help:"Fetch attempts before giving up."`
	Backoff     time.Duration `env:"PRATICAGEM_RETRY_BACKOFF" default:"2s" help:"Pause between fetch attempts."`
	RPS         float64       `env:"PRATICAGEM_RPS" default:"1" help:"Request rate limit against the source site (0 disables)."`
	Debug       bool          `help:"Enable debug logging."`

	Serve ServeCmd `cmd:"" help:"Start the REST API server."`
	Fetch FetchCmd `cmd:"" help:"Scrape once and print the movements as JSON."`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port int `env:"SERVER_PORT" default:"7000" help:"HTTP listen port."`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct{}
