package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/threeboard/internal/client"
	"github.com/lox/threeboard/internal/config"
	"github.com/lox/threeboard/internal/player"
	"github.com/lox/threeboard/internal/randutil"
	"github.com/lox/threeboard/internal/strength"
)

type PlayCmd struct {
	Config   string `short:"c" default:"threeboard.hcl" help:"Path to HCL configuration file"`
	EnvFile  string `default:".env" help:"Dotenv file loaded before the environment is read"`
	Server   string `help:"Engine websocket URL (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

func (c *PlayCmd) Run() error {
	if err := config.LoadDotEnv(c.EnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if c.Server != "" {
		cfg.Bot.Server = c.Server
	}
	if c.LogLevel != "" {
		cfg.Bot.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.Level())

	seed := randutil.Resolve(cfg.Bot.Seed)
	logger.Info("Starting bot", "name", cfg.Bot.Name, "strategy", cfg.Bot.Strategy, "seed", seed, "version", version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := loadTable(ctx, logger, cfg.Bot.StrengthTable, cfg.Bot.TableSamples, seed)
	if err != nil {
		return err
	}

	opts, err := cfg.PlayerOptions()
	if err != nil {
		return err
	}
	p, err := player.New(table, randutil.New(seed), logger, opts)
	if err != nil {
		return err
	}

	cl := client.New(p, logger, client.Options{
		ServerURL: cfg.Bot.Server,
		Name:      cfg.Bot.Name,
		BotID:     cfg.Bot.BotID,
		Timeout:   cfg.Timeout(),
	})
	if err := cl.Connect(ctx); err != nil {
		return err
	}

	err = cl.Run(ctx)
	stats := cl.Stats()
	logger.Info("Session finished",
		"rounds", stats.Rounds,
		"requests", stats.Requests,
		"errors", stats.Errors,
		"slow_decisions", stats.SlowDecisions,
		"bankroll", stats.Bankroll,
		"mean_delta", stats.Results.Mean())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadTable reads the strength table, building one in memory when the file
// does not exist yet.
func loadTable(ctx context.Context, logger *log.Logger, path string, samples int, seed int64) (*strength.Table, error) {
	table, err := strength.Load(path)
	if err == nil {
		if !table.Complete() {
			return nil, fmt.Errorf("%s: %d holes missing", path, len(table.Missing()))
		}
		logger.Info("Loaded strength table", "path", path, "entries", table.Len())
		return table, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	logger.Warn("Strength table not found, generating", "path", path, "samples", samples)
	return strength.Generate(ctx, strength.GenerateOptions{
		Samples: samples,
		Seed:    seed,
	})
}
