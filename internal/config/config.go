// Package config loads bot configuration from HCL with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/threeboard/internal/allocate"
	"github.com/lox/threeboard/internal/assign"
	"github.com/lox/threeboard/internal/decide"
	"github.com/lox/threeboard/internal/deck"
	"github.com/lox/threeboard/internal/player"
)

// Environment variables that override the file
const (
	// EnvServer is the websocket URL of the round engine
	EnvServer = "THREEBOARD_SERVER"

	// EnvSeed seeds every random choice the bot makes
	EnvSeed = "THREEBOARD_SEED"

	// EnvBotID identifies this bot to the engine
	EnvBotID = "THREEBOARD_BOT_ID"

	// EnvStrategy selects the playing strategy
	EnvStrategy = "THREEBOARD_STRATEGY"
)

// Config is the complete bot configuration
type Config struct {
	Bot        BotSettings
	Heuristics HeuristicSettings
}

// BotSettings control the process and its connection
type BotSettings struct {
	Name           string `hcl:"name,optional"`
	Server         string `hcl:"server,optional"`
	BotID          string `hcl:"bot_id,optional"`
	Strategy       string `hcl:"strategy,optional"`
	StrengthTable  string `hcl:"strength_table,optional"`
	TableSamples   int    `hcl:"table_samples,optional"`
	Seed           int64  `hcl:"seed,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	TimeoutSeconds int    `hcl:"timeout_seconds,optional"`
}

// HeuristicSettings are the tunable constants of allocation and betting
type HeuristicSettings struct {
	MinPairRank           string  `hcl:"min_pair_rank,optional"`
	PreflopRaiseFraction  float64 `hcl:"preflop_raise_fraction,optional"`
	PostflopRaiseFraction float64 `hcl:"postflop_raise_fraction,optional"`
	RepeatRaiseThreshold  int     `hcl:"repeat_raise_threshold,optional"`
	RepeatRaisePenalty    float64 `hcl:"repeat_raise_penalty,optional"`
	LargeBetThreshold     int     `hcl:"large_bet_threshold,optional"`
	LargeBetPenalty       float64 `hcl:"large_bet_penalty,optional"`
	SwapProbability       float64 `hcl:"swap_probability,optional"`
}

// file mirrors the HCL layout; both blocks may be omitted
type file struct {
	Bot        *BotSettings `hcl:"bot,block"`
	Heuristics *heuristics  `hcl:"heuristics,block"`
}

// heuristics uses pointers so an explicit zero is kept
type heuristics struct {
	MinPairRank           *string  `hcl:"min_pair_rank,optional"`
	PreflopRaiseFraction  *float64 `hcl:"preflop_raise_fraction,optional"`
	PostflopRaiseFraction *float64 `hcl:"postflop_raise_fraction,optional"`
	RepeatRaiseThreshold  *int     `hcl:"repeat_raise_threshold,optional"`
	RepeatRaisePenalty    *float64 `hcl:"repeat_raise_penalty,optional"`
	LargeBetThreshold     *int     `hcl:"large_bet_threshold,optional"`
	LargeBetPenalty       *float64 `hcl:"large_bet_penalty,optional"`
	SwapProbability       *float64 `hcl:"swap_probability,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	params := decide.DefaultParams()
	return &Config{
		Bot: BotSettings{
			Name:           "threeboard",
			Server:         "ws://localhost:8080/ws",
			Strategy:       string(player.StrategyPrecompute),
			StrengthTable:  "hole_strengths.csv",
			TableSamples:   20000,
			LogLevel:       "info",
			TimeoutSeconds: 5,
		},
		Heuristics: HeuristicSettings{
			MinPairRank:           allocate.DefaultMinPairRank.String(),
			PreflopRaiseFraction:  params.PreflopRaiseFraction,
			PostflopRaiseFraction: params.PostflopRaiseFraction,
			RepeatRaiseThreshold:  params.RepeatRaiseThreshold,
			RepeatRaisePenalty:    params.RepeatRaisePenalty,
			LargeBetThreshold:     params.LargeBetThreshold,
			LargeBetPenalty:       params.LargeBetPenalty,
			SwapProbability:       assign.DefaultSwapProbability,
		},
	}
}

// Load reads filename, falling back to defaults for anything it leaves
// out. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if raw.Bot != nil {
		cfg.Bot.merge(*raw.Bot)
	}
	if raw.Heuristics != nil {
		cfg.Heuristics.merge(*raw.Heuristics)
	}

	return cfg, nil
}

func (b *BotSettings) merge(o BotSettings) {
	if o.Name != "" {
		b.Name = o.Name
	}
	if o.Server != "" {
		b.Server = o.Server
	}
	if o.BotID != "" {
		b.BotID = o.BotID
	}
	if o.Strategy != "" {
		b.Strategy = o.Strategy
	}
	if o.StrengthTable != "" {
		b.StrengthTable = o.StrengthTable
	}
	if o.TableSamples != 0 {
		b.TableSamples = o.TableSamples
	}
	if o.Seed != 0 {
		b.Seed = o.Seed
	}
	if o.LogLevel != "" {
		b.LogLevel = o.LogLevel
	}
	if o.TimeoutSeconds != 0 {
		b.TimeoutSeconds = o.TimeoutSeconds
	}
}

func (h *HeuristicSettings) merge(o heuristics) {
	if o.MinPairRank != nil {
		h.MinPairRank = *o.MinPairRank
	}
	if o.PreflopRaiseFraction != nil {
		h.PreflopRaiseFraction = *o.PreflopRaiseFraction
	}
	if o.PostflopRaiseFraction != nil {
		h.PostflopRaiseFraction = *o.PostflopRaiseFraction
	}
	if o.RepeatRaiseThreshold != nil {
		h.RepeatRaiseThreshold = *o.RepeatRaiseThreshold
	}
	if o.RepeatRaisePenalty != nil {
		h.RepeatRaisePenalty = *o.RepeatRaisePenalty
	}
	if o.LargeBetThreshold != nil {
		h.LargeBetThreshold = *o.LargeBetThreshold
	}
	if o.LargeBetPenalty != nil {
		h.LargeBetPenalty = *o.LargeBetPenalty
	}
	if o.SwapProbability != nil {
		h.SwapProbability = *o.SwapProbability
	}
}

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment without replacing variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from THREEBOARD_* variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvServer); v != "" {
		c.Bot.Server = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Bot.Seed = seed
	}
	if v := os.Getenv(EnvBotID); v != "" {
		c.Bot.BotID = v
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Bot.Strategy = v
	}
	return nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.Bot.Server == "" {
		return fmt.Errorf("server URL is required")
	}
	if c.Bot.Name == "" {
		return fmt.Errorf("bot name is required")
	}
	if _, err := player.ParseStrategy(c.Bot.Strategy); err != nil {
		return err
	}
	if c.Bot.StrengthTable == "" {
		return fmt.Errorf("strength table path is required")
	}
	if c.Bot.TableSamples <= 0 {
		return fmt.Errorf("table samples must be positive")
	}
	if c.Bot.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if _, err := log.ParseLevel(c.Bot.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Bot.LogLevel)
	}

	h := c.Heuristics
	if _, err := h.minPairRank(); err != nil {
		return err
	}
	for name, v := range map[string]float64{
		"preflop raise fraction":  h.PreflopRaiseFraction,
		"postflop raise fraction": h.PostflopRaiseFraction,
	} {
		if v < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	for name, v := range map[string]float64{
		"repeat raise penalty": h.RepeatRaisePenalty,
		"large bet penalty":    h.LargeBetPenalty,
		"swap probability":     h.SwapProbability,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
	}
	if h.RepeatRaiseThreshold < 0 {
		return fmt.Errorf("repeat raise threshold cannot be negative")
	}
	if h.LargeBetThreshold < 0 {
		return fmt.Errorf("large bet threshold cannot be negative")
	}

	return nil
}

func (h HeuristicSettings) minPairRank() (deck.Rank, error) {
	if len(h.MinPairRank) != 1 {
		return 0, fmt.Errorf("invalid min pair rank %q", h.MinPairRank)
	}
	r, err := deck.ParseRank(h.MinPairRank[0])
	if err != nil {
		return 0, fmt.Errorf("invalid min pair rank %q: %w", h.MinPairRank, err)
	}
	return r, nil
}

// PlayerOptions converts the heuristics into player options
func (c *Config) PlayerOptions() (player.Options, error) {
	strategy, err := player.ParseStrategy(c.Bot.Strategy)
	if err != nil {
		return player.Options{}, err
	}
	minPair, err := c.Heuristics.minPairRank()
	if err != nil {
		return player.Options{}, err
	}

	h := c.Heuristics
	return player.Options{
		Strategy: strategy,
		Params: decide.Params{
			PreflopRaiseFraction:  h.PreflopRaiseFraction,
			PostflopRaiseFraction: h.PostflopRaiseFraction,
			RepeatRaiseThreshold:  h.RepeatRaiseThreshold,
			RepeatRaisePenalty:    h.RepeatRaisePenalty,
			LargeBetThreshold:     h.LargeBetThreshold,
			LargeBetPenalty:       h.LargeBetPenalty,
		},
		MinPairRank:     minPair,
		SwapProbability: h.SwapProbability,
	}, nil
}

// Level returns the configured log level, defaulting to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Bot.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Timeout is the decision time after which the client warns
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Bot.TimeoutSeconds) * time.Second
}
