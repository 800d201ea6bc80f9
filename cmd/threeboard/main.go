package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Connect to the round engine and play"`
	GenTable GenTableCmd      `cmd:"gen-table" help:"Build the hole strength table offline"`
	Allocate AllocateCmd      `cmd:"" help:"Show how a six-card hand would be split across boards"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("threeboard"),
		kong.Description("Three-board heads-up poker bot"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

func stderrLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return newLogger(os.Stderr, lvl)
}
