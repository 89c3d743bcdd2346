package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/internal/config"
	"github.com/alexisbeaulieu97/consolekit/internal/logger"
	"github.com/alexisbeaulieu97/consolekit/pkg/output"
)

// appContext bundles what every subcommand renders with.
type appContext struct {
	Config  *config.Config
	Log     *logger.Logger
	Console *output.Console
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, newCommandError(cmd.Name(), "loading theme file", err, "Check the file against the documented theme keys.")
		}
		cfg = loaded
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human,
		NoColor:       flags.noColor,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of debug, info, warn or error.")
	}
	log = log.WithFields(map[string]any{"command": cmd.Name()})

	console := output.New(output.Options{
		Writer:  cmd.OutOrStdout(),
		Width:   flags.width,
		NoColor: flags.noColor,
		Logger:  log,
	})

	return &appContext{Config: cfg, Log: log, Console: console}, nil
}
