package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/pkg/logging"
)

type logOptions struct {
	level string
}

func newLogCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &logOptions{}

	cmd := &cobra.Command{
		Use:   "log MESSAGE...",
		Short: "Write a message at every level through the console logger",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			level, err := logging.ParseLevel(opts.level)
			if err != nil {
				return newCommandError("log", "parsing level", err, "Use one of debug, info, warning, error or critical.")
			}

			l, err := logging.New(level, logging.DefaultColorTheme(), app.Console)
			if err != nil {
				return err
			}

			msg := strings.Join(args, " ")
			writes := []func(string) error{l.Debug, l.Info, l.Warning, l.Error, l.Critical}
			for i, write := range writes {
				if err := write(logging.Level(i+1).String() + ": " + msg); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.level, "level", "l", "debug", "Minimum level to write")

	return cmd
}
