package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/pkg/color"
)

type outputOptions struct {
	clear bool
}

func newOutputCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "output [TEXT]",
		Short: "Show colored writes, alignment, rules and rainbow lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := "consolekit"
			if len(args) == 1 {
				text = args[0]
			}
			return runOutput(cmd, rootFlags, opts, text)
		},
	}

	cmd.Flags().BoolVar(&opts.clear, "clear", false, "Clear the screen first")

	return cmd
}

func runOutput(cmd *cobra.Command, rootFlags *rootFlags, opts *outputOptions, text string) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	c := app.Console

	if opts.clear {
		c.Clear()
	}

	accent := color.Fg(color.Cyan)
	steps := []func() error{
		func() error { return c.WriteHorizontalLine('=', accent) },
		func() error { return c.WriteAlignCenter(text, color.Fg(color.White)) },
		func() error { return c.WriteHorizontalLine('=', accent) },
		func() error { return c.WriteAlignLeft("left", color.Pair{}) },
		func() error { return c.WriteAlignRight("right", color.Pair{}) },
		func() error { return c.WriteAlignToSides("left side", "right side", color.Fg(color.Gray)) },
		func() error { return c.WriteBlankLines(1) },
		func() error { return c.WriteRainbowLine(text) },
		func() error { return c.WriteColor("warning: ", color.Fg(color.Yellow)) },
		func() error { return c.WriteLine("colors are restored after every write") },
		func() error { return c.WriteLineColor(" alert ", color.New(color.White, color.Red)) },
		func() error { return c.WriteHorizontalLine(0, color.Pair{}) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
