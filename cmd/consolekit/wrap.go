package main

import (
	"strings"

	"github.com/spf13/cobra"
)

type wrapOptions struct {
	length int
	noPad  bool
}

func newWrapCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &wrapOptions{}

	cmd := &cobra.Command{
		Use:   "wrap TEXT...",
		Short: "Word-wrap text to the console width",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			wrapOpts, err := app.Config.WrapOptions()
			if err != nil {
				return newCommandError("wrap", "applying theme", err, "")
			}
			if opts.length > 0 {
				wrapOpts.LineLength = opts.length
			}
			if opts.noPad {
				wrapOpts.PadEnds = false
			}

			return app.Console.WriteWrap(strings.Join(args, " "), wrapOpts)
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", 0, "Line length (default: console width minus one)")
	cmd.Flags().BoolVar(&opts.noPad, "no-pad", false, "Do not pad lines with trailing spaces")

	return cmd
}
