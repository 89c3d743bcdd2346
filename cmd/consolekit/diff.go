package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/pkg/diff"
	"github.com/alexisbeaulieu97/consolekit/pkg/output"
)

type diffFlags struct {
	separator string
	unified   bool
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	flags := &diffFlags{}

	cmd := &cobra.Command{
		Use:   "diff EXPECTED ACTUAL",
		Short: "Show the line differences between two texts",
		Long: `Compare two texts line by line. Each argument is split into lines on the
separator, so "a,b,c" is read as three lines.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			expected := toLines(args[0], flags.separator)
			actual := toLines(args[1], flags.separator)

			if flags.unified {
				text := diff.Unified(expected, actual, "expected", "actual")
				if text == "" {
					return app.Console.WriteLine("no differences")
				}
				return app.Console.Write(text)
			}

			changed, err := app.Console.WriteDiff(expected, actual, output.DefaultDiffColors())
			if err != nil {
				return newCommandError("diff", "writing diff", err, "")
			}
			app.Log.Debug("diff written", "changed", changed)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.separator, "sep", ",", "Line separator used inside each argument")
	cmd.Flags().BoolVarP(&flags.unified, "unified", "u", false, "Print a unified diff")

	return cmd
}

func toLines(arg, separator string) string {
	if arg == "" {
		return ""
	}
	if separator == "" {
		return arg + "\n"
	}
	return strings.Join(strings.Split(arg, separator), "\n") + "\n"
}
