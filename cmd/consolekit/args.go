package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/pkg/args"
	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
	"github.com/alexisbeaulieu97/consolekit/pkg/table"
)

// demoArgs are the arguments accepted by the args command.
var demoArgs = []args.AllowedArg{
	{ShortName: 'p', HasValue: true, LongName: "path", Description: "Path to the file.", Required: true},
	{ShortName: 'a', LongName: "allfiles", Description: "Should use all files."},
	{ShortName: 'o', HasValue: true, LongName: "output", Description: "Where to write results."},
}

func newArgsCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "args -- ARG...",
		Short: "Parse single-dash arguments and show what was found",
		Long: "Parse everything after -- against a fixed set of arguments:\n\n" +
			args.HelpText(demoArgs),
		Example: "  consolekit args -- -p /tmp -allfiles",
		RunE: func(cmd *cobra.Command, input []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			info, err := args.Parse(append([]string{}, input...), demoArgs)
			if err != nil {
				var argErr *apperrors.ArgError
				if errors.As(err, &argErr) {
					for _, problem := range argErr.Problems {
						if werr := app.Console.WriteLineColor(problem, color.Fg(color.Red)); werr != nil {
							return werr
						}
					}
					if werr := app.Console.NewLine(); werr != nil {
						return werr
					}
					if werr := app.Console.Write(args.HelpText(demoArgs)); werr != nil {
						return werr
					}
				}
				return newCommandError("args", "parsing arguments", err, "")
			}

			if !info.HasArguments() {
				return app.Console.WriteLine("no arguments")
			}
			return app.Console.WriteTable(argumentsTable(info))
		},
	}

	return cmd
}

func argumentsTable(info *args.Info) *table.Table {
	found := info.Arguments()
	tbl, _ := table.New(3, len(found)+1, "")
	_ = tbl.UpdateRowValues(table.At(0, 0), []string{"name", "long name", "value"})
	for i, a := range found {
		_ = tbl.UpdateRowAt(i+1, []table.Cell{
			table.NewCell(a.Name()),
			table.NewCell(a.LongName),
			table.NewCell(a.Value),
		})
	}
	return tbl
}
