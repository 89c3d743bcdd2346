package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/pkg/list"
)

type listOptions struct {
	ordered   bool
	start     int
	delimiter string
	pad       bool
	prefix    string
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list ITEM...",
		Short: "Print items as a bulleted or numbered list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			itemColor, err := app.Config.TextColor.Pair()
			if err != nil {
				return newCommandError("list", "applying theme", err, "")
			}

			var formatter list.Formatter
			if opts.ordered {
				l, err := list.NewOrdered(args)
				if err != nil {
					return err
				}
				formatter = l.WithStart(opts.start).
					WithDelimiter(opts.delimiter).
					WithNumberPadding(opts.pad).
					WithItemColor(itemColor)
			} else {
				l, err := list.NewUnordered(args)
				if err != nil {
					return err
				}
				formatter = l.WithPrefix(opts.prefix).WithItemColor(itemColor)
			}

			return app.Console.WriteList(formatter)
		},
	}

	cmd.Flags().BoolVarP(&opts.ordered, "ordered", "o", false, "Number the items")
	cmd.Flags().IntVar(&opts.start, "start", 1, "Number of the first item")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", ". ", "Text between an item number and the item")
	cmd.Flags().BoolVar(&opts.pad, "pad", false, "Zero-pad item numbers to the same width")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "- ", "Marker before each unordered item")

	return cmd
}
