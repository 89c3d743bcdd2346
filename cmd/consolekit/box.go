package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/pkg/messagebox"
)

func newBoxCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "box LINE...",
		Short: "Frame one or more lines of text in a message box",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			box, err := messagebox.New(strings.Join(args, "\n"))
			if err != nil {
				return newCommandError("box", "creating message box", err, "Pass at least one non-empty line.")
			}

			bs, err := app.Config.BorderStyle()
			if err != nil {
				return newCommandError("box", "applying theme", err, "")
			}
			textColor, err := app.Config.TextColor.Pair()
			if err != nil {
				return newCommandError("box", "applying theme", err, "")
			}
			borderColor, err := app.Config.BorderColor.Pair()
			if err != nil {
				return newCommandError("box", "applying theme", err, "")
			}

			box.WithBorder(bs).WithTextColor(textColor).WithBorderColor(borderColor)
			return app.Console.WriteMessageBox(box)
		},
	}

	return cmd
}
