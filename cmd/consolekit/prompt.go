package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/pkg/prompt"
)

type promptOptions struct {
	enter bool
}

func newPromptCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &promptOptions{}

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Wait for a key press",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			wait := prompt.PressAnyKey
			if opts.enter {
				wait = prompt.PressEnter
			}
			if err := wait(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				suggestion := ""
				if errors.Is(err, prompt.ErrNoInput) {
					suggestion = "Run the command from an interactive terminal or pipe in a key."
				}
				return newCommandError("prompt", "waiting for input", err, suggestion)
			}
			app.Log.Debug("key pressed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.enter, "enter", false, "Wait for Enter instead of any key")

	return cmd
}
