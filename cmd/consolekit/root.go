package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	noColor    bool
	width      int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "consolekit",
		Short:         "consolekit renders colored text, tables, boxes and lists in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML theme file")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().IntVar(&flags.width, "width", 0, "Console width (default: detected)")

	cmd.AddCommand(newOutputCmd(flags))
	cmd.AddCommand(newTableCmd(flags))
	cmd.AddCommand(newBoxCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newWrapCmd(flags))
	cmd.AddCommand(newLogCmd(flags))
	cmd.AddCommand(newArgsCmd(flags))
	cmd.AddCommand(newPromptCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd(flags))

	return cmd
}
