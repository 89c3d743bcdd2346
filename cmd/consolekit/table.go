package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/pkg/border"
	"github.com/alexisbeaulieu97/consolekit/pkg/table"
)

type tableOptions struct {
	separator    string
	defaultValue string
	rightAligned []int
	border       string
}

func newTableCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &tableOptions{}

	cmd := &cobra.Command{
		Use:   "table ROW...",
		Short: "Render rows of separated values as a bordered table",
		Example: `  consolekit table "id,name" "1,alice" "2,bob"
  consolekit table --right 0 --border single "1,one" "10,ten"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, rootFlags, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.separator, "sep", ",", "Separator between values in a row")
	cmd.Flags().StringVar(&opts.defaultValue, "default", "", "Value for cells a row leaves out")
	cmd.Flags().IntSliceVar(&opts.rightAligned, "right", nil, "Zero-based columns to right align")
	cmd.Flags().StringVar(&opts.border, "border", "", "Border style: single, double or simple (default from theme)")

	return cmd
}

func runTable(cmd *cobra.Command, rootFlags *rootFlags, opts *tableOptions, rows []string) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	tbl, err := buildTable(rows, opts)
	if err != nil {
		return newCommandError("table", "building table", err, "")
	}

	style, err := app.Config.TableStyle()
	if err != nil {
		return newCommandError("table", "applying theme", err, "")
	}
	if opts.border != "" {
		if style.Border, err = border.ByName(opts.border); err != nil {
			return newCommandError("table", "selecting border", err, "Use one of: "+strings.Join(border.Names(), ", ")+".")
		}
	}
	tbl.WithStyle(style)

	return app.Console.WriteTable(tbl)
}

func buildTable(rows []string, opts *tableOptions) (*table.Table, error) {
	values := make([][]string, len(rows))
	columns := 0
	for i, row := range rows {
		values[i] = strings.Split(row, opts.separator)
		if len(values[i]) > columns {
			columns = len(values[i])
		}
	}

	tbl, err := table.New(columns, len(rows), opts.defaultValue)
	if err != nil {
		return nil, err
	}

	right := make(map[int]bool, len(opts.rightAligned))
	for _, col := range opts.rightAligned {
		right[col] = true
	}

	for r, rowValues := range values {
		cells := table.Cells(rowValues...)
		for c := range cells {
			if right[c] {
				cells[c] = cells[c].WithAlignment(table.AlignRight)
			}
		}
		if err := tbl.UpdateRowAt(r, cells); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
