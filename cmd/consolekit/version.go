package main

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/consolekit/pkg/table"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// currentBuild prefers ldflags values and falls back to the module version
// recorded by `go install`.
func currentBuild() buildInfo {
	info := buildInfo{Version: version, Commit: commit, Date: date, GoVersion: runtime.Version()}
	if info.Version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	return info
}

func (b buildInfo) table() (*table.Table, error) {
	rows := [][]string{
		{"version", b.Version},
		{"commit", b.Commit},
		{"built", b.Date},
		{"go", b.GoVersion},
	}

	tbl, err := table.New(2, len(rows), "")
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := tbl.UpdateRowAt(i, table.Cells(row...)); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func newVersionCmd(rootFlags *rootFlags) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			build := currentBuild()
			if short {
				return app.Console.WriteLine(build.Version)
			}

			tbl, err := build.table()
			if err != nil {
				return newCommandError("version", "building table", err, "")
			}
			style, err := app.Config.TableStyle()
			if err != nil {
				return newCommandError("version", "applying theme", err, "")
			}
			return app.Console.WriteTable(tbl.WithStyle(style))
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")

	return cmd
}
