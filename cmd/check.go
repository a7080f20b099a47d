package cmd

import (
	"errors"
	"fmt"
	"strings"

	"server-launcher/feature/integrity"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the configuration can be used to start servers",
	Long:  `Looks up the server executable, reports ports shared by start-all servers and app data paths that are not existing directories.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		svc := integrity.NewService(a.servers, a.executable, a.searchDirs, a.logger)
		report, err := svc.RunAll(cmd.Context())
		if err != nil {
			return err
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.AppendHeader(table.Row{"Check", "Status", "Details"})
		if report.Executable.Err != nil {
			tw.AppendRow(table.Row{"Executable", "FAIL", report.Executable.Err.Error()})
		} else {
			tw.AppendRow(table.Row{"Executable", "OK", report.Executable.Path})
		}
		if len(report.PortConflicts) == 0 {
			tw.AppendRow(table.Row{"Ports", "OK", ""})
		}
		for _, c := range report.PortConflicts {
			tw.AppendRow(table.Row{"Ports", "WARN", fmt.Sprintf("%d used by %s", c.Port, strings.Join(c.Servers, ", "))})
		}
		if len(report.DataPaths) == 0 {
			tw.AppendRow(table.Row{"App Data Paths", "OK", ""})
		}
		for _, i := range report.DataPaths {
			tw.AppendRow(table.Row{"App Data Paths", "WARN", fmt.Sprintf("%s: %s %s", i.Server, i.Path, i.Reason)})
		}
		tw.SetStyle(table.StyleLight)
		tw.Render()

		if !report.OK() {
			return errors.New("configuration check failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
