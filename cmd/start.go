package cmd

import (
	"errors"
	"fmt"

	"server-launcher/core/launcher"
	"server-launcher/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var startAll bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [name...]",
	Short: "Start servers without opening the menu",
	Long: `Starts the named servers in the order given. With --all, or with no names,
every server marked to be included in "start all" is started in stored order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		cfg := a.servers.Configuration()
		var report launcher.Report
		if startAll || len(args) == 0 {
			report, err = a.launcher.LaunchAll(cmd.Context(), cfg)
		} else {
			entries := make([]*server.Entry, 0, len(args))
			for _, name := range args {
				e, err := a.servers.Lookup(name)
				if err != nil {
					return err
				}
				entries = append(entries, e)
			}
			report, err = a.launcher.LaunchSelected(cmd.Context(), cfg, entries)
		}

		if errors.Is(err, launcher.ErrNothingToStart) {
			fmt.Fprintln(cmd.OutOrStdout(), "No servers are set to be included in the launch all command.")
			return nil
		}
		if err != nil {
			return err
		}

		a.logger.Info("Start finished",
			zap.String("launch_id", report.LaunchID),
			zap.Int("started", len(report.Started)),
			zap.Int("failed", len(report.Failed)),
		)
		if !report.OK() {
			return fmt.Errorf("%d of %d server(s) failed to start", len(report.Failed), len(report.Failed)+len(report.Started))
		}
		return nil
	},
}

func init() {
	startCmd.Flags().BoolVar(&startAll, "all", false, "Start every server included in start all")
	RootCmd.AddCommand(startCmd)
}
