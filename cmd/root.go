package cmd

import (
	"fmt"
	"os"

	"server-launcher/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is printed in the menu banner. Release builds set it with -ldflags.
var Version = "dev"

var logLevel string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "server-launcher",
	Short: "SCP: Secret Laboratory server launcher",
	Long: `Server Launcher keeps a list of LocalAdmin server entries with their ports,
launch arguments and app data paths, and starts them as detached processes.
Run without a command to open the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Errors are reported on the console regardless of the configured format
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the log level (debug, info, warn, error)")
}
