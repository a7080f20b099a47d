package cmd

import (
	"fmt"

	"server-launcher/core/server"
	"server-launcher/core/utils"

	"github.com/spf13/cobra"
)

var datapathServer string

// datapathCmd is the parent command for the app data path setting.
var datapathCmd = &cobra.Command{
	Use:   "datapath",
	Short: "Show or change the app data path of the global settings or of one server (--server)",
}

var datapathShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured and effective app data path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSettings(datapathServer, func(a *app, target *server.Entry) error {
			own, err := a.servers.ResolveOwn(target)
			if err != nil {
				return err
			}
			effective, err := a.servers.Resolve(target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configured: %s\n", utils.ToString(own.DataPath, "Default"))
			fmt.Fprintf(cmd.OutOrStdout(), "Effective:  %s\n", utils.ToString(effective.DataPath, "Default"))
			return nil
		})
	},
}

var datapathSetCmd = &cobra.Command{
	Use:   "set <path>",
	Short: "Set the app data path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSettings(datapathServer, func(a *app, target *server.Entry) error {
			return a.servers.SetDataPath(target, args[0])
		})
	},
}

var datapathClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Unset the app data path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSettings(datapathServer, func(a *app, target *server.Entry) error {
			return a.servers.SetDataPath(target, "")
		})
	},
}

func init() {
	datapathCmd.PersistentFlags().StringVar(&datapathServer, "server", "", "Server to edit instead of the global settings")
	datapathCmd.AddCommand(datapathShowCmd, datapathSetCmd, datapathClearCmd)
	RootCmd.AddCommand(datapathCmd)
}
