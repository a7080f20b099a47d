package cmd

import (
	"fmt"

	"server-launcher/core/server"

	"github.com/spf13/cobra"
)

var argsServer string

// argsCmd is the parent command for editing launch arguments.
var argsCmd = &cobra.Command{
	Use:   "args",
	Short: "Edit launch arguments of the global settings or of one server (--server)",
}

var argsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List launch arguments in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSettings(argsServer, func(a *app, target *server.Entry) error {
			for _, p := range a.servers.Configuration().SettingsFor(target).LaunchArgs.Pairs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p.Key, p.Value)
			}
			return nil
		})
	},
}

var argsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Add a launch argument or change its value",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := ""
		if len(args) == 2 {
			value = args[1]
		}
		return editSettings(argsServer, func(a *app, target *server.Entry) error {
			return a.servers.SetArg(target, args[0], value)
		})
	},
}

var argsRenameCmd = &cobra.Command{
	Use:   "rename <key> <new-key>",
	Short: "Rename a launch argument, keeping its value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSettings(argsServer, func(a *app, target *server.Entry) error {
			return a.servers.RenameArg(target, args[0], args[1])
		})
	},
}

var argsDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a launch argument",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSettings(argsServer, func(a *app, target *server.Entry) error {
			return a.servers.DeleteArg(target, args[0])
		})
	},
}

// editSettings runs fn against the named server, or the global settings when name is empty.
func editSettings(name string, fn func(a *app, target *server.Entry) error) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	target, err := a.lookupTarget(name)
	if err != nil {
		return err
	}
	return fn(a, target)
}

func init() {
	argsCmd.PersistentFlags().StringVar(&argsServer, "server", "", "Server to edit instead of the global settings")
	argsCmd.AddCommand(argsListCmd, argsSetCmd, argsRenameCmd, argsDeleteCmd)
	RootCmd.AddCommand(argsCmd)
}
