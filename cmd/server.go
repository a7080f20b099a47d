package cmd

import (
	"fmt"

	"server-launcher/core/server"
	"server-launcher/core/utils"
	"server-launcher/feature/menu"

	"github.com/spf13/cobra"
)

var (
	serverPort    string
	serverExclude bool
)

// serverCmd is the parent command for editing server entries.
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "List and edit server entries",
}

var serverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List servers with their effective launch arguments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		tw, err := menu.ServerListTable(a.servers.Configuration())
		if err != nil {
			return err
		}
		menu.WriteTable(cmd.OutOrStdout(), tw)
		return nil
	},
}

var serverAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := utils.ParsePort(serverPort)
		if err != nil {
			return err
		}
		a, err := bootstrap()
		if err != nil {
			return err
		}

		e := server.NewEntry()
		e.Name = args[0]
		e.Port = port
		e.IncludeInLaunchAll = !serverExclude
		if err := a.servers.AddServer(e); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", e.Label())
		return nil
	},
}

var serverRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editServer(args[0], func(a *app, e *server.Entry) error {
			return a.servers.DeleteServer(e)
		})
	},
}

var serverRenameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a server",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editServer(args[0], func(a *app, e *server.Entry) error {
			return a.servers.RenameServer(e, args[1])
		})
	},
}

var serverPortCmd = &cobra.Command{
	Use:   "port <name> <port>",
	Short: "Change the port of a server",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := utils.ParsePort(args[1])
		if err != nil {
			return err
		}
		return editServer(args[0], func(a *app, e *server.Entry) error {
			return a.servers.SetPort(e, port)
		})
	},
}

var serverToggleCmd = &cobra.Command{
	Use:   "toggle <name>",
	Short: "Toggle whether a server is included in start all",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editServer(args[0], func(a *app, e *server.Entry) error {
			include, err := a.servers.ToggleLaunchAll(e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s included in start all: %t\n", e.Label(), include)
			return nil
		})
	},
}

func editServer(name string, fn func(a *app, e *server.Entry) error) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	e, err := a.servers.Lookup(name)
	if err != nil {
		return err
	}
	return fn(a, e)
}

func init() {
	serverAddCmd.Flags().StringVar(&serverPort, "port", fmt.Sprint(server.DefaultPort), "Port the server listens on")
	serverAddCmd.Flags().BoolVar(&serverExclude, "exclude", false, "Leave the server out of start all")

	serverCmd.AddCommand(serverListCmd, serverAddCmd, serverRemoveCmd, serverRenameCmd, serverPortCmd, serverToggleCmd)
	RootCmd.AddCommand(serverCmd)
}
