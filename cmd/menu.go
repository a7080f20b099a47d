package cmd

import (
	"os"

	"server-launcher/feature/menu"

	"github.com/spf13/cobra"
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Long:  `Opens the interactive menu for starting servers and editing their settings. This is also what runs when no command is given.`,
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return cmd.Help()
	}

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	prompt := menu.NewPrompter(os.Stdin, os.Stdout)
	return menu.NewSession(a.servers, a.launcher, prompt, a.logger, Version).Run(cmd.Context())
}

func init() {
	RootCmd.AddCommand(menuCmd)
}
