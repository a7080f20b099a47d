package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pathsCmd represents the paths command
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show where the configuration file is stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file:    %s\n", a.layout.ConfigFile)
		fmt.Fprintf(out, "Data root:      %s\n", a.layout.Root)
		fmt.Fprintf(out, "Host policy:    %t\n", a.layout.PolicyApplied)
		fmt.Fprintf(out, "Per-user dir:   %t\n", a.layout.PlatformDirFound)
		fmt.Fprintf(out, "Executable:     %s\n", a.executable)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pathsCmd)
}
