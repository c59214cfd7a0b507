package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden with -ldflags "-X ...cmd.version=v1.2.3" on release builds.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("studiq %s\n", version)
	},
}
