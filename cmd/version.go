package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fourier-explorer version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fourier-explorer %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
