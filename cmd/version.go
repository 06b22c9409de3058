package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gosaf/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosaf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosaf v%s\n", version.Version)
		fmt.Println("Structural Profile Geometry Toolkit")
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
