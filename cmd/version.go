package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structeng/boltconn/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of boltconn",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("boltconn v%s\n", version.Version)
		fmt.Println("Bolted Steel Connection Check Tool")
		fmt.Println("Based on Eurocode 3 (EN 1993-1-8)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
