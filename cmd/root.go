package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structeng/boltconn/internal/config"
	"github.com/structeng/boltconn/internal/version"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "boltconn",
	Short: "Bolted Steel Connection Check Tool",
	Long: `boltconn - Go Bolted Steel Connection Checker

A CLI tool for sizing and checking bolted steel connections
based on Eurocode 3 (EN 1993-1-8).

This tool helps structural engineers perform:
  - Bolt array layout and spacing checks
  - Bolted plate sizing from the bolt arrangement
  - Bolt group shear and plate net-section checks
  - Geometry export for CAD pipelines (DXF, block JSON)
  - PDF and spreadsheet reporting

All checks are demand/capacity ratios: values below 1 are compliant.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   boltconn v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Bolted Steel Connection Checker                      ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing and checking bolted steel connections")
		fmt.Println("  based on Eurocode 3 (EN 1993-1-8).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Bolt capacities and hole dimensions per EN 1993-1-8")
		fmt.Println("    • Bolt array layout with standardized spacing")
		fmt.Println("    • Plate auto-sizing and capacity checks")
		fmt.Println("    • DXF / block JSON geometry export")
		fmt.Println("    • PDF reports and XLSX batch runs")
		fmt.Println()
		fmt.Println("  Use 'boltconn --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML defaults file")
	cobra.OnInitialize(func() {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	})
}
