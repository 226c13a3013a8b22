package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structeng/boltconn/internal/diag"
	"github.com/structeng/boltconn/internal/report"
)

var (
	batchFile    string
	batchOutFile string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Check every connection of an XLSX workbook",
	Long: `Read connection definitions from the first sheet of an XLSX
workbook (one per row, header row skipped) and write a results workbook
with the check ratios appended.

Expected columns:
  diameter_mm, grade, rows, cols, dist_mm, width_mm, length_mm,
  thickness_mm, steel, force_kn, double

Examples:
  boltconn batch -f connections.xlsx -o results.xlsx`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to the input workbook [required]")
	batchCmd.MarkFlagRequired("file")
	batchCmd.Flags().StringVarP(&batchOutFile, "output", "o", "results.xlsx", "Path for the results workbook")
}

func runBatch(cmd *cobra.Command, args []string) {
	n, err := report.RunBatch(batchFile, batchOutFile, diag.Default())
	if err != nil {
		fmt.Printf("Error running batch: %v\n", err)
		return
	}
	fmt.Printf("Checked %d connections, results written to %s\n", n, batchOutFile)
}
