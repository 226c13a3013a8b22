package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structeng/boltconn/internal/connection"
	"github.com/structeng/boltconn/internal/report"
)

var (
	reportFile    string
	reportForceKN float64
	reportOutFile string
	reportNotes   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF check report for a bolted plate",
	Long: `Run the plate checks for a design force and write a one-page
PDF report. Project and author come from the config file.

Examples:
  boltconn report -f plate.json --force 250 -o check.pdf`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Path to plate JSON file [required]")
	reportCmd.MarkFlagRequired("file")
	reportCmd.Flags().Float64Var(&reportForceKN, "force", 0, "Design force in kN [required]")
	reportCmd.MarkFlagRequired("force")
	reportCmd.Flags().StringVarP(&reportOutFile, "output", "o", "report.pdf", "Path for the PDF report")
	reportCmd.Flags().StringVar(&reportNotes, "notes", "", "Free-form notes appended to the report")
}

func runReport(cmd *cobra.Command, args []string) {
	plate, err := connection.LoadFromFile(reportFile, nil)
	if err != nil {
		fmt.Printf("Error loading plate: %v\n", err)
		return
	}

	s := report.Summarize(plate, reportForceKN*1000)
	opts := report.PDFOptions{
		Project: cfg.Project,
		Author:  cfg.Author,
		Notes:   reportNotes,
	}
	if err := report.WritePDF(s, opts, reportOutFile); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	fmt.Printf("Report written to %s\n", reportOutFile)
}
