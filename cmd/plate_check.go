package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structeng/boltconn/internal/connection"
	"github.com/structeng/boltconn/internal/diagram"
	"github.com/structeng/boltconn/internal/report"
)

var (
	plateCheckFile        string
	plateCheckForceKN     float64
	plateCheckShowDiagram bool
	plateCheckExportFile  string
)

var plateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Run every capacity check of a bolted plate",
	Long: `Run the spacing, shear, thickness, dimension and cover checks
of a bolted plate defined in a JSON file, for a given design force.

Examples:
  boltconn plate check --file plate.json --force 250
  boltconn plate check -f plate.json --force 250 --diagram -o layout.png`,
	Run: runPlateCheck,
}

func init() {
	plateCmd.AddCommand(plateCheckCmd)

	plateCheckCmd.Flags().StringVarP(&plateCheckFile, "file", "f", "", "Path to plate JSON file [required]")
	plateCheckCmd.MarkFlagRequired("file")
	plateCheckCmd.Flags().Float64Var(&plateCheckForceKN, "force", 0, "Design force in kN [required]")
	plateCheckCmd.MarkFlagRequired("force")

	// Diagram options
	plateCheckCmd.Flags().BoolVar(&plateCheckShowDiagram, "diagram", false, "Show ASCII plate layout")
	plateCheckCmd.Flags().StringVarP(&plateCheckExportFile, "output", "o", "", "Export layout diagram to file (png, svg, pdf)")
}

func runPlateCheck(cmd *cobra.Command, args []string) {
	plate, err := connection.LoadFromFile(plateCheckFile, nil)
	if err != nil {
		fmt.Printf("Error loading plate: %v\n", err)
		return
	}

	s := report.Summarize(plate, plateCheckForceKN*1000)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BOLTED PLATE CHECK - EN 1993-1-8")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Plate:\t%.0f x %.0f x %.0f mm\n",
		plate.Length*1000, plate.Width*1000, plate.Thickness*1000)
	if plate.Steel != nil {
		fmt.Fprintf(w, "  Steel:\t%s\n", plate.Steel.Name)
	}
	fmt.Fprintf(w, "  Bolts:\t%d x %s grade %s @ %.0f mm\n",
		plate.Array.NumberOfBolts(), plate.Array.Bolt.Name(),
		plate.Array.Bolt.MaterialName(), plate.Array.Dist*1000)
	fmt.Fprintf(w, "  Net width:\t%.1f mm\n", plate.NetWidth()*1000)
	fmt.Fprintf(w, "  Net area:\t%.1f mm²\n", plate.NetArea()*1e6)
	fmt.Fprintf(w, "  Double shear:\t%t\n", plate.DoublePlate)
	w.Flush()
	fmt.Println()

	fmt.Println("CHECKS (ratio < 1 is compliant):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design force:\t%.2f kN\n", s.Force/1000)
	fmt.Fprintf(w, "  Bolt spacing:\t%.3f\n", s.SpacingRatio)
	fmt.Fprintf(w, "  Bolt group shear:\t%.3f\n", s.ShearRatio)
	fmt.Fprintf(w, "  Plate thickness:\t%.3f\n", s.ThicknessRatio)
	fmt.Fprintf(w, "  Governing efficiency:\t%.3f\n", s.Efficiency)
	fmt.Fprintf(w, "  Dimensions:\t%t (min %.0f x %.0f mm)\n",
		s.DimensionsOK, plate.MinLength()*1000, plate.MinWidth()*1000)
	fmt.Fprintf(w, "  Minimum cover:\t%.1f mm\n", s.MinimumCover*1000)
	w.Flush()
	fmt.Println()

	if s.OK() {
		fmt.Println("RESULT: COMPLIANT")
	} else {
		fmt.Println("RESULT: NOT COMPLIANT")
	}
	fmt.Println()

	if plateCheckShowDiagram {
		fmt.Println(diagram.DrawASCIIPlateLayout(plate))
	}
	if plateCheckExportFile != "" {
		if err := diagram.ExportPlateDiagram(plate, plateCheckExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("Diagram exported to %s\n", plateCheckExportFile)
	}
}
