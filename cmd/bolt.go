package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structeng/boltconn/internal/bolt"
	"github.com/structeng/boltconn/internal/ec3"
)

var (
	boltDiameterMM float64
	boltGrade      string
)

var boltCmd = &cobra.Command{
	Use:   "bolt",
	Short: "Show the design values of a single bolt",
	Long: `Show the capacities and hole dimensions of a metric bolt
per EN 1993-1-8.

Examples:
  boltconn bolt --diameter 20
  boltconn bolt -d 16 -g 10.9`,
	Run: runBolt,
}

func init() {
	rootCmd.AddCommand(boltCmd)

	boltCmd.Flags().Float64VarP(&boltDiameterMM, "diameter", "d", 0, "Nominal bolt diameter in mm [required]")
	boltCmd.MarkFlagRequired("diameter")
	boltCmd.Flags().StringVarP(&boltGrade, "grade", "g", "", "Bolt property class (default from config)")
}

func runBolt(cmd *cobra.Command, args []string) {
	grade := boltGrade
	if grade == "" {
		grade = cfg.BoltGrade
	}
	b, err := bolt.NewEC3Bolt(boltDiameterMM/1000, ec3.BoltGrade(grade))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BOLT DESIGN VALUES - EN 1993-1-8")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Designation:\t%s grade %s\n", b.Name(), b.MaterialName())
	fmt.Fprintf(w, "  Nominal diameter:\t%.1f mm\n", b.Diameter()*1000)
	fmt.Fprintf(w, "  Tensile stress area:\t%.1f mm²\n", ec3.TensileStressArea(b.Diameter())*1e6)
	fmt.Fprintf(w, "  Nominal hole diameter:\t%.1f mm\n", b.NominalHoleDiameter()*1000)
	fmt.Fprintf(w, "  Design hole diameter:\t%.1f mm\n", b.DesignHoleDiameter()*1000)
	fmt.Fprintf(w, "  Recommended spacing:\t%.1f mm\n", b.RecommendedDistanceBetweenCenters()*1000)
	fmt.Fprintf(w, "  Minimum edge distance:\t%.1f mm\n", b.MinimumEdgeDistance()*1000)
	fmt.Fprintf(w, "  Design shear strength:\t%.2f kN per shear plane\n", b.DesignShearStrength()/1000)
	w.Flush()
	fmt.Println()
}
