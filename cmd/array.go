package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structeng/boltconn/internal/bolt"
	"github.com/structeng/boltconn/internal/connection"
	"github.com/structeng/boltconn/internal/ec3"
)

var (
	arrayDiameterMM float64
	arrayGrade      string
	arrayRows       int
	arrayCols       int
	arrayDistMM     float64
	arrayForceKN    float64
	arrayDouble     bool
)

var arrayCmd = &cobra.Command{
	Use:   "array",
	Short: "Lay out a bolt array and check its spacing and capacity",
	Long: `Lay out a rectangular bolt array. When --dist is omitted the
spacing is the smallest standard distance of at least three bolt
diameters.

Examples:
  boltconn array -d 20 --rows 2 --cols 2
  boltconn array -d 16 -g 10.9 --rows 3 --cols 2 --dist 100 --force 250`,
	Run: runArray,
}

func init() {
	rootCmd.AddCommand(arrayCmd)

	arrayCmd.Flags().Float64VarP(&arrayDiameterMM, "diameter", "d", 0, "Nominal bolt diameter in mm [required]")
	arrayCmd.MarkFlagRequired("diameter")
	arrayCmd.Flags().StringVarP(&arrayGrade, "grade", "g", "", "Bolt property class (default from config)")
	arrayCmd.Flags().IntVar(&arrayRows, "rows", 1, "Number of bolt rows")
	arrayCmd.Flags().IntVar(&arrayCols, "cols", 1, "Number of bolt columns")
	arrayCmd.Flags().Float64Var(&arrayDistMM, "dist", 0, "Distance between centers in mm (0 = derive)")
	arrayCmd.Flags().Float64Var(&arrayForceKN, "force", 0, "Design force in kN for the shear check")
	arrayCmd.Flags().BoolVar(&arrayDouble, "double", false, "Bolts act in double shear")
}

func runArray(cmd *cobra.Command, args []string) {
	grade := arrayGrade
	if grade == "" {
		grade = cfg.BoltGrade
	}
	b, err := bolt.NewEC3Bolt(arrayDiameterMM/1000, ec3.BoltGrade(grade))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	array, err := connection.NewBoltArray(b, arrayRows, arrayCols, arrayDistMM/1000)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BOLT ARRAY LAYOUT - EN 1993-1-8")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bolts:\t%d x %s grade %s\n", array.NumberOfBolts(), b.Name(), b.MaterialName())
	fmt.Fprintf(w, "  Grid:\t%d rows x %d columns\n", array.NRows, array.NCols)
	fmt.Fprintf(w, "  Spacing:\t%.1f mm\n", array.Dist*1000)
	fmt.Fprintf(w, "  Bolt field:\t%.1f x %.1f mm\n", array.Length()*1000, array.Width()*1000)
	fmt.Fprintf(w, "  Minimum plate:\t%.1f x %.1f mm\n", array.MinPlateLength()*1000, array.MinPlateWidth()*1000)
	w.Flush()
	if stdLength, err := array.StandardPlateLength(); err == nil {
		fmt.Printf("  Standard plate length:  %.1f mm\n", stdLength*1000)
	} else {
		fmt.Printf("  Standard plate length:  %v\n", err)
	}
	fmt.Println()

	fmt.Println("BOLT POSITIONS (local, centroid at origin):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tx (mm)\ty (mm)\n")
	for i, p := range array.LocalPositions() {
		fmt.Fprintf(w, "  %d\t%.1f\t%.1f\n", i+1, p.X*1000, p.Y*1000)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("CHECKS (ratio < 1 is compliant):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Spacing:\t%.3f\n", array.CheckDistanceBetweenCenters())
	fmt.Fprintf(w, "  Shear strength:\t%.2f kN\n", array.DesignShearStrength(arrayDouble)/1000)
	if arrayForceKN > 0 {
		fmt.Fprintf(w, "  Shear efficiency:\t%.3f\n", array.ShearEfficiency(arrayForceKN*1000, arrayDouble))
	}
	w.Flush()
	fmt.Println()
}
