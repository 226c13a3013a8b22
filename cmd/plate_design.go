package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structeng/boltconn/internal/bolt"
	"github.com/structeng/boltconn/internal/connection"
	"github.com/structeng/boltconn/internal/ec3"
)

var (
	plateDesignDiameterMM  float64
	plateDesignGrade       string
	plateDesignRows        int
	plateDesignCols        int
	plateDesignDistMM      float64
	plateDesignThicknessMM float64
	plateDesignSteel       string
	plateDesignDouble      bool
	plateDesignOutFile     string
)

var plateDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Auto-size a plate around a bolt array",
	Long: `Derive the plate dimensions from a bolt arrangement using the
standard distance table, and write the plate definition to a JSON file.

Examples:
  boltconn plate design -d 20 --rows 2 --cols 2 -o plate.json
  boltconn plate design -d 16 -g 10.9 --rows 3 --cols 2 --thickness 12 -o plate.json`,
	Run: runPlateDesign,
}

func init() {
	plateCmd.AddCommand(plateDesignCmd)

	plateDesignCmd.Flags().Float64VarP(&plateDesignDiameterMM, "diameter", "d", 0, "Nominal bolt diameter in mm [required]")
	plateDesignCmd.MarkFlagRequired("diameter")
	plateDesignCmd.Flags().StringVarP(&plateDesignGrade, "grade", "g", "", "Bolt property class (default from config)")
	plateDesignCmd.Flags().IntVar(&plateDesignRows, "rows", 1, "Number of bolt rows")
	plateDesignCmd.Flags().IntVar(&plateDesignCols, "cols", 1, "Number of bolt columns")
	plateDesignCmd.Flags().Float64Var(&plateDesignDistMM, "dist", 0, "Distance between centers in mm (0 = derive)")
	plateDesignCmd.Flags().Float64Var(&plateDesignThicknessMM, "thickness", 0, "Plate thickness in mm (default from config)")
	plateDesignCmd.Flags().StringVar(&plateDesignSteel, "steel", "", "Plate steel grade (default from config)")
	plateDesignCmd.Flags().BoolVar(&plateDesignDouble, "double", false, "One plate on each side of the main member")
	plateDesignCmd.Flags().StringVarP(&plateDesignOutFile, "output", "o", "", "Path for the plate JSON file")
}

func runPlateDesign(cmd *cobra.Command, args []string) {
	grade := plateDesignGrade
	if grade == "" {
		grade = cfg.BoltGrade
	}
	steelName := plateDesignSteel
	if steelName == "" {
		steelName = cfg.Steel
	}
	thicknessMM := plateDesignThicknessMM
	if thicknessMM <= 0 {
		thicknessMM = cfg.ThicknessMM
	}

	b, err := bolt.NewEC3Bolt(plateDesignDiameterMM/1000, ec3.BoltGrade(grade))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	array, err := connection.NewBoltArray(b, plateDesignRows, plateDesignCols, plateDesignDistMM/1000)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	steel, err := ec3.SteelByName(steelName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	plate, err := connection.NewBoltedPlate(array, connection.PlateParams{
		Thickness:   thicknessMM / 1000,
		Steel:       steel,
		DoublePlate: plateDesignDouble,
	}, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BOLTED PLATE DESIGN - EN 1993-1-8")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	plate.Report(cmd.OutOrStdout())
	fmt.Println()

	if plateDesignOutFile != "" {
		if err := plate.WriteFile(plateDesignOutFile); err != nil {
			fmt.Printf("Error writing plate file: %v\n", err)
			return
		}
		fmt.Printf("Plate definition written to %s\n", plateDesignOutFile)
	}
}
