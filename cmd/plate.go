package cmd

import (
	"github.com/spf13/cobra"
)

var plateCmd = &cobra.Command{
	Use:   "plate",
	Short: "Bolted plate sizing and capacity checks",
	Long: `Size and check a steel plate bolted around a bolt array.

The plate is defined in a JSON file; width and length set to zero are
derived from the bolt arrangement and the standard distance table.

Subcommands:
  check   - Run every capacity check for a design force
  design  - Auto-size a plate around a bolt array and write its JSON

Example JSON file structure:
{
  "width": 0.15,
  "length": 0.15,
  "thickness": 0.01,
  "steel_type": "S275",
  "eccentricity": {"X": 0, "Y": 0},
  "double_plate": false,
  "bolt_array": {
    "bolt_kind": "ec3",
    "bolt": {"diameter": 0.02, "grade": "8.8"},
    "n_rows": 2,
    "n_cols": 2,
    "dist": 0.1
  }
}`,
}

func init() {
	rootCmd.AddCommand(plateCmd)
}
