// Package report turns connection check results into engineer-facing
// documents: console summaries, PDF reports and spreadsheet batches.
package report

import (
	"github.com/structeng/boltconn/internal/connection"
)

// Summary gathers every check ratio of a bolted plate for one design
// force. Ratios below 1 are compliant.
type Summary struct {
	Plate *connection.BoltedPlate
	Force float64 // design force (N)

	SpacingRatio   float64
	ShearRatio     float64
	ThicknessRatio float64
	Efficiency     float64
	DimensionsOK   bool
	MinimumCover   float64 // m
}

// Summarize runs the full set of plate checks for the design force Pd.
func Summarize(p *connection.BoltedPlate, Pd float64) Summary {
	return Summary{
		Plate:          p,
		Force:          Pd,
		SpacingRatio:   p.Array.CheckDistanceBetweenCenters(),
		ShearRatio:     p.Array.ShearEfficiency(Pd, p.DoublePlate),
		ThicknessRatio: p.CheckThickness(Pd),
		Efficiency:     p.ShearStrengthEfficiency(Pd),
		DimensionsOK:   p.CheckDimensions(),
		MinimumCover:   p.MinimumCover(),
	}
}

// OK reports whether every ratio is compliant and the dimensions reach
// their minimums.
func (s Summary) OK() bool {
	return s.DimensionsOK && s.SpacingRatio < 1 && s.Efficiency < 1
}
