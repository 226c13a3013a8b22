package connection

import (
	"errors"
	"fmt"
)

// StandardDistances is the ascending table of permitted center-to-center
// spacings (m). Standardized lengths are picked by snapping up: the first
// table value greater than or equal to the requirement wins.
var StandardDistances = []float64{
	50e-3, 75e-3, 100e-3, 120e-3, 150e-3, 200e-3, 250e-3,
	0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9,
}

// ErrDistanceRange reports that a required length exceeds the largest
// tabulated standard distance.
var ErrDistanceRange = errors.New("no standard distance large enough")

// SnapUp returns the smallest standard distance greater than or equal
// to v.
func SnapUp(v float64) (float64, error) {
	for _, d := range StandardDistances {
		if d >= v {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: need %.3f m, table ends at %.3f m",
		ErrDistanceRange, v, StandardDistances[len(StandardDistances)-1])
}
