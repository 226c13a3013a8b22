package ec3

import (
	"fmt"
	"math"
)

// Structural steel per EN 1993-1-1 and EN 10025-2.
// All quantities are SI: lengths in meters, stresses in Pa, forces in N.

const (
	// Modulus of elasticity (Section 3.2.6)
	E = 210e9 // Pa

	// Poisson's ratio in the elastic range
	Nu = 0.3

	// Partial factors (Section 6.1, national annex defaults)
	GammaM0 = 1.00 // resistance of cross-sections
	GammaM1 = 1.00 // resistance to instability
	GammaM2 = 1.25 // resistance to fracture, bolts in shear
)

// Steel is a structural steel grade with thickness-dependent strengths
// taken from EN 10025-2 Table 7.
type Steel struct {
	Name string

	// Nominal strengths for t <= 40 mm (Pa)
	Fy float64
	Fu float64

	// Reduced strengths for 40 mm < t <= 80 mm (Pa)
	Fy40 float64
	Fu40 float64
}

var (
	S235 = &Steel{Name: "S235", Fy: 235e6, Fu: 360e6, Fy40: 215e6, Fu40: 340e6}
	S275 = &Steel{Name: "S275", Fy: 275e6, Fu: 430e6, Fy40: 255e6, Fu40: 410e6}
	S355 = &Steel{Name: "S355", Fy: 355e6, Fu: 510e6, Fy40: 335e6, Fu40: 470e6}
)

var steelGrades = map[string]*Steel{
	S235.Name: S235,
	S275.Name: S275,
	S355.Name: S355,
}

// SteelByName returns the steel grade registered under the given name.
func SteelByName(name string) (*Steel, error) {
	s, ok := steelGrades[name]
	if !ok {
		return nil, fmt.Errorf("unknown steel grade: %q", name)
	}
	return s, nil
}

// YieldStrength returns fy for the given part thickness (m).
// Thicknesses above 80 mm keep the 40-80 mm value.
func (s *Steel) YieldStrength(t float64) float64 {
	if t < 40e-3 {
		return s.Fy
	}
	return s.Fy40
}

// UltimateStrength returns fu for the given part thickness (m).
func (s *Steel) UltimateStrength(t float64) float64 {
	if t < 40e-3 {
		return s.Fu
	}
	return s.Fu40
}

// Fyd returns the design yield strength fy/γM0 for the given thickness.
func (s *Steel) Fyd(t float64) float64 {
	return s.YieldStrength(t) / GammaM0
}

// FydV returns the design shear yield strength fyd/√3.
func (s *Steel) FydV(t float64) float64 {
	return s.Fyd(t) / math.Sqrt(3)
}
