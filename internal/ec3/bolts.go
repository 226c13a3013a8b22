package ec3

import (
	"fmt"
	"math"
)

// Bolt rules per EN 1993-1-8 Section 3.

// BoltGrade is a bolt property class designation (Table 3.1).
type BoltGrade string

const (
	Grade46  BoltGrade = "4.6"
	Grade48  BoltGrade = "4.8"
	Grade56  BoltGrade = "5.6"
	Grade58  BoltGrade = "5.8"
	Grade68  BoltGrade = "6.8"
	Grade88  BoltGrade = "8.8"
	Grade109 BoltGrade = "10.9"
)

type boltGradeProps struct {
	fyb float64 // nominal yield strength (Pa)
	fub float64 // nominal ultimate strength (Pa)
}

// EN 1993-1-8 Table 3.1
var boltGrades = map[BoltGrade]boltGradeProps{
	Grade46:  {fyb: 240e6, fub: 400e6},
	Grade48:  {fyb: 320e6, fub: 400e6},
	Grade56:  {fyb: 300e6, fub: 500e6},
	Grade58:  {fyb: 400e6, fub: 500e6},
	Grade68:  {fyb: 480e6, fub: 600e6},
	Grade88:  {fyb: 640e6, fub: 800e6},
	Grade109: {fyb: 900e6, fub: 1000e6},
}

// Valid reports whether the grade is a known property class.
func (g BoltGrade) Valid() bool {
	_, ok := boltGrades[g]
	return ok
}

// Fyb returns the nominal yield strength of the grade (Pa).
func (g BoltGrade) Fyb() float64 { return boltGrades[g].fyb }

// Fub returns the nominal ultimate strength of the grade (Pa).
func (g BoltGrade) Fub() float64 { return boltGrades[g].fub }

// AlphaV returns the shear coefficient αv for the grade
// (Table 3.4: 0.6 for grades 4.6, 5.6 and 8.8, 0.5 otherwise).
func (g BoltGrade) AlphaV() float64 {
	switch g {
	case Grade46, Grade56, Grade88:
		return 0.6
	}
	return 0.5
}

// Tensile stress areas for metric coarse threads, ISO 898-1 (m²).
var tensileStressAreas = map[int]float64{
	12: 84.3e-6,
	14: 115e-6,
	16: 157e-6,
	18: 192e-6,
	20: 245e-6,
	22: 303e-6,
	24: 353e-6,
	27: 459e-6,
	30: 561e-6,
	33: 694e-6,
	36: 817e-6,
}

// TensileStressArea returns the tensile stress area As of a bolt with the
// given nominal diameter (m). Diameters outside the metric table fall back
// to 0.78 times the gross shank area.
func TensileStressArea(d float64) float64 {
	if as, ok := tensileStressAreas[int(math.Round(d*1000))]; ok {
		return as
	}
	return 0.78 * math.Pi * d * d / 4.0
}

// HoleClearance returns the nominal clearance of a normal round hole for
// the given bolt diameter (EN 1090-2 Table 11).
func HoleClearance(d float64) float64 {
	switch {
	case d <= 14e-3:
		return 1e-3
	case d <= 24e-3:
		return 2e-3
	}
	return 3e-3
}

// MinSpacing returns the minimum spacing p1 between fastener centers for
// a hole diameter d0 (Table 3.3).
func MinSpacing(d0 float64) float64 {
	return 2.2 * d0
}

// MinEdgeDistance returns the minimum end/edge distance e1 for a hole
// diameter d0 (Table 3.3).
func MinEdgeDistance(d0 float64) float64 {
	return 1.2 * d0
}

// ShearResistance returns the design shear resistance Fv,Rd of a single
// bolt per shear plane, through the threaded portion (Table 3.4):
//
//	Fv,Rd = αv·fub·As/γM2
func ShearResistance(d float64, g BoltGrade) (float64, error) {
	if !g.Valid() {
		return 0, fmt.Errorf("unknown bolt grade: %q", g)
	}
	return g.AlphaV() * g.Fub() * TensileStressArea(d) / GammaM2, nil
}
