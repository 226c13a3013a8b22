package bolt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/structeng/boltconn/internal/ec3"
)

// KindEC3 tags bolts dimensioned per EN 1993-1-8.
const KindEC3 Kind = "ec3"

func init() {
	Register(KindEC3, func(raw json.RawMessage) (Bolt, error) {
		var b EC3Bolt
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return NewEC3Bolt(b.Dia, b.Grade)
	})
}

// EC3Bolt is a metric bolt checked against EN 1993-1-8 Section 3.
type EC3Bolt struct {
	Dia   float64       `json:"diameter"`
	Grade ec3.BoltGrade `json:"grade"`
}

// NewEC3Bolt builds a bolt from its nominal diameter (m) and property
// class. Missing or invalid inputs are construction errors.
func NewEC3Bolt(diameter float64, grade ec3.BoltGrade) (*EC3Bolt, error) {
	if diameter <= 0 {
		return nil, fmt.Errorf("bolt: non-positive diameter %g", diameter)
	}
	if !grade.Valid() {
		return nil, fmt.Errorf("bolt: unknown grade %q", grade)
	}
	return &EC3Bolt{Dia: diameter, Grade: grade}, nil
}

func (b *EC3Bolt) Kind() Kind { return KindEC3 }

func (b *EC3Bolt) Diameter() float64 { return b.Dia }

func (b *EC3Bolt) Name() string {
	return fmt.Sprintf("M%.0f", b.Dia*1000)
}

func (b *EC3Bolt) MaterialName() string { return string(b.Grade) }

func (b *EC3Bolt) RecommendedDistanceBetweenCenters() float64 {
	return ec3.MinSpacing(b.NominalHoleDiameter())
}

func (b *EC3Bolt) MinimumEdgeDistance() float64 {
	return ec3.MinEdgeDistance(b.NominalHoleDiameter())
}

func (b *EC3Bolt) NominalHoleDiameter() float64 {
	return b.Dia + ec3.HoleClearance(b.Dia)
}

// DesignHoleDiameter adds a 1 mm punching allowance to the nominal hole
// for net-section deductions.
func (b *EC3Bolt) DesignHoleDiameter() float64 {
	return b.NominalHoleDiameter() + 1e-3
}

func (b *EC3Bolt) DesignShearStrength() float64 {
	return b.Grade.AlphaV() * b.Grade.Fub() * ec3.TensileStressArea(b.Dia) / ec3.GammaM2
}

// Report writes the bolt design values in readable form.
func (b *EC3Bolt) Report(w io.Writer) {
	fmt.Fprintf(w, "        bolt: %s grade %s\n", b.Name(), b.Grade)
	fmt.Fprintf(w, "          nominal hole diameter: %.1f mm\n", b.NominalHoleDiameter()*1000)
	fmt.Fprintf(w, "          design shear strength: %.2f kN\n", b.DesignShearStrength()/1000)
}
