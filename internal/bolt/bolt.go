// Package bolt defines the fastener capability the connection engine
// consumes, together with a registry that maps serialized kind tags to
// concrete implementations.
package bolt

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind discriminates concrete bolt implementations in serialized form.
type Kind string

// Bolt is the fastener capability consumed by the bolt array. All
// lengths are meters, forces Newtons. Implementations are immutable
// after construction.
type Bolt interface {
	Kind() Kind

	// Diameter returns the nominal shank diameter.
	Diameter() float64

	// Name returns a short designation for reports, e.g. "M20".
	Name() string

	// MaterialName returns a stable material label, e.g. the property
	// class of the bolt.
	MaterialName() string

	// RecommendedDistanceBetweenCenters returns the spacing below which
	// the arrangement is considered too tight.
	RecommendedDistanceBetweenCenters() float64

	// MinimumEdgeDistance returns the minimum hole-center to plate-edge
	// distance.
	MinimumEdgeDistance() float64

	// NominalHoleDiameter returns the hole diameter including the
	// standard clearance.
	NominalHoleDiameter() float64

	// DesignHoleDiameter returns the hole diameter used for net-section
	// deductions.
	DesignHoleDiameter() float64

	// DesignShearStrength returns the design shear resistance of one
	// bolt per shear plane.
	DesignShearStrength() float64

	// Report writes the bolt design values in readable form.
	Report(w io.Writer)
}

// Factory builds a bolt of one concrete kind from its serialized form.
type Factory func(raw json.RawMessage) (Bolt, error)

var registry = map[Kind]Factory{}

// Register adds a concrete bolt kind. It panics on duplicate
// registration, which is a programming error.
func Register(kind Kind, f Factory) {
	if _, dup := registry[kind]; dup {
		panic(fmt.Sprintf("bolt: kind %q registered twice", kind))
	}
	registry[kind] = f
}

// New builds a bolt from a kind tag and its serialized payload.
func New(kind Kind, raw json.RawMessage) (Bolt, error) {
	f, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("bolt: unknown kind %q", kind)
	}
	return f(raw)
}
