package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestIdentityRefSys(t *testing.T) {
	rs := IdentityRefSys()
	p := rs.GlobalPosition(r3.Vec{X: 1, Y: 2, Z: 3})
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, p)
}

func TestGlobalPosition2D(t *testing.T) {
	// Frame with the local XY plane lying in the global XZ plane.
	rs := RefSys{
		Org: r3.Vec{X: 1, Y: 1, Z: 1},
		I:   r3.Vec{X: 1},
		J:   r3.Vec{Z: 1},
		K:   r3.Vec{Y: -1},
	}
	p := rs.GlobalPosition2D(r2.Vec{X: 0.5, Y: 0.25})
	assert.Equal(t, r3.Vec{X: 1.5, Y: 1, Z: 1.25}, p)
}
