package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// RefSys is a 3D reference frame: an origin and an orthonormal basis.
// Local connection geometry lives in the XY plane of the frame.
type RefSys struct {
	Org r3.Vec
	I   r3.Vec
	J   r3.Vec
	K   r3.Vec
}

// IdentityRefSys returns the global frame.
func IdentityRefSys() RefSys {
	return RefSys{
		I: r3.Vec{X: 1},
		J: r3.Vec{Y: 1},
		K: r3.Vec{Z: 1},
	}
}

// GlobalPosition maps a point in frame coordinates to global coordinates.
func (rs RefSys) GlobalPosition(p r3.Vec) r3.Vec {
	g := rs.Org
	g = r3.Add(g, r3.Scale(p.X, rs.I))
	g = r3.Add(g, r3.Scale(p.Y, rs.J))
	g = r3.Add(g, r3.Scale(p.Z, rs.K))
	return g
}

// GlobalPosition2D maps a point of the frame's XY plane to global
// coordinates.
func (rs RefSys) GlobalPosition2D(p r2.Vec) r3.Vec {
	return rs.GlobalPosition(r3.Vec{X: p.X, Y: p.Y})
}
