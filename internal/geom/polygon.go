// Package geom provides the small amount of planar and spatial geometry
// the connection calculations need: polygon contours, cover distances and
// reference frames.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is a simple closed polygon given by its vertices in order.
type Polygon struct {
	vertices []r2.Vec
}

// NewPolygon builds a polygon from its vertices. The contour is closed
// implicitly: the last vertex connects back to the first.
func NewPolygon(vertices []r2.Vec) Polygon {
	return Polygon{vertices: vertices}
}

// Vertices returns the polygon vertices.
func (p Polygon) Vertices() []r2.Vec { return p.vertices }

// Area returns the enclosed area using the shoelace formula.
func (p Polygon) Area() float64 {
	area, _ := p.signedAreaCentroid()
	return math.Abs(area)
}

// Centroid returns the area centroid of the polygon.
func (p Polygon) Centroid() r2.Vec {
	_, c := p.signedAreaCentroid()
	return c
}

func (p Polygon) signedAreaCentroid() (float64, r2.Vec) {
	n := len(p.vertices)
	if n < 3 {
		return 0, r2.Vec{}
	}
	var signedArea, sumX, sumY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.vertices[i].X*p.vertices[j].Y - p.vertices[j].X*p.vertices[i].Y
		signedArea += cross
		sumX += (p.vertices[i].X + p.vertices[j].X) * cross
		sumY += (p.vertices[i].Y + p.vertices[j].Y) * cross
	}
	signedArea /= 2
	if signedArea == 0 {
		return 0, r2.Vec{}
	}
	return signedArea, r2.Vec{X: sumX / (6 * signedArea), Y: sumY / (6 * signedArea)}
}

// Contains reports whether pt lies inside the polygon (crossing count).
func (p Polygon) Contains(pt r2.Vec) bool {
	n := len(p.vertices)
	inside := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.vertices[i], p.vertices[j]
		if (vi.Y <= pt.Y && vj.Y > pt.Y) || (vj.Y <= pt.Y && vi.Y > pt.Y) {
			t := (pt.Y - vi.Y) / (vj.Y - vi.Y)
			if pt.X < vi.X+t*(vj.X-vi.X) {
				inside = !inside
			}
		}
	}
	return inside
}

// Cover returns the distance from pt to the nearest polygon edge.
func (p Polygon) Cover(pt r2.Vec) float64 {
	n := len(p.vertices)
	if n < 2 {
		return 0
	}
	min := math.Inf(1)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d := segmentDistance(pt, p.vertices[i], p.vertices[j])
		if d < min {
			min = d
		}
	}
	return min
}

// CoverInDir returns the distance from pt along dir to the first contour
// crossing. When the ray never meets the contour the cover is zero, which
// drives edge-distance checks to their conservative side.
func (p Polygon) CoverInDir(pt, dir r2.Vec) float64 {
	n := len(p.vertices)
	norm := r2.Norm(dir)
	if n < 2 || norm == 0 {
		return 0
	}
	u := r2.Scale(1/norm, dir)
	min := math.Inf(1)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if t, ok := raySegment(pt, u, p.vertices[i], p.vertices[j]); ok && t < min {
			min = t
		}
	}
	if math.IsInf(min, 1) {
		return 0
	}
	return min
}

// segmentDistance returns the distance from pt to the segment ab.
func segmentDistance(pt, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	l2 := r2.Norm2(ab)
	if l2 == 0 {
		return r2.Norm(r2.Sub(pt, a))
	}
	t := r2.Dot(r2.Sub(pt, a), ab) / l2
	t = math.Max(0, math.Min(1, t))
	closest := r2.Add(a, r2.Scale(t, ab))
	return r2.Norm(r2.Sub(pt, closest))
}

// raySegment intersects the ray pt+t·u (t >= 0, u unit) with the segment
// ab and returns the hit distance.
func raySegment(pt, u, a, b r2.Vec) (float64, bool) {
	ab := r2.Sub(b, a)
	denom := r2.Cross(u, ab)
	if math.Abs(denom) < 1e-14 {
		return 0, false
	}
	ap := r2.Sub(a, pt)
	t := r2.Cross(ap, ab) / denom
	s := r2.Cross(ap, u) / denom
	if t < 0 || s < 0 || s > 1 {
		return 0, false
	}
	return t, true
}

// InscribedPolygon returns the regular n-gon inscribed in the circle of
// the given center and radius, with the first vertex at angle theta0.
func InscribedPolygon(center r2.Vec, radius float64, n int, theta0 float64) []r2.Vec {
	vertices := make([]r2.Vec, n)
	step := 2 * math.Pi / float64(n)
	for k := 0; k < n; k++ {
		theta := theta0 + float64(k)*step
		vertices[k] = r2.Vec{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return vertices
}
