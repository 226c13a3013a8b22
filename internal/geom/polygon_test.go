package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func unitSquare() Polygon {
	return NewPolygon([]r2.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
}

func TestPolygonAreaCentroid(t *testing.T) {
	sq := unitSquare()
	assert.InDelta(t, 1.0, sq.Area(), 1e-12)
	c := sq.Centroid()
	assert.InDelta(t, 0.5, c.X, 1e-12)
	assert.InDelta(t, 0.5, c.Y, 1e-12)

	// Vertex order does not change the area.
	reversed := NewPolygon([]r2.Vec{
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0},
	})
	assert.InDelta(t, 1.0, reversed.Area(), 1e-12)
}

func TestPolygonContains(t *testing.T) {
	sq := unitSquare()
	assert.True(t, sq.Contains(r2.Vec{X: 0.5, Y: 0.5}))
	assert.False(t, sq.Contains(r2.Vec{X: 1.5, Y: 0.5}))
	assert.False(t, sq.Contains(r2.Vec{X: -0.1, Y: 0.5}))
}

func TestPolygonCover(t *testing.T) {
	sq := unitSquare()
	assert.InDelta(t, 0.2, sq.Cover(r2.Vec{X: 0.2, Y: 0.5}), 1e-12)
	assert.InDelta(t, 0.1, sq.Cover(r2.Vec{X: 0.5, Y: 0.9}), 1e-12)
	// Outside points measure to the nearest edge too.
	assert.InDelta(t, 0.5, sq.Cover(r2.Vec{X: 1.5, Y: 0.5}), 1e-12)
	// Nearest feature is a corner.
	d := sq.Cover(r2.Vec{X: 2, Y: 2})
	assert.InDelta(t, math.Sqrt2, d, 1e-12)
}

func TestPolygonCoverInDir(t *testing.T) {
	sq := unitSquare()
	center := r2.Vec{X: 0.5, Y: 0.5}
	assert.InDelta(t, 0.5, sq.CoverInDir(center, r2.Vec{X: 1}), 1e-12)
	assert.InDelta(t, 0.5, sq.CoverInDir(center, r2.Vec{Y: -1}), 1e-12)
	// Direction length is irrelevant.
	assert.InDelta(t, 0.5, sq.CoverInDir(center, r2.Vec{X: 42}), 1e-12)
	// Diagonal toward a corner.
	assert.InDelta(t, math.Sqrt2/2, sq.CoverInDir(center, r2.Vec{X: 1, Y: 1}), 1e-9)
}

func TestPolygonCoverInDirMiss(t *testing.T) {
	sq := unitSquare()
	// Ray pointing away from the contour never crosses it.
	assert.Equal(t, 0.0, sq.CoverInDir(r2.Vec{X: 2, Y: 2}, r2.Vec{X: 1, Y: 1}))
	// Zero direction.
	assert.Equal(t, 0.0, sq.CoverInDir(r2.Vec{X: 0.5, Y: 0.5}, r2.Vec{}))
}

func TestInscribedPolygon(t *testing.T) {
	center := r2.Vec{X: 1, Y: -2}
	radius := 0.011
	oct := InscribedPolygon(center, radius, 8, 0)
	require.Len(t, oct, 8)

	// First vertex sits at theta0 = 0.
	assert.InDelta(t, center.X+radius, oct[0].X, 1e-12)
	assert.InDelta(t, center.Y, oct[0].Y, 1e-12)

	for _, v := range oct {
		assert.InDelta(t, radius, r2.Norm(r2.Sub(v, center)), 1e-12)
	}

	// The inscribed area approaches the circle from below.
	area := NewPolygon(oct).Area()
	assert.Less(t, area, math.Pi*radius*radius)
	assert.Greater(t, area, 0.9*math.Pi*radius*radius)
}

func TestDegeneratePolygons(t *testing.T) {
	assert.Equal(t, 0.0, NewPolygon(nil).Area())
	assert.Equal(t, 0.0, NewPolygon(nil).Cover(r2.Vec{}))
	assert.Equal(t, 0.0, NewPolygon(nil).CoverInDir(r2.Vec{}, r2.Vec{X: 1}))
}
