package connection

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/structeng/boltconn/internal/bolt"
	"github.com/structeng/boltconn/internal/diag"
	"github.com/structeng/boltconn/internal/ec3"
	"github.com/structeng/boltconn/internal/export"
	"github.com/structeng/boltconn/internal/geom"
)

func testArray(t *testing.T) *BoltArray {
	t.Helper()
	a, err := NewBoltArray(stubBolt{
		diameter:   0.02,
		edge:       0.02,
		designHole: 0.023,
		shear:      50e3,
	}, 2, 2, 0.1)
	require.NoError(t, err)
	return a
}

func TestNewBoltedPlateDefaults(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{}, diag.Discard)
	require.NoError(t, err)

	// Derived dimensions land on standard distances covering the grid.
	assert.Equal(t, 0.15, p.Width)
	assert.Equal(t, 0.2, p.Length)
	assert.Equal(t, 10e-3, p.Thickness)
	assert.True(t, p.CheckDimensions())
}

func TestNewBoltedPlatePartialDimensions(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.16}, diag.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0.2, p.Length)
	assert.Equal(t, 0.16, p.Width)

	p, err = NewBoltedPlate(testArray(t), PlateParams{Length: 0.25}, diag.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0.15, p.Width)
	assert.Equal(t, 0.25, p.Length)
}

func TestNewBoltedPlateTooSmallReportsButConstructs(t *testing.T) {
	rec := &diag.Recorder{}
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.1, Length: 0.1}, rec)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.CheckDimensions())
	assert.Len(t, rec.Errors, 1)
}

func TestNewBoltedPlateNilArray(t *testing.T) {
	_, err := NewBoltedPlate(nil, PlateParams{}, diag.Discard)
	assert.Error(t, err)
}

func TestCheckWidthStrictAtEquality(t *testing.T) {
	// Width exactly at the minimum: the strict per-axis check fails while
	// the combined dimensions check passes.
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.14, Length: 0.15}, diag.Discard)
	require.NoError(t, err)
	assert.False(t, p.CheckWidth())
	assert.True(t, p.CheckLength())
	assert.True(t, p.CheckDimensions())
}

func TestNetWidthAndArea(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.2, Length: 0.2, Thickness: 0.012}, diag.Discard)
	require.NoError(t, err)
	assert.InDelta(t, 0.2-2*0.023, p.NetWidth(), 1e-12)
	assert.InDelta(t, (0.2-2*0.023)*0.012, p.NetArea(), 1e-12)
}

func TestMinThicknessNetSectionYield(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{
		Width: 0.2, Length: 0.2, Thickness: 0.01, Steel: ec3.S275,
	}, diag.Discard)
	require.NoError(t, err)

	Pd := 200e3
	want := Pd / (ec3.S275.Fyd(0.01) * p.NetWidth())
	assert.InDelta(t, want, p.MinThickness(Pd), 1e-12)
	assert.InDelta(t, want/0.01, p.CheckThickness(Pd), 1e-9)
}

func TestMinThicknessWithoutSteel(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.2, Length: 0.2}, diag.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.MinThickness(100e3))
}

type fixedRule struct{ value float64 }

func (r fixedRule) MinThickness(*BoltedPlate, float64) float64 { return r.value }

func TestMinThicknessRuleOverride(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.2, Length: 0.2}, diag.Discard)
	require.NoError(t, err)
	p.Rule = fixedRule{value: 0.025}
	assert.Equal(t, 0.025, p.MinThickness(1))
	assert.InDelta(t, 2.5, p.CheckThickness(1), 1e-12)
}

func TestShearStrengthEfficiencyTakesGoverningRatio(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{
		Width: 0.2, Length: 0.2, Thickness: 0.01, Steel: ec3.S275,
	}, diag.Discard)
	require.NoError(t, err)

	Pd := 100e3
	boltRatio := p.Array.ShearEfficiency(Pd, false)
	thicknessRatio := p.CheckThickness(Pd)
	assert.Equal(t, math.Max(boltRatio, thicknessRatio), p.ShearStrengthEfficiency(Pd))

	// Double plate halves the bolt shear ratio.
	p.DoublePlate = true
	boltRatioDouble := p.Array.ShearEfficiency(Pd, true)
	assert.Equal(t, math.Max(boltRatioDouble, thicknessRatio), p.ShearStrengthEfficiency(Pd))
}

func TestEfficiencyUsesAbsoluteAxialForce(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.2, Length: 0.2}, diag.Discard)
	require.NoError(t, err)

	tension := p.Efficiency(InternalForces{N: 120e3})
	compression := p.Efficiency(InternalForces{N: -120e3})
	assert.Equal(t, tension, compression)
}

func TestEfficiencyReportsUnsupportedComponents(t *testing.T) {
	rec := &diag.Recorder{}
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.2, Length: 0.2}, rec)
	require.NoError(t, err)

	p.Efficiency(InternalForces{N: 120e3, Vy: 5e3, Vz: 5e3, My: 2e3, Mz: 2e3})
	assert.Len(t, rec.Errors, 4)

	// Components within tolerance stay silent.
	rec.Errors = nil
	p.Efficiency(InternalForces{N: 120e3, Vy: 1e-4})
	assert.Empty(t, rec.Errors)
}

func TestCoreContour2d(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{
		Width: 0.14, Length: 0.2,
		Eccentricity: r2.Vec{X: 0.01, Y: -0.02},
	}, diag.Discard)
	require.NoError(t, err)

	contour := p.CoreContour2d()
	require.Len(t, contour, 4)
	assert.Equal(t, r2.Vec{X: -0.09, Y: -0.09}, contour[0])
	assert.Equal(t, r2.Vec{X: 0.11, Y: -0.09}, contour[1])
	assert.Equal(t, r2.Vec{X: 0.11, Y: 0.05}, contour[2])
	assert.Equal(t, r2.Vec{X: -0.09, Y: 0.05}, contour[3])
}

func TestPlateMinimumCover(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.14, Length: 0.14}, diag.Discard)
	require.NoError(t, err)
	assert.InDelta(t, 0.02, p.MinimumCover(), 1e-12)
	assert.InDelta(t, 0.02, p.MinimumCoverInDir(r2.Vec{X: 1}), 1e-12)
}

func TestPlateClearDistances(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{Width: 0.14, Length: 0.14}, diag.Discard)
	require.NoError(t, err)
	distances := p.ClearDistances(r2.Vec{X: 1})
	require.Len(t, distances, 4)
	assert.InDelta(t, 0.1, distances[0], 1e-12)
	assert.InDelta(t, 0.02, distances[2], 1e-12)
}

func TestPlateBlocks(t *testing.T) {
	p, err := NewBoltedPlate(testArray(t), PlateParams{
		Width: 0.15, Length: 0.2, Thickness: 0.012, Steel: ec3.S355,
	}, diag.Discard)
	require.NoError(t, err)
	p.Array.Bolt = stubBolt{diameter: 0.02, edge: 0.02, nominalHole: 0.022}

	blocks := p.Blocks(geom.IdentityRefSys(), export.NewBlockProperties())
	// Plate face plus one octagon per hole.
	require.Len(t, blocks.Blocks, 1+4)

	face := blocks.Blocks[0]
	assert.Equal(t, export.BlockFace, face.Type)
	assert.Equal(t, 0.012, face.Thickness)
	assert.Equal(t, "S355", face.MatID)
	assert.Equal(t, "bolted_plate", face.Properties.StringAttribute("objType"))

	holes := blocks.Blocks[1:]
	for _, h := range holes {
		assert.Equal(t, "hole", h.Properties.StringAttribute("objType"))
		assert.Equal(t, "f0", h.Properties.StringAttribute("ownerId"))
	}
	centers := blocks.PointsWithAttribute("objType", "hole_center")
	assert.Len(t, centers, 4)
}

func TestPlateJSONRoundTrip(t *testing.T) {
	b, err := bolt.NewEC3Bolt(0.016, "8.8")
	require.NoError(t, err)
	a, err := NewBoltArray(b, 2, 3, 0.075)
	require.NoError(t, err)
	p, err := NewBoltedPlate(a, PlateParams{
		Width: 0.15, Length: 0.3, Thickness: 0.012,
		Steel:        ec3.S275,
		Eccentricity: r2.Vec{X: 0.005},
		DoublePlate:  true,
		Notched:      true,
	}, diag.Discard)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plate.json")
	require.NoError(t, p.WriteFile(path))

	got, err := LoadFromFile(path, diag.Discard)
	require.NoError(t, err)
	assert.Equal(t, p.Width, got.Width)
	assert.Equal(t, p.Length, got.Length)
	assert.Equal(t, p.Thickness, got.Thickness)
	assert.Equal(t, "S275", got.Steel.Name)
	assert.Equal(t, p.Eccentricity, got.Eccentricity)
	assert.Equal(t, p.DoublePlate, got.DoublePlate)
	assert.Equal(t, p.Notched, got.Notched)
	assert.Equal(t, p.Array.NRows, got.Array.NRows)
	assert.Equal(t, p.Array.NCols, got.Array.NCols)
	assert.Equal(t, p.Array.Dist, got.Array.Dist)
	assert.Equal(t, 0.016, got.Array.Bolt.Diameter())
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"), diag.Discard)
	assert.Error(t, err)
}
