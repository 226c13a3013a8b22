package ec3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltGradeProperties(t *testing.T) {
	assert.True(t, Grade88.Valid())
	assert.False(t, BoltGrade("9.9").Valid())

	assert.Equal(t, 640e6, Grade88.Fyb())
	assert.Equal(t, 800e6, Grade88.Fub())
	assert.Equal(t, 900e6, Grade109.Fyb())
	assert.Equal(t, 1000e6, Grade109.Fub())
}

func TestAlphaV(t *testing.T) {
	assert.Equal(t, 0.6, Grade46.AlphaV())
	assert.Equal(t, 0.6, Grade56.AlphaV())
	assert.Equal(t, 0.6, Grade88.AlphaV())
	assert.Equal(t, 0.5, Grade48.AlphaV())
	assert.Equal(t, 0.5, Grade109.AlphaV())
}

func TestTensileStressArea(t *testing.T) {
	assert.Equal(t, 245e-6, TensileStressArea(0.02))
	assert.Equal(t, 84.3e-6, TensileStressArea(0.012))
	assert.Equal(t, 817e-6, TensileStressArea(0.036))

	// Off-table diameters use the 0.78 gross-area approximation.
	d := 0.025
	assert.InDelta(t, 0.78*math.Pi*d*d/4, TensileStressArea(d), 1e-12)
}

func TestHoleClearance(t *testing.T) {
	assert.Equal(t, 1e-3, HoleClearance(0.012))
	assert.Equal(t, 1e-3, HoleClearance(0.014))
	assert.Equal(t, 2e-3, HoleClearance(0.016))
	assert.Equal(t, 2e-3, HoleClearance(0.024))
	assert.Equal(t, 3e-3, HoleClearance(0.027))
}

func TestSpacingAndEdgeDistance(t *testing.T) {
	assert.InDelta(t, 2.2*0.022, MinSpacing(0.022), 1e-12)
	assert.InDelta(t, 1.2*0.022, MinEdgeDistance(0.022), 1e-12)
}

func TestShearResistance(t *testing.T) {
	// M20 grade 8.8: 0.6 * 800 MPa * 245 mm² / 1.25 = 94.08 kN.
	got, err := ShearResistance(0.02, Grade88)
	require.NoError(t, err)
	assert.InDelta(t, 94.08e3, got, 1)

	_, err = ShearResistance(0.02, "9.9")
	assert.Error(t, err)
}
