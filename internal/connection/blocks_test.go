package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structeng/boltconn/internal/export"
	"github.com/structeng/boltconn/internal/geom"
)

func TestBoltAxisBlocks(t *testing.T) {
	a, err := NewBoltArray(stubBolt{diameter: 0.02, nominalHole: 0.022}, 2, 2, 0.1)
	require.NoError(t, err)

	gap := 0.02
	gussetFrame := geom.IdentityRefSys()
	plateFrame := geom.IdentityRefSys()
	plateFrame.Org.Z = gap

	gusset := a.HoleBlocks(gussetFrame, nil)
	plate := a.HoleBlocks(plateFrame, nil)

	axes := BoltAxisBlocks(gusset, plate, gap, nil)
	// One axis per aligned hole pair.
	require.Len(t, axes.Blocks, 4)
	assert.Len(t, axes.Points, 8)
	for _, blk := range axes.Blocks {
		assert.Equal(t, export.BlockLine, blk.Type)
		assert.Equal(t, "bolt_axis", blk.Properties.StringAttribute("objType"))
		require.Len(t, blk.KPoints, 2)

		pa := axes.Point(blk.KPoints[0])
		pb := axes.Point(blk.KPoints[1])
		require.NotNil(t, pa)
		require.NotNil(t, pb)
		// Axis runs straight across the gap.
		assert.Equal(t, pa.Coords.X, pb.Coords.X)
		assert.Equal(t, pa.Coords.Y, pb.Coords.Y)
		assert.InDelta(t, gap, pb.Coords.Z-pa.Coords.Z, 1e-12)
	}
}

func TestBoltAxisBlocksIgnoresMisalignedHoles(t *testing.T) {
	a, err := NewBoltArray(stubBolt{diameter: 0.02, nominalHole: 0.022}, 1, 1, 0.1)
	require.NoError(t, err)

	gap := 0.02
	gussetFrame := geom.IdentityRefSys()
	plateFrame := geom.IdentityRefSys()
	plateFrame.Org.Z = gap
	plateFrame.Org.X = 0.05 // shifted plate: no hole lines up

	gusset := a.HoleBlocks(gussetFrame, nil)
	plate := a.HoleBlocks(plateFrame, nil)

	axes := BoltAxisBlocks(gusset, plate, gap, nil)
	assert.Empty(t, axes.Blocks)
}
