package connection

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/structeng/boltconn/internal/export"
)

// BoltAxisBlocks returns the line blocks for the bolts joining two
// plates: every pair of hole centers, one from each block set, whose 3D
// distance matches the plate separation within 1% becomes a bolt axis.
func BoltAxisBlocks(gussetBlocks, plateBlocks *export.BlockData, distBetweenPlates float64, props *export.BlockProperties) *export.BlockData {
	retval := export.NewBlockData()
	tol := distBetweenPlates / 100.0

	boltProps := export.CopyProperties(props)
	boltProps.AppendAttribute("objType", "bolt_axis")
	boltProps.AppendAttribute("ownerId", nil)

	gussetCenters := gussetBlocks.PointsWithAttribute("objType", "hole_center")
	plateCenters := plateBlocks.PointsWithAttribute("objType", "hole_center")
	for _, pA := range gussetCenters {
		for _, pB := range plateCenters {
			dist := r3.Norm(r3.Sub(pA.Coords, pB.Coords))
			if math.Abs(dist-distBetweenPlates) < tol {
				a := retval.AppendPoint(pA.Coords, export.CopyProperties(pA.Properties))
				b := retval.AppendPoint(pB.Coords, export.CopyProperties(pB.Properties))
				retval.AppendBlock(&export.BlockRecord{
					Type:       export.BlockLine,
					KPoints:    []int{a, b},
					Properties: export.CopyProperties(boltProps),
				})
			}
		}
	}
	return retval
}
