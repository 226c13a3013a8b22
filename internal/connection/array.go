// Package connection implements bolted connection components: bolt
// arrays and the plates sized around them, with their Eurocode-style
// capacity checks.
//
// Every check is a demand/capacity ratio: values below 1 are compliant.
// Out-of-range geometry never aborts a calculation; it is reported to the
// diagnostics sink and the caller inspects the resulting ratios.
package connection

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/structeng/boltconn/internal/bolt"
	"github.com/structeng/boltconn/internal/export"
	"github.com/structeng/boltconn/internal/geom"
)

// BoltArray is a rectangular grid of equal bolts sharing one spacing
// value in both directions. Rows run along the local y axis, columns
// along x. Geometry is fixed after construction.
type BoltArray struct {
	Bolt  bolt.Bolt
	NRows int
	NCols int
	Dist  float64
}

// NewBoltArray builds an array around the given bolt. When dist is not
// positive the spacing is derived as the smallest standard distance
// greater than or equal to three bolt diameters; an exhausted distance
// table is a construction error.
func NewBoltArray(b bolt.Bolt, nRows, nCols int, dist float64) (*BoltArray, error) {
	if nRows < 1 || nCols < 1 {
		return nil, fmt.Errorf("connection: invalid bolt grid %dx%d", nRows, nCols)
	}
	if dist <= 0 {
		if b == nil {
			return nil, fmt.Errorf("connection: bolt required to derive spacing")
		}
		d, err := SnapUp(3.0 * b.Diameter())
		if err != nil {
			return nil, fmt.Errorf("connection: deriving bolt spacing: %w", err)
		}
		dist = d
	}
	return &BoltArray{Bolt: b, NRows: nRows, NCols: nCols, Dist: dist}, nil
}

// NumberOfBolts returns the bolt count of the array.
func (a *BoltArray) NumberOfBolts() int {
	return a.NRows * a.NCols
}

// CheckDistanceBetweenCenters returns the ratio of the recommended
// spacing to the actual spacing. Values below 1 mean the spacing is ok.
func (a *BoltArray) CheckDistanceBetweenCenters() float64 {
	return a.Bolt.RecommendedDistanceBetweenCenters() / a.Dist
}

// Width returns the distance between the centers of the first and last
// rows. Zero for a single row.
func (a *BoltArray) Width() float64 {
	return a.Dist * float64(a.NRows-1)
}

// Length returns the distance between the centers of the first and last
// columns. Zero for a single column.
func (a *BoltArray) Length() float64 {
	return a.Dist * float64(a.NCols-1)
}

// MinPlateWidth returns the minimum width of a plate hosting the array,
// or zero when no bolt is set.
func (a *BoltArray) MinPlateWidth() float64 {
	if a.Bolt == nil {
		return 0
	}
	return 2.0*a.Bolt.MinimumEdgeDistance() + a.Width()
}

// MinPlateLength returns the minimum length of a plate hosting the
// array, or zero when no bolt is set.
func (a *BoltArray) MinPlateLength() float64 {
	if a.Bolt == nil {
		return 0
	}
	return 2.0*a.Bolt.MinimumEdgeDistance() + a.Length()
}

// StandardPlateLength returns the standard plate length: the larger of
// the minimum length and the bolt span plus one extra spacing, snapped up
// the standard distance table.
func (a *BoltArray) StandardPlateLength() (float64, error) {
	stdLength := a.MinPlateLength()
	if withMargin := a.Length() + a.Dist; withMargin > stdLength {
		stdLength = withMargin
	}
	return SnapUp(stdLength)
}

// StandardPlateWidth returns the minimum plate width snapped up the
// standard distance table.
func (a *BoltArray) StandardPlateWidth() (float64, error) {
	return SnapUp(a.MinPlateWidth())
}

// NetWidth returns the plate width remaining once one design hole
// diameter per bolt row is deducted along the critical section.
func (a *BoltArray) NetWidth(plateWidth float64) float64 {
	return plateWidth - float64(a.NRows)*a.Bolt.DesignHoleDiameter()
}

// DesignShearStrength returns the shear strength of the bolt group,
// doubled under double shear action.
func (a *BoltArray) DesignShearStrength(doubleShear bool) float64 {
	retval := float64(a.NumberOfBolts()) * a.Bolt.DesignShearStrength()
	if doubleShear {
		retval *= 2.0
	}
	return retval
}

// ShearEfficiency returns the demand/capacity ratio of the bolt group in
// shear for the design force Pd.
func (a *BoltArray) ShearEfficiency(Pd float64, doubleShear bool) float64 {
	return Pd / a.DesignShearStrength(doubleShear)
}

// Center returns the centroid of the grid in grid coordinates (first
// bolt at the origin).
func (a *BoltArray) Center() r2.Vec {
	return r2.Vec{
		X: a.Dist * float64(a.NCols-1) / 2.0,
		Y: a.Dist * float64(a.NRows-1) / 2.0,
	}
}

// LocalPositions returns the bolt centers in local coordinates,
// column-major, with the grid centroid at the origin.
func (a *BoltArray) LocalPositions() []r2.Vec {
	center := a.Center()
	retval := make([]r2.Vec, 0, a.NumberOfBolts())
	for j := 0; j < a.NCols; j++ {
		for i := 0; i < a.NRows; i++ {
			retval = append(retval, r2.Vec{
				X: float64(j)*a.Dist - center.X,
				Y: float64(i)*a.Dist - center.Y,
			})
		}
	}
	return retval
}

// ColumnPositions returns the local bolt centers of the j-th column.
func (a *BoltArray) ColumnPositions(j int) []r2.Vec {
	center := a.Center()
	retval := make([]r2.Vec, 0, a.NRows)
	for i := 0; i < a.NRows; i++ {
		retval = append(retval, r2.Vec{
			X: float64(j)*a.Dist - center.X,
			Y: float64(i)*a.Dist - center.Y,
		})
	}
	return retval
}

// RowPositions returns the local bolt centers of the i-th row.
func (a *BoltArray) RowPositions(i int) []r2.Vec {
	center := a.Center()
	retval := make([]r2.Vec, 0, a.NCols)
	for j := 0; j < a.NCols; j++ {
		retval = append(retval, r2.Vec{
			X: float64(j)*a.Dist - center.X,
			Y: float64(i)*a.Dist - center.Y,
		})
	}
	return retval
}

// Positions returns the global bolt centers in the given frame.
func (a *BoltArray) Positions(refSys geom.RefSys) []r3.Vec {
	localPos := a.LocalPositions()
	retval := make([]r3.Vec, len(localPos))
	for i, p := range localPos {
		retval[i] = refSys.GlobalPosition2D(p)
	}
	return retval
}

// ClearDistances returns, for every bolt, the cover from the hole center
// to the contour along the load direction, clamped to the bolt spacing:
// the clear distance can never exceed the distance to the next hole.
func (a *BoltArray) ClearDistances(contour geom.Polygon, loadDirection r2.Vec) []float64 {
	localPos := a.LocalPositions()
	retval := make([]float64, len(localPos))
	for i, p := range localPos {
		cover := contour.CoverInDir(p, loadDirection)
		if cover > a.Dist {
			cover = a.Dist
		}
		retval[i] = cover
	}
	return retval
}

// MinimumCover returns the smallest distance from a hole center to the
// contour.
func (a *BoltArray) MinimumCover(contour geom.Polygon) float64 {
	retval := 1e6
	for _, p := range a.LocalPositions() {
		if cover := contour.Cover(p); cover < retval {
			retval = cover
		}
	}
	return retval
}

// MinimumCoverInDir returns the smallest distance from a hole center to
// the contour along the given direction.
func (a *BoltArray) MinimumCoverInDir(contour geom.Polygon, direction r2.Vec) float64 {
	retval := 1e6
	for _, p := range a.LocalPositions() {
		if cover := contour.CoverInDir(p, direction); cover < retval {
			retval = cover
		}
	}
	return retval
}

// AppendHoleBlocks appends one octagon per bolt hole, inscribed in the
// nominal hole circle, plus a labeled hole-center point referencing its
// octagon, to dst. Geometry is expressed in the given frame.
func (a *BoltArray) AppendHoleBlocks(dst *export.BlockData, refSys geom.RefSys, props *export.BlockProperties) {
	radius := a.Bolt.NominalHoleDiameter() / 2.0
	for _, pLocal := range a.LocalPositions() {
		octagon := geom.InscribedPolygon(pLocal, radius, 8, 0.0)
		vertices := make([]r3.Vec, len(octagon))
		for i, v := range octagon {
			vertices[i] = refSys.GlobalPosition2D(v)
		}
		blk := dst.BlockFromPoints(vertices, props, 0, "")

		centerProps := export.CopyProperties(props)
		centerProps.AppendAttribute("objType", "hole_center")
		centerProps.AppendAttribute("ownerId", "f"+strconv.Itoa(blk.ID))
		centerProps.AppendAttribute("diameter", a.Bolt.Diameter())
		centerProps.AppendAttribute("boltMaterial", a.Bolt.MaterialName())
		dst.AppendPoint(refSys.GlobalPosition2D(pLocal), centerProps)
	}
}

// HoleBlocks returns the hole blocks in a fresh container.
func (a *BoltArray) HoleBlocks(refSys geom.RefSys, props *export.BlockProperties) *export.BlockData {
	retval := export.NewBlockData()
	a.AppendHoleBlocks(retval, refSys, props)
	return retval
}

// Report writes the array design values in readable form.
func (a *BoltArray) Report(w io.Writer) {
	fmt.Fprintf(w, "      bolts:\n")
	fmt.Fprintf(w, "        number of bolts: %d x %s\n", a.NumberOfBolts(), a.Bolt.Name())
	fmt.Fprintf(w, "        spacing: %.1f mm\n", a.Dist*1000)
	a.Bolt.Report(w)
}

func (a *BoltArray) String() string {
	return fmt.Sprintf("rows: %d, columns: %d, distance between centers: %g m, bolt: %s",
		a.NRows, a.NCols, a.Dist, a.Bolt.Name())
}

type boltArrayJSON struct {
	BoltKind bolt.Kind       `json:"bolt_kind"`
	Bolt     json.RawMessage `json:"bolt"`
	NRows    int             `json:"n_rows"`
	NCols    int             `json:"n_cols"`
	Dist     float64         `json:"dist"`
}

// MarshalJSON serializes the array with a kind tag for the bolt.
func (a *BoltArray) MarshalJSON() ([]byte, error) {
	if a.Bolt == nil {
		return nil, fmt.Errorf("connection: cannot serialize bolt array without bolt")
	}
	raw, err := json.Marshal(a.Bolt)
	if err != nil {
		return nil, err
	}
	return json.Marshal(boltArrayJSON{
		BoltKind: a.Bolt.Kind(),
		Bolt:     raw,
		NRows:    a.NRows,
		NCols:    a.NCols,
		Dist:     a.Dist,
	})
}

// UnmarshalJSON reconstructs the array, resolving the bolt through the
// kind registry.
func (a *BoltArray) UnmarshalJSON(data []byte) error {
	var v boltArrayJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	b, err := bolt.New(v.BoltKind, v.Bolt)
	if err != nil {
		return err
	}
	a.Bolt = b
	a.NRows = v.NRows
	a.NCols = v.NCols
	a.Dist = v.Dist
	return nil
}
