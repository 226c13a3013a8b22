package connection

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/structeng/boltconn/internal/diag"
	"github.com/structeng/boltconn/internal/ec3"
	"github.com/structeng/boltconn/internal/export"
	"github.com/structeng/boltconn/internal/geom"
)

// loadComponentTol is the threshold above which an unsupported internal
// force component is reported.
const loadComponentTol = 1e-3

// ThicknessRule computes the minimum plate thickness able to resist a
// design force. The default rule checks net-section yield; base-plate
// style components can inject their own.
type ThicknessRule interface {
	MinThickness(p *BoltedPlate, Pd float64) float64
}

type netSectionRule struct{}

func (netSectionRule) MinThickness(p *BoltedPlate, Pd float64) float64 {
	if p.Steel == nil {
		return 0
	}
	netWidth := p.NetWidth()
	if netWidth <= 0 {
		return math.Inf(1)
	}
	return Pd / (p.Steel.Fyd(p.Thickness) * netWidth)
}

// BoltedPlate is a rectangular steel plate sized to host a bolt array.
// The local frame sits at the bolt array centroid: the plate length runs
// along x, the width along y, and the plate center is shifted by the
// eccentricity. Dimensions are frozen once resolved at construction.
type BoltedPlate struct {
	Array        *BoltArray
	Width        float64
	Length       float64
	Thickness    float64
	Steel        *ec3.Steel
	Eccentricity r2.Vec

	// DoublePlate marks one plate on each side of the main member, so
	// the bolts act in double shear.
	DoublePlate bool

	// Notched marks plates notched around an obstructing flange.
	Notched bool

	// Rule overrides the minimum thickness computation.
	Rule ThicknessRule

	sink diag.Sink
}

// PlateParams are the optional plate attributes. Zero width or length
// means "derive from the bolt arrangement"; zero thickness defaults to
// 10 mm.
type PlateParams struct {
	Width        float64
	Length       float64
	Thickness    float64
	Steel        *ec3.Steel
	Eccentricity r2.Vec
	DoublePlate  bool
	Notched      bool
}

// NewBoltedPlate builds a plate around the array, resolving missing
// dimensions from the bolt arrangement. Insufficient supplied dimensions
// are reported to the sink and leave the plate constructed but
// non-compliant; an exhausted standard distance table while deriving a
// dimension is a construction error. A nil sink selects the default.
func NewBoltedPlate(array *BoltArray, params PlateParams, sink diag.Sink) (*BoltedPlate, error) {
	if array == nil {
		return nil, fmt.Errorf("connection: bolted plate requires a bolt array")
	}
	p := &BoltedPlate{
		Array:        array,
		Width:        params.Width,
		Length:       params.Length,
		Thickness:    params.Thickness,
		Steel:        params.Steel,
		Eccentricity: params.Eccentricity,
		DoublePlate:  params.DoublePlate,
		Notched:      params.Notched,
		sink:         diag.OrDefault(sink),
	}
	if p.Thickness <= 0 {
		p.Thickness = 10e-3
	}
	if err := p.resolveDimensions(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *BoltedPlate) resolveDimensions() error {
	switch {
	case p.Width > 0 && p.Length > 0:
		if !p.CheckDimensions() {
			p.sink.Errorf("bolted plate too small for the bolt arrangement: %.3f x %.3f m, minimum %.3f x %.3f m",
				p.Length, p.Width, p.MinLength(), p.MinWidth())
		}
	case p.Width > 0:
		length, err := p.Array.StandardPlateLength()
		if err != nil {
			return fmt.Errorf("connection: deriving plate length: %w", err)
		}
		p.Length = length
		if !p.CheckWidth() {
			p.sink.Errorf("bolted plate width %.3f m not enough for the bolt arrangement, minimum %.3f m",
				p.Width, p.MinWidth())
		}
	case p.Length > 0:
		width, err := p.Array.StandardPlateWidth()
		if err != nil {
			return fmt.Errorf("connection: deriving plate width: %w", err)
		}
		p.Width = width
		if !p.CheckLength() {
			p.sink.Errorf("bolted plate length %.3f m not enough for the bolt arrangement, minimum %.3f m",
				p.Length, p.MinLength())
		}
	default:
		length, err := p.Array.StandardPlateLength()
		if err != nil {
			return fmt.Errorf("connection: deriving plate length: %w", err)
		}
		width, err := p.Array.StandardPlateWidth()
		if err != nil {
			return fmt.Errorf("connection: deriving plate width: %w", err)
		}
		p.Length = length
		p.Width = width
	}
	return nil
}

// SetSink replaces the diagnostics sink; nil selects the default.
func (p *BoltedPlate) SetSink(sink diag.Sink) {
	p.sink = diag.OrDefault(sink)
}

// MinWidth returns the minimum plate width for the bolt arrangement.
func (p *BoltedPlate) MinWidth() float64 { return p.Array.MinPlateWidth() }

// MinLength returns the minimum plate length for the bolt arrangement.
func (p *BoltedPlate) MinLength() float64 { return p.Array.MinPlateLength() }

// CheckWidth reports whether the plate width strictly exceeds the
// minimum for the bolt arrangement.
func (p *BoltedPlate) CheckWidth() bool {
	return p.Width > p.MinWidth()
}

// CheckLength reports whether the plate length strictly exceeds the
// minimum for the bolt arrangement.
func (p *BoltedPlate) CheckLength() bool {
	return p.Length > p.MinLength()
}

// CheckDimensions reports whether both plate dimensions reach their
// minimums. Unlike CheckWidth and CheckLength this comparison admits
// equality; call sites rely on the distinct thresholds.
func (p *BoltedPlate) CheckDimensions() bool {
	return p.Width >= p.MinWidth() && p.Length >= p.MinLength()
}

// NetWidth returns the plate width net of the bolt holes.
func (p *BoltedPlate) NetWidth() float64 {
	return p.Array.NetWidth(p.Width)
}

// NetArea returns the plate cross-section area net of the bolt holes.
func (p *BoltedPlate) NetArea() float64 {
	return p.NetWidth() * p.Thickness
}

// MinThickness returns the minimum plate thickness for the design force
// Pd, by the injected rule or the net-section yield default.
func (p *BoltedPlate) MinThickness(Pd float64) float64 {
	rule := p.Rule
	if rule == nil {
		rule = netSectionRule{}
	}
	return rule.MinThickness(p, Pd)
}

// CheckThickness returns the ratio of the minimum thickness to the
// actual thickness. Values below 1 mean the thickness is ok.
func (p *BoltedPlate) CheckThickness(Pd float64) float64 {
	return p.MinThickness(Pd) / p.Thickness
}

// ShearStrengthEfficiency returns the governing demand/capacity ratio
// between bolt group shear and plate thickness for the design force Pd.
func (p *BoltedPlate) ShearStrengthEfficiency(Pd float64) float64 {
	retval := p.Array.ShearEfficiency(Pd, p.DoublePlate)
	if cf := p.CheckThickness(Pd); cf > retval {
		retval = cf
	}
	return retval
}

// Efficiency returns the capacity ratio of the plate under the given
// internal forces. Only axial force is resisted; bending and transverse
// shear components beyond tolerance are reported to the sink and left
// out of the ratio.
func (p *BoltedPlate) Efficiency(forces InternalForces) float64 {
	CF := p.ShearStrengthEfficiency(math.Abs(forces.N))
	if math.Abs(forces.My) > loadComponentTol {
		p.sink.Errorf("bolted plate: bending My= %g not implemented yet", forces.My)
	}
	if math.Abs(forces.Mz) > loadComponentTol {
		p.sink.Errorf("bolted plate: bending Mz= %g not implemented yet", forces.Mz)
	}
	if math.Abs(forces.Vy) > loadComponentTol {
		p.sink.Errorf("bolted plate: shear Vy= %g not implemented yet", forces.Vy)
	}
	if math.Abs(forces.Vz) > loadComponentTol {
		p.sink.Errorf("bolted plate: shear Vz= %g not implemented yet", forces.Vz)
	}
	return CF
}

// CoreContour2d returns the rectangular plate contour in local
// coordinates, shifted by the eccentricity.
func (p *BoltedPlate) CoreContour2d() []r2.Vec {
	l2 := p.Length / 2.0
	w2 := p.Width / 2.0
	ex := p.Eccentricity.X
	ey := p.Eccentricity.Y
	return []r2.Vec{
		{X: -l2 + ex, Y: -w2 + ey},
		{X: l2 + ex, Y: -w2 + ey},
		{X: l2 + ex, Y: w2 + ey},
		{X: -l2 + ex, Y: w2 + ey},
	}
}

// ClearDistances returns the clear distance between each hole and the
// plate edge or adjacent hole along the load direction.
func (p *BoltedPlate) ClearDistances(loadDirection r2.Vec) []float64 {
	contour := geom.NewPolygon(p.CoreContour2d())
	return p.Array.ClearDistances(contour, loadDirection)
}

// MinimumCover returns the smallest distance between a hole center and
// the plate contour.
func (p *BoltedPlate) MinimumCover() float64 {
	contour := geom.NewPolygon(p.CoreContour2d())
	return p.Array.MinimumCover(contour)
}

// MinimumCoverInDir returns the smallest distance between a hole center
// and the plate contour along the given direction.
func (p *BoltedPlate) MinimumCoverInDir(direction r2.Vec) float64 {
	contour := geom.NewPolygon(p.CoreContour2d())
	return p.Array.MinimumCoverInDir(contour, direction)
}

// Blocks returns the plate face and its hole blocks in the given frame.
func (p *BoltedPlate) Blocks(refSys geom.RefSys, props *export.BlockProperties) *export.BlockData {
	retval := export.NewBlockData()

	plateProps := export.CopyProperties(props)
	plateProps.AppendAttribute("objType", "bolted_plate")
	matID := ""
	if p.Steel != nil {
		matID = p.Steel.Name
	}
	contour := p.CoreContour2d()
	vertices := make([]r3.Vec, len(contour))
	for i, v := range contour {
		vertices[i] = refSys.GlobalPosition2D(v)
	}
	blk := retval.BlockFromPoints(vertices, plateProps, p.Thickness, matID)

	holeProps := export.CopyProperties(props)
	holeProps.AppendAttribute("objType", "hole")
	holeProps.AppendAttribute("ownerId", fmt.Sprintf("f%d", blk.ID))
	p.Array.AppendHoleBlocks(retval, refSys, holeProps)
	return retval
}

// Report writes the plate design values in readable form.
func (p *BoltedPlate) Report(w io.Writer) {
	fmt.Fprintf(w, "      plate:\n")
	fmt.Fprintf(w, "        dimensions: %.0f x %.0f x %.0f mm\n",
		p.Length*1000, p.Width*1000, p.Thickness*1000)
	if p.Steel != nil {
		fmt.Fprintf(w, "        steel: %s\n", p.Steel.Name)
	}
	fmt.Fprintf(w, "        double plate: %t\n", p.DoublePlate)
	p.Array.Report(w)
}

func (p *BoltedPlate) String() string {
	return fmt.Sprintf("width: %g m, length: %g m, thickness: %g m, double plate: %t, bolts: %s",
		p.Width, p.Length, p.Thickness, p.DoublePlate, p.Array)
}

type boltedPlateJSON struct {
	Width        float64         `json:"width"`
	Length       float64         `json:"length"`
	Thickness    float64         `json:"thickness"`
	SteelType    string          `json:"steel_type,omitempty"`
	Eccentricity r2.Vec          `json:"eccentricity"`
	Notched      bool            `json:"notched"`
	BoltArray    json.RawMessage `json:"bolt_array"`
	DoublePlate  bool            `json:"double_plate"`
}

// MarshalJSON serializes the plate together with its bolt array.
func (p *BoltedPlate) MarshalJSON() ([]byte, error) {
	rawArray, err := json.Marshal(p.Array)
	if err != nil {
		return nil, err
	}
	steelType := ""
	if p.Steel != nil {
		steelType = p.Steel.Name
	}
	return json.Marshal(boltedPlateJSON{
		Width:        p.Width,
		Length:       p.Length,
		Thickness:    p.Thickness,
		SteelType:    steelType,
		Eccentricity: p.Eccentricity,
		Notched:      p.Notched,
		BoltArray:    rawArray,
		DoublePlate:  p.DoublePlate,
	})
}

// UnmarshalJSON reconstructs the plate with the default diagnostics
// sink. Missing dimensions are resolved from the bolt arrangement, as at
// construction.
func (p *BoltedPlate) UnmarshalJSON(data []byte) error {
	var v boltedPlateJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	var array BoltArray
	if err := json.Unmarshal(v.BoltArray, &array); err != nil {
		return err
	}
	var steel *ec3.Steel
	if v.SteelType != "" {
		s, err := ec3.SteelByName(v.SteelType)
		if err != nil {
			return err
		}
		steel = s
	}
	p.Array = &array
	p.Width = v.Width
	p.Length = v.Length
	p.Thickness = v.Thickness
	p.Steel = steel
	p.Eccentricity = v.Eccentricity
	p.Notched = v.Notched
	p.DoublePlate = v.DoublePlate
	if p.sink == nil {
		p.sink = diag.Default()
	}
	if p.Thickness <= 0 {
		p.Thickness = 10e-3
	}
	return p.resolveDimensions()
}

// LoadFromFile loads a bolted plate definition from a JSON file.
func LoadFromFile(path string, sink diag.Sink) (*BoltedPlate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plate file: %w", err)
	}
	var p BoltedPlate
	p.sink = diag.OrDefault(sink)
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plate file %s: %w", path, err)
	}
	return &p, nil
}

// WriteFile writes the plate definition to a JSON file.
func (p *BoltedPlate) WriteFile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
