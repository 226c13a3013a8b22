// Package export hands connection geometry to external CAD and report
// pipelines as labeled point, face and line primitives.
package export

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// BlockProperties carries free-form labels and attributes attached to an
// exported primitive.
type BlockProperties struct {
	Labels     []string       `json:"labels,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// NewBlockProperties returns empty properties.
func NewBlockProperties() *BlockProperties {
	return &BlockProperties{Attributes: map[string]any{}}
}

// CopyProperties deep-copies the argument; nil yields empty properties.
func CopyProperties(other *BlockProperties) *BlockProperties {
	p := NewBlockProperties()
	if other == nil {
		return p
	}
	p.Labels = append(p.Labels, other.Labels...)
	for k, v := range other.Attributes {
		p.Attributes[k] = v
	}
	return p
}

// AppendLabel adds a label.
func (p *BlockProperties) AppendLabel(label string) {
	p.Labels = append(p.Labels, label)
}

// AppendAttribute sets a key/value attribute.
func (p *BlockProperties) AppendAttribute(key string, value any) {
	if p.Attributes == nil {
		p.Attributes = map[string]any{}
	}
	p.Attributes[key] = value
}

// Attribute returns the value stored under key.
func (p *BlockProperties) Attribute(key string) (any, bool) {
	if p == nil || p.Attributes == nil {
		return nil, false
	}
	v, ok := p.Attributes[key]
	return v, ok
}

// StringAttribute returns the string value stored under key, or "".
func (p *BlockProperties) StringAttribute(key string) string {
	if v, ok := p.Attribute(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// PointRecord is an exported key point.
type PointRecord struct {
	ID         int              `json:"id"`
	Coords     r3.Vec           `json:"coords"`
	Properties *BlockProperties `json:"properties,omitempty"`
}

// Block types.
const (
	BlockFace = "face"
	BlockLine = "line"
)

// BlockRecord is an exported face or line referencing key points by id.
type BlockRecord struct {
	ID         int              `json:"id"`
	Type       string           `json:"type"`
	KPoints    []int            `json:"k_points"`
	Thickness  float64          `json:"thickness,omitempty"`
	MatID      string           `json:"mat_id,omitempty"`
	Properties *BlockProperties `json:"properties,omitempty"`
}

// BlockData is an ordered container of exported primitives.
type BlockData struct {
	Points []*PointRecord `json:"points"`
	Blocks []*BlockRecord `json:"blocks"`

	nextPointID int
	nextBlockID int
}

// NewBlockData returns an empty container.
func NewBlockData() *BlockData {
	return &BlockData{}
}

// AppendPoint registers a key point and returns its id.
func (bd *BlockData) AppendPoint(coords r3.Vec, props *BlockProperties) int {
	id := bd.nextPointID
	bd.nextPointID++
	bd.Points = append(bd.Points, &PointRecord{ID: id, Coords: coords, Properties: props})
	return id
}

// AppendBlock registers a block, assigning it the next free id, and
// returns that id.
func (bd *BlockData) AppendBlock(b *BlockRecord) int {
	b.ID = bd.nextBlockID
	bd.nextBlockID++
	bd.Blocks = append(bd.Blocks, b)
	return b.ID
}

// BlockFromPoints registers the vertices as key points and a face block
// joining them.
func (bd *BlockData) BlockFromPoints(vertices []r3.Vec, props *BlockProperties, thickness float64, matID string) *BlockRecord {
	kPoints := make([]int, len(vertices))
	for i, v := range vertices {
		kPoints[i] = bd.AppendPoint(v, CopyProperties(props))
	}
	blk := &BlockRecord{
		Type:       BlockFace,
		KPoints:    kPoints,
		Thickness:  thickness,
		MatID:      matID,
		Properties: CopyProperties(props),
	}
	bd.AppendBlock(blk)
	return blk
}

// Extend appends the points and blocks of other, renumbering them into
// this container's id space. It returns the id offsets applied.
func (bd *BlockData) Extend(other *BlockData) (pointOffset, blockOffset int) {
	if other == nil {
		return 0, 0
	}
	pointOffset = bd.nextPointID
	blockOffset = bd.nextBlockID
	for _, p := range other.Points {
		bd.Points = append(bd.Points, &PointRecord{
			ID:         p.ID + pointOffset,
			Coords:     p.Coords,
			Properties: p.Properties,
		})
	}
	bd.nextPointID += len(other.Points)
	for _, b := range other.Blocks {
		kPoints := make([]int, len(b.KPoints))
		for i, k := range b.KPoints {
			kPoints[i] = k + pointOffset
		}
		bd.Blocks = append(bd.Blocks, &BlockRecord{
			ID:         b.ID + blockOffset,
			Type:       b.Type,
			KPoints:    kPoints,
			Thickness:  b.Thickness,
			MatID:      b.MatID,
			Properties: b.Properties,
		})
	}
	bd.nextBlockID += len(other.Blocks)
	return pointOffset, blockOffset
}

// PointsWithAttribute returns the points whose string attribute under key
// equals value.
func (bd *BlockData) PointsWithAttribute(key, value string) []*PointRecord {
	var out []*PointRecord
	for _, p := range bd.Points {
		if p.Properties.StringAttribute(key) == value {
			out = append(out, p)
		}
	}
	return out
}

// Point returns the point with the given id.
func (bd *BlockData) Point(id int) *PointRecord {
	for _, p := range bd.Points {
		if p.ID == id {
			return p
		}
	}
	return nil
}
