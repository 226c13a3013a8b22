package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"
)

var layerColors = []color.ColorNumber{
	color.White,
	color.Red,
	color.Green,
	color.Cyan,
	color.Yellow,
	color.Magenta,
}

// WriteDXF writes the block data as a DXF drawing. Primitives are placed
// on layers named after their objType attribute.
func WriteDXF(path string, bd *BlockData) error {
	d := dxf.NewDrawing()

	layers := map[string]bool{}
	useLayer := func(name string) error {
		if name == "" {
			name = "0"
		}
		if !layers[name] {
			cl := layerColors[len(layers)%len(layerColors)]
			if _, err := d.AddLayer(name, cl, table.LT_CONTINUOUS, true); err != nil {
				return err
			}
			layers[name] = true
			return nil
		}
		return d.ChangeLayer(name)
	}

	for _, blk := range bd.Blocks {
		if err := useLayer(blk.Properties.StringAttribute("objType")); err != nil {
			return err
		}
		switch blk.Type {
		case BlockLine:
			if len(blk.KPoints) != 2 {
				return fmt.Errorf("export: line block %d has %d points", blk.ID, len(blk.KPoints))
			}
			a, b := bd.Point(blk.KPoints[0]), bd.Point(blk.KPoints[1])
			if a == nil || b == nil {
				return fmt.Errorf("export: line block %d references missing points", blk.ID)
			}
			if _, err := d.Line(a.Coords.X, a.Coords.Y, a.Coords.Z, b.Coords.X, b.Coords.Y, b.Coords.Z); err != nil {
				return err
			}
		case BlockFace:
			n := len(blk.KPoints)
			for i := 0; i < n; i++ {
				a := bd.Point(blk.KPoints[i])
				b := bd.Point(blk.KPoints[(i+1)%n])
				if a == nil || b == nil {
					return fmt.Errorf("export: face block %d references missing points", blk.ID)
				}
				if _, err := d.Line(a.Coords.X, a.Coords.Y, a.Coords.Z, b.Coords.X, b.Coords.Y, b.Coords.Z); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("export: unknown block type %q", blk.Type)
		}
	}

	for _, p := range bd.Points {
		objType := p.Properties.StringAttribute("objType")
		if objType == "" {
			continue // face vertices are already drawn as edges
		}
		if err := useLayer(objType); err != nil {
			return err
		}
		if _, err := d.Point(p.Coords.X, p.Coords.Y, p.Coords.Z); err != nil {
			return err
		}
	}

	return d.SaveAs(path)
}
