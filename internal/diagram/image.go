package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/structeng/boltconn/internal/connection"
	"github.com/structeng/boltconn/internal/geom"
)

// ExportPlateDiagram exports a bolted plate layout diagram to an image
// file (png, svg or pdf by extension).
func ExportPlateDiagram(plate *connection.BoltedPlate, filename string) error {
	p := plot.New()
	p.Title.Text = "Bolted Plate Layout"
	p.X.Label.Text = "Length (mm)"
	p.Y.Label.Text = "Width (mm)"

	// Plate contour
	contour := plate.CoreContour2d()
	outline := make(plotter.XYs, len(contour)+1)
	for i, v := range contour {
		outline[i] = plotter.XY{X: v.X * 1000, Y: v.Y * 1000}
	}
	outline[len(contour)] = outline[0]
	plateLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	plateLine.LineStyle.Width = vg.Points(2)
	plateLine.LineStyle.Color = color.Black
	p.Add(plateLine)

	// Hole octagons
	radius := plate.Array.Bolt.NominalHoleDiameter() / 2.0
	for _, center := range plate.Array.LocalPositions() {
		octagon := geom.InscribedPolygon(center, radius, 8, 0.0)
		pts := make(plotter.XYs, len(octagon))
		for i, v := range octagon {
			pts[i] = plotter.XY{X: v.X * 1000, Y: v.Y * 1000}
		}
		hole, err := plotter.NewPolygon(pts)
		if err != nil {
			return err
		}
		hole.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
		hole.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(hole)
	}

	// Bolt centers
	centers := plate.Array.LocalPositions()
	centerPts := make(plotter.XYs, len(centers))
	for i, c := range centers {
		centerPts[i] = plotter.XY{X: c.X * 1000, Y: c.Y * 1000}
	}
	boltCenters, err := plotter.NewScatter(centerPts)
	if err != nil {
		return err
	}
	boltCenters.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	boltCenters.GlyphStyle.Radius = vg.Points(2)
	boltCenters.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(boltCenters)

	// Annotate plate size and bolt layout
	labels := []struct {
		x, y float64
		text string
	}{
		{0, plate.Width / 2 * 1000, fmt.Sprintf("%.0f x %.0f x %.0f mm",
			plate.Length*1000, plate.Width*1000, plate.Thickness*1000)},
		{0, -plate.Width / 2 * 1000, fmt.Sprintf("%d x %s @ %.0f mm",
			plate.Array.NumberOfBolts(), plate.Array.Bolt.Name(), plate.Array.Dist*1000)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
