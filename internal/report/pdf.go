package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// PDFOptions carry the title block fields of a PDF report.
type PDFOptions struct {
	Project string
	Author  string
	Title   string
	Notes   string
}

// WritePDF writes a one-page connection check report.
func WritePDF(s Summary, opts PDFOptions, path string) error {
	if opts.Title == "" {
		opts.Title = "Bolted Connection Check"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if opts.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", opts.Project))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", opts.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	p := s.Plate
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Geometry")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Plate: %.0f x %.0f x %.0f mm", p.Length*1000, p.Width*1000, p.Thickness*1000))
	pdf.Ln(6)
	if p.Steel != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Steel: %s", p.Steel.Name))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Bolts: %d x %s grade %s @ %.0f mm",
		p.Array.NumberOfBolts(), p.Array.Bolt.Name(), p.Array.Bolt.MaterialName(), p.Array.Dist*1000))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Double shear: %t", p.DoublePlate))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Checks (ratio < 1 is compliant)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	rows := []struct {
		name  string
		value string
	}{
		{"Design force", fmt.Sprintf("%.2f kN", s.Force/1000)},
		{"Bolt spacing", fmt.Sprintf("%.3f", s.SpacingRatio)},
		{"Bolt group shear", fmt.Sprintf("%.3f", s.ShearRatio)},
		{"Plate thickness", fmt.Sprintf("%.3f", s.ThicknessRatio)},
		{"Governing efficiency", fmt.Sprintf("%.3f", s.Efficiency)},
		{"Plate dimensions", fmt.Sprintf("%t", s.DimensionsOK)},
		{"Minimum cover", fmt.Sprintf("%.1f mm", s.MinimumCover*1000)},
	}
	for _, r := range rows {
		pdf.Cell(70, 6, r.name)
		pdf.Cell(0, 6, r.value)
		pdf.Ln(6)
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	if s.OK() {
		pdf.Cell(0, 6, "RESULT: COMPLIANT")
	} else {
		pdf.Cell(0, 6, "RESULT: NOT COMPLIANT")
	}
	pdf.Ln(10)

	if opts.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, opts.Notes, "", "L", false)
	}

	return pdf.OutputFileAndClose(path)
}
