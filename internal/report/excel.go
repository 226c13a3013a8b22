package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/structeng/boltconn/internal/bolt"
	"github.com/structeng/boltconn/internal/connection"
	"github.com/structeng/boltconn/internal/diag"
	"github.com/structeng/boltconn/internal/ec3"
)

// BatchRow is one connection definition read from a spreadsheet. Lengths
// in millimeters and forces in kN, matching what engineers type into
// sheets; zero width/length/dist mean "derive".
type BatchRow struct {
	DiameterMM  float64
	Grade       string
	NRows       int
	NCols       int
	DistMM      float64
	WidthMM     float64
	LengthMM    float64
	ThicknessMM float64
	Steel       string
	ForceKN     float64
	DoublePlate bool
}

var batchHeader = []string{
	"diameter_mm", "grade", "rows", "cols", "dist_mm",
	"width_mm", "length_mm", "thickness_mm", "steel", "force_kn", "double",
}

var resultHeader = append(append([]string{}, batchHeader...),
	"spacing_ratio", "shear_ratio", "thickness_ratio", "efficiency", "ok")

// ReadBatch reads connection rows from the first sheet of an XLSX file.
// The first row is a header and is skipped; short or malformed rows are
// skipped as well.
func ReadBatch(path string) ([]BatchRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("report: sheet %q has no data rows", sheet)
	}

	var out []BatchRow
	for i := 1; i < len(rows); i++ {
		row, err := parseBatchRow(rows[i])
		if err != nil {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func parseBatchRow(cells []string) (BatchRow, error) {
	if len(cells) < 11 {
		return BatchRow{}, fmt.Errorf("report: row has %d cells, want 11", len(cells))
	}
	num := func(s string) float64 {
		v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return v
	}
	row := BatchRow{
		DiameterMM:  num(cells[0]),
		Grade:       strings.TrimSpace(cells[1]),
		NRows:       int(num(cells[2])),
		NCols:       int(num(cells[3])),
		DistMM:      num(cells[4]),
		WidthMM:     num(cells[5]),
		LengthMM:    num(cells[6]),
		ThicknessMM: num(cells[7]),
		Steel:       strings.TrimSpace(cells[8]),
		ForceKN:     num(cells[9]),
		DoublePlate: strings.EqualFold(strings.TrimSpace(cells[10]), "true"),
	}
	if row.DiameterMM <= 0 || row.NRows < 1 || row.NCols < 1 {
		return BatchRow{}, fmt.Errorf("report: invalid connection row")
	}
	return row, nil
}

// Plate builds the bolted plate described by the row.
func (r BatchRow) Plate(sink diag.Sink) (*connection.BoltedPlate, error) {
	b, err := bolt.NewEC3Bolt(r.DiameterMM/1000, ec3.BoltGrade(r.Grade))
	if err != nil {
		return nil, err
	}
	array, err := connection.NewBoltArray(b, r.NRows, r.NCols, r.DistMM/1000)
	if err != nil {
		return nil, err
	}
	var steel *ec3.Steel
	if r.Steel != "" {
		steel, err = ec3.SteelByName(r.Steel)
		if err != nil {
			return nil, err
		}
	}
	return connection.NewBoltedPlate(array, connection.PlateParams{
		Width:       r.WidthMM / 1000,
		Length:      r.LengthMM / 1000,
		Thickness:   r.ThicknessMM / 1000,
		Steel:       steel,
		DoublePlate: r.DoublePlate,
	}, sink)
}

// RunBatch checks every connection of the input workbook and writes the
// results workbook. It returns the number of checked rows.
func RunBatch(inPath, outPath string, sink diag.Sink) (int, error) {
	rows, err := ReadBatch(inPath)
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for c, h := range resultHeader {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return 0, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return 0, err
		}
	}

	checked := 0
	for i, row := range rows {
		plate, err := row.Plate(sink)
		if err != nil {
			sink.Errorf("batch row %d: %v", i+2, err)
			continue
		}
		s := Summarize(plate, row.ForceKN*1000)
		values := []any{
			row.DiameterMM, row.Grade, row.NRows, row.NCols, plate.Array.Dist * 1000,
			plate.Width * 1000, plate.Length * 1000, plate.Thickness * 1000,
			row.Steel, row.ForceKN, row.DoublePlate,
			s.SpacingRatio, s.ShearRatio, s.ThicknessRatio, s.Efficiency, s.OK(),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, checked+2)
			if err != nil {
				return 0, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return 0, err
			}
		}
		checked++
	}

	if err := f.SaveAs(outPath); err != nil {
		return 0, err
	}
	return checked, nil
}
