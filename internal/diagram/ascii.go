package diagram

import (
	"fmt"
	"strings"

	"github.com/structeng/boltconn/internal/connection"
)

// DrawASCIIPlateLayout creates an ASCII representation of the bolted
// plate with its hole positions.
func DrawASCIIPlateLayout(plate *connection.BoltedPlate) string {
	var sb strings.Builder

	// Scale factors for ASCII drawing
	widthChars := 48
	heightChars := 16

	length := plate.Length
	width := plate.Width
	if length <= 0 || width <= 0 {
		return ""
	}

	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = make([]rune, widthChars)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Hole centers, mapped from the centered local frame to grid cells.
	ex := plate.Eccentricity.X
	ey := plate.Eccentricity.Y
	for _, c := range plate.Array.LocalPositions() {
		col := int((c.X - ex + length/2) / length * float64(widthChars-1))
		row := int((c.Y - ey + width/2) / width * float64(heightChars-1))
		if col < 0 || col >= widthChars || row < 0 || row >= heightChars {
			continue
		}
		grid[heightChars-1-row][col] = 'o'
	}

	sb.WriteString("\n")
	sb.WriteString("  PLATE LAYOUT (not to scale)\n\n")
	border := "  +" + strings.Repeat("-", widthChars) + "+\n"
	sb.WriteString(border)
	for _, row := range grid {
		sb.WriteString("  |")
		sb.WriteString(string(row))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	sb.WriteString(fmt.Sprintf("  %.0f x %.0f x %.0f mm, %d x %s @ %.0f mm\n",
		plate.Length*1000, plate.Width*1000, plate.Thickness*1000,
		plate.Array.NumberOfBolts(), plate.Array.Bolt.Name(), plate.Array.Dist*1000))
	return sb.String()
}
