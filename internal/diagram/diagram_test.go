package diagram

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structeng/boltconn/internal/bolt"
	"github.com/structeng/boltconn/internal/connection"
	"github.com/structeng/boltconn/internal/diag"
	"github.com/structeng/boltconn/internal/ec3"
)

func testPlate(t *testing.T) *connection.BoltedPlate {
	t.Helper()
	b, err := bolt.NewEC3Bolt(0.02, ec3.Grade88)
	require.NoError(t, err)
	array, err := connection.NewBoltArray(b, 2, 3, 0.1)
	require.NoError(t, err)
	p, err := connection.NewBoltedPlate(array, connection.PlateParams{
		Thickness: 0.012,
		Steel:     ec3.S275,
	}, diag.Discard)
	require.NoError(t, err)
	return p
}

func TestDrawASCIIPlateLayout(t *testing.T) {
	p := testPlate(t)
	out := DrawASCIIPlateLayout(p)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "PLATE LAYOUT")
	assert.Contains(t, out, "M20")

	// One marker per hole inside the bordered grid.
	markers := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  |") {
			markers += strings.Count(line, "o")
		}
	}
	assert.Equal(t, p.Array.NumberOfBolts(), markers)
}

func TestDrawASCIIPlateLayoutDegenerate(t *testing.T) {
	p := testPlate(t)
	p.Width = 0
	assert.Empty(t, DrawASCIIPlateLayout(p))
}

func TestExportPlateDiagram(t *testing.T) {
	p := testPlate(t)
	path := filepath.Join(t.TempDir(), "plate.png")
	require.NoError(t, ExportPlateDiagram(p, path))
	assert.FileExists(t, path)
}

func TestExportPlateDiagramDefaultsToPNG(t *testing.T) {
	p := testPlate(t)
	path := filepath.Join(t.TempDir(), "plate")
	require.NoError(t, ExportPlateDiagram(p, path))
	assert.FileExists(t, path+".png")
}
