package export

import (
	"encoding/json"
	"io"
	"os"
)

// WriteJSON writes the block data as indented JSON.
func (bd *BlockData) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(bd)
}

// WriteJSONFile writes the block data to a JSON file.
func (bd *BlockData) WriteJSONFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bd.WriteJSON(f)
}
