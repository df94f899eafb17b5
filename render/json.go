package render

import (
	"encoding/json"
	"io"
)

// Exporter writes a Report to a writer.
type Exporter interface {
	Export(rep Report) error
}

// JSONRenderer writes a Report as indented JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

func (r *JSONRenderer) Export(rep Report) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// compile-time interface check
var _ Exporter = (*JSONRenderer)(nil)
