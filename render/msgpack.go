package render

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackRenderer writes a Report as MessagePack to a writer. Field names
// are the JSON ones.
type MsgpackRenderer struct {
	W io.Writer
}

func NewMsgpackRenderer(w io.Writer) *MsgpackRenderer {
	return &MsgpackRenderer{W: w}
}

func (r *MsgpackRenderer) Export(rep Report) error {
	enc := msgpack.NewEncoder(r.W)
	enc.SetCustomStructTag("json")
	return enc.Encode(rep)
}

var _ Exporter = (*MsgpackRenderer)(nil)

// ExporterFor returns the Exporter of a format name: "json" or "msgpack".
func ExporterFor(format string, w io.Writer) (Exporter, bool) {
	switch format {
	case "json":
		return NewJSONRenderer(w), true
	case "msgpack":
		return NewMsgpackRenderer(w), true
	}
	return nil, false
}
