// Package export serializes a citation graph for external graph tooling.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/lhartung/reviz/internal/graph"
)

// Supported graph file formats.
const (
	FormatGraphML = "graphml"
	FormatGEXF    = "gexf"
)

// ErrUnknownFormat is returned for a format this package cannot write.
// It fails the export call only; nothing already written is touched.
var ErrUnknownFormat = errors.New("unknown export file format")

// Write serializes the graph in the requested format.
func Write(w io.Writer, g *graph.Graph, format string) error {
	switch format {
	case FormatGraphML:
		return writeGraphML(w, g)
	case FormatGEXF:
		return writeGEXF(w, g)
	default:
		return fmt.Errorf("%w: %q (use %s or %s)", ErrUnknownFormat, format, FormatGraphML, FormatGEXF)
	}
}
