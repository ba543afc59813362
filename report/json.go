// Package report turns a benchmark result set into the artifacts the thesis
// consumes: a JSON dump, LaTeX tables, CSV exports, and SVG figures.
package report

import (
	"encoding/json"
	"io"

	"github.com/ajaouad/pqcbench/bench"
)

// WriteJSON writes the full result set as indented JSON.
func WriteJSON(results *bench.Results, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
