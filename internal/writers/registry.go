// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"fb2nep/internal/output"
	"fb2nep/internal/summary"
)

// SummaryWriters maps a --summary format to its renderer.
// Register in init(); last registration wins.
var SummaryWriters = map[string]func(io.Writer, summary.Summary) error{}

func RegisterSummary(format string, fn func(io.Writer, summary.Summary) error) {
	SummaryWriters[format] = fn
}

// WriteSummary dispatches to the renderer registered for format.
func WriteSummary(format string, w io.Writer, s summary.Summary) error {
	fn, ok := SummaryWriters[format]
	if !ok {
		return fmt.Errorf("unknown summary format %q (no writer registered)", format)
	}
	return fn(w, s)
}

func init() {
	RegisterSummary(output.FormatText, summary.WriteText)
	RegisterSummary(output.FormatJSON, summary.WriteJSON)
}
