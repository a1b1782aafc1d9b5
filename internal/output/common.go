package output

import (
	"strings"

	"fb2nep/internal/dataset"
)

// Header is the canonical CSV header row (no trailing newline).
// Every CSV writer emits exactly this line first.
var Header = strings.Join(dataset.Columns, ",")

// Summary formats accepted by --summary.
const (
	FormatNone = "none"
	FormatText = "text"
	FormatJSON = "json"
)
