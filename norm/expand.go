package norm

import (
	"fmt"
	"iter"
	"strings"
	"unicode"

	"github.com/tvolkar/flightslt/models"
)

// expandRow special-cases rows whose last cell holds newlines, like
// explain plans.
//
// Transforms input like
//
//	["logical_plan", "Sort: d.b ASC NULLS LAST\n  Projection: d.b"]
//
// into one row per line:
//
//	["logical_plan"]
//	["01)Sort: d.b ASC NULLS LAST"]
//	["02)--Projection: d.b"]
//
// Each line carries a two-digit 1-based line number so reviewing plan
// changes is easier, and one '-' per leading whitespace character,
// since the comparison harness ignores whitespace differences.
//
// The sequence yields the original row (minus the expanded cell)
// first, then the lines in order; ConvertBatches drains it exactly
// once.
func expandRow(row models.Row) iter.Seq[models.Row] {
	return func(yield func(models.Row) bool) {
		if len(row) == 0 {
			yield(row)
			return
		}

		lines := strings.Split(row[len(row)-1], "\n")
		if len(lines) < 2 {
			yield(row)
			return
		}

		if !yield(row[:len(row)-1]) {
			return
		}
		for i, line := range lines {
			content := strings.TrimLeftFunc(line, unicode.IsSpace)
			dashes := strings.Repeat("-", len(line)-len(content))
			if !yield(models.Row{fmt.Sprintf("%02d)%s%s", i+1, dashes, content)}) {
				return
			}
		}
	}
}
