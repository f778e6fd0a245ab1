// Package render formats analysis results: an ASCII abstraction profile,
// tab-separated lines, and JSON.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cognicore/ladder/pkg/ladder"
)

// Chart renders results as a bar-chart profile. One row per level from
// the highest level present down to 1, a `#` marking every sentence at or
// above that level; then a dashed separator, a 1-based position row, and
// (when the results span more than one paragraph) a row marking each
// paragraph boundary with `|`. Trailing whitespace is stripped from every
// line. Empty input renders as an empty string.
func Chart(results []ladder.Result) string {
	if len(results) == 0 {
		return ""
	}

	maxLevel := 0
	for _, r := range results {
		if r.Level > maxLevel {
			maxLevel = r.Level
		}
	}

	var buf strings.Builder
	for lvl := maxLevel; lvl >= 1; lvl-- {
		var row strings.Builder
		fmt.Fprintf(&row, "%d | ", lvl)
		for _, r := range results {
			if r.Level >= lvl {
				row.WriteString("# ")
			} else {
				row.WriteString("  ")
			}
		}
		buf.WriteString(strings.TrimRight(row.String(), " "))
		buf.WriteByte('\n')
	}

	buf.WriteString(strings.Repeat("-", 2*len(results)))
	buf.WriteByte('\n')

	var idx strings.Builder
	idx.WriteString("    ")
	for i := range results {
		fmt.Fprintf(&idx, "%d ", i+1)
	}
	buf.WriteString(strings.TrimRight(idx.String(), " "))
	buf.WriteByte('\n')

	if boundaries := paragraphBoundaries(results); boundaries != "" {
		buf.WriteString(boundaries)
		buf.WriteByte('\n')
	}

	return buf.String()
}

// paragraphBoundaries returns the boundary row, or "" when all results
// share one paragraph.
func paragraphBoundaries(results []ladder.Result) string {
	marked := false
	var row strings.Builder
	row.WriteString("    ")
	for i, r := range results {
		if i > 0 && r.Paragraph != results[i-1].Paragraph {
			row.WriteString("| ")
			marked = true
		} else {
			row.WriteString("  ")
		}
	}
	if !marked {
		return ""
	}
	return strings.TrimRight(row.String(), " ")
}

// Lines formats one `sentence<TAB>レベルN` line per result, the analyzer's
// human-readable output.
func Lines(results []ladder.Result) string {
	var buf strings.Builder
	for _, r := range results {
		fmt.Fprintf(&buf, "%s\tレベル%d\n", r.Sentence, r.Level)
	}
	return buf.String()
}

// JSON serializes results as an indented JSON array preserving document
// order.
func JSON(results []ladder.Result) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
