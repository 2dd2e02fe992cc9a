package scraper

import (
	"strings"

	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

var recognizedColumns = func() map[string]bool {
	m := make(map[string]bool, len(result.Columns))
	for _, label := range result.Columns {
		m[label] = true
	}
	return m
}()

// normalizeLabel prepares a header cell's text for matching. Some pages
// label the opponent column "Opponents"; it folds to the singular.
func normalizeLabel(cell string) string {
	return strings.ReplaceAll(strings.TrimSpace(cell), "Opponents", "Opponent")
}

// headerIndex builds a column-label to cell-position map from one row's
// cell texts. The row qualifies as a header only when it carries both
// the Date and Opponent labels; otherwise ok is false and the row is not
// a header. Only recognized column labels are indexed, first occurrence
// wins, and unrecognized cells are ignored rather than rejected (pages
// add display-only columns freely).
func headerIndex(cells []string) (index map[string]int, ok bool) {
	index = make(map[string]int)
	for i, cell := range cells {
		label := normalizeLabel(cell)
		if !recognizedColumns[label] {
			continue
		}
		if _, seen := index[label]; seen {
			continue
		}
		index[label] = i
	}

	if _, hasDate := index[result.ColDate]; !hasDate {
		return nil, false
	}
	if _, hasOpponent := index[result.ColOpponent]; !hasOpponent {
		return nil, false
	}
	return index, true
}
