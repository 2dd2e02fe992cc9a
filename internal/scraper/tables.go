package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nsaa-volleyball/internal/logger"
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// Rows whose cells mention these markers open the summary/footer block
// that follows a team's schedule rows.
var stopMarkers = []string{"Total Points", "Average Points", "Win %"}

// rowState tracks where extraction stands within one team's table.
type rowState int

const (
	seekingHeader rowState = iota // scanning for the Date/Opponent header row
	inData                        // consuming data rows after the header
	stopped                       // hit a footer block or a nested caption
)

// ParseClassPage extracts every team's result records from one
// classification page. Each table caption names a team; the caption's
// enclosing table holds that team's schedule. Teams whose tables yield
// no usable rows are omitted. A later caption canonicalizing to the same
// team key replaces the earlier entry.
func ParseClassPage(r io.Reader, code string) (map[string][]*result.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	byTeam := make(map[string][]*result.Record)

	doc.Find("caption").Each(func(_ int, caption *goquery.Selection) {
		table := caption.Closest("table")
		if table.Length() == 0 {
			return
		}

		display := cellText(caption)
		name, key := result.ParseTeamDisplay(display)

		logger.IncrCounter("extract.tables")
		records := newTableExtractor(code, name, display).run(table)
		if len(records) == 0 {
			logger.IncrCounter("extract.tables_skipped")
			return
		}
		byTeam[key] = records
	})

	return byTeam, nil
}

// tableExtractor pulls one team's records out of its table, driven by
// the rowState machine.
type tableExtractor struct {
	code    string
	team    string
	display string

	state   rowState
	columns map[string]int
	records []*result.Record
}

func newTableExtractor(code, team, display string) *tableExtractor {
	return &tableExtractor{
		code:    code,
		team:    team,
		display: display,
		state:   seekingHeader,
	}
}

// run scans the table's rows in document order for the header row, then
// consumes the header's following sibling rows until the table ends or a
// footer stops it. Tables with no detectable header yield nothing:
// classification pages carry summary tables that must be skipped without
// aborting the page.
func (x *tableExtractor) run(table *goquery.Selection) []*result.Record {
	var headerRow *goquery.Selection

	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if index, ok := headerIndex(cellTexts(tr, "td, th")); ok {
			x.columns = index
			x.state = inData
			headerRow = tr
			return false
		}
		return true
	})

	if x.state != inData {
		return nil
	}

	headerRow.NextAllFiltered("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		return x.scanRow(tr)
	})

	return x.records
}

// scanRow advances the machine by one row in the data section and
// reports whether scanning should continue.
func (x *tableExtractor) scanRow(tr *goquery.Selection) bool {
	if x.state != inData {
		return false
	}

	// A nested caption means the next team's table got folded into this
	// one; a stop marker in any cell opens the totals block. Either way
	// this team's rows are over.
	if tr.Find("caption").Length() > 0 || hasStopMarker(cellTexts(tr, "td, th")) {
		x.state = stopped
		return false
	}

	if isSeparatorRow(tr) {
		return true
	}

	// Data values come from td cells only; header-styled cells never
	// carry data.
	cells := cellTexts(tr, "td")
	if len(cells) == 0 {
		return true
	}

	if record := x.buildRecord(cells); !record.IsBlank() {
		x.records = append(x.records, record)
		logger.IncrCounter("extract.records")
	}
	return true
}

// buildRecord maps a data row's cells through the header's column index.
// Columns the header lacked, and columns whose position is beyond this
// row's cell count, stay unset.
func (x *tableExtractor) buildRecord(cells []string) *result.Record {
	record := &result.Record{
		Team:        x.team,
		TeamDisplay: x.display,
	}
	for _, label := range result.Columns {
		if i, ok := x.columns[label]; ok && i < len(cells) {
			record.SetColumn(label, cells[i])
		}
	}
	record.ResolveClass(x.code)
	return record
}

func hasStopMarker(cells []string) bool {
	for _, cell := range cells {
		for _, marker := range stopMarkers {
			if strings.Contains(cell, marker) {
				return true
			}
		}
	}
	return false
}

// isSeparatorRow reports whether the row is purely visual filler: a
// single cell holding a bare hyphen or a rendered horizontal rule.
// Separators are skipped, never stopped on.
func isSeparatorRow(tr *goquery.Selection) bool {
	cells := tr.Find("td, th")
	if cells.Length() != 1 {
		return false
	}
	cell := cells.First()
	if cell.Find("hr").Length() > 0 {
		return true
	}
	return cellText(cell) == "-"
}
