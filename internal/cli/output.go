package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
)

// ScrapeReport describes one scrape run
type ScrapeReport struct {
	ScrapedAt time.Time       `json:"scraped_at"`
	Classes   []string        `json:"classes"`
	Teams     int             `json:"teams"`
	Records   int             `json:"records"`
	Warnings  []ReportWarning `json:"warnings,omitempty"`
	Output    string          `json:"output"`
}

// ReportWarning is one failed classification in a scrape report
type ReportWarning struct {
	Class string `json:"class"`
	Error string `json:"error"`
}

// WriteScrapeReport writes the run report in the specified format. Text
// format is the single confirmation line with the resolved output path;
// warnings have already gone to stderr by then.
func WriteScrapeReport(w io.Writer, report *ScrapeReport, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		_, err := fmt.Fprintf(w, "Wrote %s\n", report.Output)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// TeamSummary is one team's aggregate line for the teams subcommand
type TeamSummary struct {
	Team    string `json:"team"`
	Class   string `json:"class"`
	Matches int    `json:"matches"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Latest  string `json:"latest,omitempty"`
}

// WriteTeamSummaries writes team summaries in the specified format. The
// caption, when non-empty, describes the filters the summaries passed
// through; table and text formats display it, JSON consumers filter
// themselves.
func WriteTeamSummaries(w io.Writer, summaries []*TeamSummary, format OutputFormat, caption string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summaries)
	case FormatTable:
		writeSummaryTable(w, summaries, caption)
		return nil
	case FormatText:
		return writeSummaryText(w, summaries, caption)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs any report value as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeSummaryTable renders summaries as a rounded table
func writeSummaryTable(w io.Writer, summaries []*TeamSummary, caption string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Team", "Class", "Matches", "W", "L", "Latest"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.Team, s.Class, s.Matches, s.Wins, s.Losses, s.Latest})
	}
	if caption != "" {
		t.SetCaption("%s", caption)
	}
	t.Render()
}

// writeSummaryText outputs summaries as human-readable text
func writeSummaryText(w io.Writer, summaries []*TeamSummary, caption string) error {
	if caption != "" {
		fmt.Fprintf(w, "%s\n\n", caption)
	}

	for _, s := range summaries {
		fmt.Fprintf(w, "%s (%s): %d-%d over %d matches", s.Team, s.Class, s.Wins, s.Losses, s.Matches)
		if s.Latest != "" {
			fmt.Fprintf(w, ", last %s", s.Latest)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nTotal: %d teams\n", len(summaries))
	return nil
}

// summarize folds one team's records into a summary line
func summarize(key string, records []*result.Record) *TeamSummary {
	s := &TeamSummary{
		Team:    records[0].Team,
		Class:   dominantClass(records),
		Matches: len(records),
	}
	if s.Team == "" {
		s.Team = key
	}

	for _, r := range records {
		if r.Won() {
			s.Wins++
		}
		if r.Lost() {
			s.Losses++
		}
	}

	if latest := latestRecord(records); latest != nil {
		s.Latest = formatLatest(latest)
	}

	return s
}

// dominantClass picks the class most of the team's records carry. Most
// opponents sit in the team's own classification, so the majority value
// is the team's bracket even when cross-class matches appear.
func dominantClass(records []*result.Record) string {
	counts := make(map[string]int)
	for _, r := range records {
		if r.EffectiveClass != "" {
			counts[r.EffectiveClass]++
		}
	}

	best := ""
	for class, n := range counts {
		if n > counts[best] || (n == counts[best] && (best == "" || class < best)) {
			best = class
		}
	}
	return best
}

// latestRecord returns the team's most recent dated record, or the last
// row in page order when no dates parse.
func latestRecord(records []*result.Record) *result.Record {
	if len(records) == 0 {
		return nil
	}

	var latest *result.Record
	var latestDate time.Time
	for _, r := range records {
		d := result.ParseDate(r.Date)
		if d.IsZero() {
			continue
		}
		if latest == nil || d.After(latestDate) {
			latest = r
			latestDate = d
		}
	}

	if latest == nil {
		return records[len(records)-1]
	}
	return latest
}

// formatLatest renders one record as a short result line, e.g.
// "W vs Wahoo 2-0 (10/2/2025)"
func formatLatest(r *result.Record) string {
	out := "vs " + r.Opponent
	if r.Outcome != "" {
		out = r.Outcome + " " + out
		if r.Score != "" {
			out += " " + r.Score
		}
	}
	if r.Date != "" {
		out += " (" + r.Date + ")"
	}
	return out
}
