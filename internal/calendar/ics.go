package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// GenerateICS renders one team's records as an iCalendar document with
// one all-day event per dated match. Records whose Date column cannot
// be parsed are left out; if no record has a usable date the result is
// an empty string.
func GenerateICS(team string, records []*result.Record) string {
	var dated []*result.Record
	var dates []time.Time
	for _, r := range records {
		if d := result.ParseDate(r.Date); !d.IsZero() {
			dated = append(dated, r)
			dates = append(dates, d)
		}
	}
	if len(dated) == 0 {
		return ""
	}

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//NSAA Volleyball//nsaa-volleyball//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if team != "" {
		ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s Volleyball\r\n", escapeICS(team)))
	}

	stamp := time.Now().UTC()
	for i, r := range dated {
		writeEvent(&ics, team, r, dates[i], stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// writeEvent appends one match as an all-day VEVENT.
func writeEvent(ics *strings.Builder, team string, r *result.Record, date, stamp time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	// UID - deterministic per team/date/opponent so re-exports update
	// rather than duplicate
	uid := fmt.Sprintf("%s-%s-%s@nsaa-volleyball",
		result.TeamKey(team), date.Format("20060102"), result.TeamKey(r.Opponent))
	ics.WriteString(fmt.Sprintf("UID:%s\r\n", uid))

	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))

	// All-day event: DTEND is the exclusive following day
	ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", date.Format("20060102")))
	ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", date.AddDate(0, 0, 1).Format("20060102")))

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(matchSummary(team, r))))

	if description := matchDescription(r); description != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))
	}

	if location := matchLocation(r); location != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(location)))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// matchSummary builds the event title, e.g. "Wahoo vs Arlington (W 2-0)".
func matchSummary(team string, r *result.Record) string {
	summary := fmt.Sprintf("%s vs %s", team, r.Opponent)

	switch {
	case r.Outcome != "" && r.Score != "":
		summary += fmt.Sprintf(" (%s %s)", r.Outcome, r.Score)
	case r.Outcome != "":
		summary += fmt.Sprintf(" (%s)", r.Outcome)
	case r.Score != "":
		summary += fmt.Sprintf(" (%s)", r.Score)
	}

	return summary
}

// matchDescription collects the record's remaining detail lines.
func matchDescription(r *result.Record) string {
	var lines []string

	if r.EffectiveClass != "" {
		lines = append(lines, fmt.Sprintf("Class: %s", r.EffectiveClass))
	}
	if r.TournamentName != "" {
		lines = append(lines, fmt.Sprintf("Tournament: %s", r.TournamentName))
	}
	if r.HomeAway != "" {
		lines = append(lines, fmt.Sprintf("Home/Away: %s", r.HomeAway))
	}
	if r.Points != "" {
		lines = append(lines, fmt.Sprintf("Points: %s", r.Points))
	}

	return strings.Join(lines, "\n")
}

// matchLocation prefers the match site, falling back to the tournament
// location.
func matchLocation(r *result.Record) string {
	if r.Site != "" {
		return r.Site
	}
	return r.TournamentLocation
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
