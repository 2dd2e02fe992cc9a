// Package filter narrows scraped volleyball records for the read-side
// commands.
//
// Filters select records by various criteria:
//   - Date ranges (from/to, inclusive)
//   - Classes (exact match on the effective class, case-insensitive)
//   - Team names (substring matching, case-insensitive)
//   - Opponent names (substring matching, case-insensitive)
//   - Home/Away designation
//   - Weekends only (Saturday/Sunday, the usual tournament days)
//
// Example usage:
//
//	// Weekend C1 matches against Wahoo
//	f := filter.NewFilter()
//	f.WeekendsOnly = true
//	f.Classes = []string{"C1"}
//	f.Opponents = []string{"Wahoo"}
//
//	// Apply filter to one team's records
//	filtered := f.Apply(records)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// Filter represents record filtering criteria
type Filter struct {
	// Date range filtering over the record's Date column
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Effective class filtering (exact match, case-insensitive)
	Classes []string `json:"classes,omitempty"`

	// Team name filtering (case-insensitive substring match)
	Teams []string `json:"teams,omitempty"`

	// Opponent name filtering (case-insensitive substring match)
	Opponents []string `json:"opponents,omitempty"`

	// Home/Away filtering; "h" or "home" keeps home matches,
	// "a" or "away" keeps away matches
	HomeAway string `json:"home_away,omitempty"`

	// Weekend-only filtering (Saturday/Sunday)
	WeekendsOnly bool `json:"weekends_only,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all records until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Classes:   []string{},
		Teams:     []string{},
		Opponents: []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would match all records.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Classes) == 0 &&
		len(f.Teams) == 0 &&
		len(f.Opponents) == 0 &&
		f.HomeAway == "" &&
		!f.WeekendsOnly
}

// Matches checks if a record passes all active filter criteria.
// An empty filter matches all records.
//
// Matching logic:
//   - Date range: the record's date must fall within DateFrom and DateTo
//     (inclusive); records with no parseable date pass date criteria
//   - Classes: the record's effective class must equal one entry
//   - Teams: the record's team name must contain at least one entry
//   - Opponents: the opponent must contain at least one entry
//   - HomeAway: the record's Home/Away column must agree
//   - WeekendsOnly: the record's date must be a Saturday or Sunday
func (f *Filter) Matches(r *result.Record) bool {
	if f.IsEmpty() {
		return true
	}

	date := result.ParseDate(r.Date)

	if f.DateFrom != nil && !date.IsZero() {
		if date.Before(*f.DateFrom) {
			return false
		}
	}

	if f.DateTo != nil && !date.IsZero() {
		if date.After(*f.DateTo) {
			return false
		}
	}

	if f.WeekendsOnly && !date.IsZero() {
		weekday := date.Weekday()
		if weekday != time.Saturday && weekday != time.Sunday {
			return false
		}
	}

	if len(f.Classes) > 0 {
		matched := false
		for _, class := range f.Classes {
			if strings.EqualFold(r.EffectiveClass, class) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Teams) > 0 {
		matched := false
		teamLower := strings.ToLower(r.Team)
		for _, team := range f.Teams {
			if strings.Contains(teamLower, strings.ToLower(team)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Opponents) > 0 {
		matched := false
		opponentLower := strings.ToLower(r.Opponent)
		for _, opponent := range f.Opponents {
			if strings.Contains(opponentLower, strings.ToLower(opponent)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.HomeAway != "" && !matchesHomeAway(r.HomeAway, f.HomeAway) {
		return false
	}

	return true
}

// matchesHomeAway compares a record's Home/Away cell against the wanted
// designation by first letter, so "H", "Home", and "home" all agree.
func matchesHomeAway(value, want string) bool {
	if value == "" || want == "" {
		return false
	}
	return strings.EqualFold(value[:1], want[:1])
}

// Apply filters a list of records and returns only matching ones.
// If the filter is empty, returns the original list unchanged.
func (f *Filter) Apply(records []*result.Record) []*result.Record {
	if f.IsEmpty() {
		return records
	}

	var filtered []*result.Record
	for _, r := range records {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// String returns a human-readable description of the active criteria.
// Returns "No active filters" if the filter is empty.
// Format: "From: Sep 1, 2025 | To: Sep 15, 2025 | Classes: C1 | Weekends only"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("Jan 2, 2006")))
	}

	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("Jan 2, 2006")))
	}

	if len(f.Classes) > 0 {
		parts = append(parts, fmt.Sprintf("Classes: %s", strings.Join(f.Classes, ", ")))
	}

	if len(f.Teams) > 0 {
		parts = append(parts, fmt.Sprintf("Teams: %s", strings.Join(f.Teams, ", ")))
	}

	if len(f.Opponents) > 0 {
		parts = append(parts, fmt.Sprintf("Opponents: %s", strings.Join(f.Opponents, ", ")))
	}

	if f.HomeAway != "" {
		parts = append(parts, fmt.Sprintf("Home/Away: %s", f.HomeAway))
	}

	if f.WeekendsOnly {
		parts = append(parts, "Weekends only")
	}

	return strings.Join(parts, " | ")
}
