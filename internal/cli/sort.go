package cli

import (
	"sort"
	"strings"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByName    SortOrder = "name"
	SortByClass   SortOrder = "class"
	SortByMatches SortOrder = "matches"
)

// sortSummaries sorts team summaries based on the specified sort order
func sortSummaries(summaries []*TeamSummary, sortOrder SortOrder) {
	switch sortOrder {
	case SortByName:
		sort.Slice(summaries, func(i, j int) bool {
			return compareByName(summaries[i], summaries[j])
		})
	case SortByClass:
		sort.Slice(summaries, func(i, j int) bool {
			if summaries[i].Class != summaries[j].Class {
				return summaries[i].Class < summaries[j].Class
			}
			// If classes are equal, sort by name
			return compareByName(summaries[i], summaries[j])
		})
	case SortByMatches:
		sort.Slice(summaries, func(i, j int) bool {
			if summaries[i].Matches != summaries[j].Matches {
				// Busiest schedules first
				return summaries[i].Matches > summaries[j].Matches
			}
			// If match counts are equal, sort by name
			return compareByName(summaries[i], summaries[j])
		})
	}
}

// compareByName compares two summaries by team name, case-insensitively
// Returns true if summary i should come before summary j
func compareByName(i, j *TeamSummary) bool {
	return strings.ToLower(i.Team) < strings.ToLower(j.Team)
}
