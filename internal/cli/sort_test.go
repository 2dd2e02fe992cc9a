package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func summariesFixture() []*TeamSummary {
	return []*TeamSummary{
		{Team: "Wahoo", Class: "C1", Matches: 4, Wins: 3, Losses: 1},
		{Team: "arlington", Class: "C1", Matches: 6, Wins: 2, Losses: 4},
		{Team: "Bennington", Class: "B", Matches: 6, Wins: 5, Losses: 1},
	}
}

func teamNames(summaries []*TeamSummary) []string {
	names := make([]string, len(summaries))
	for i, s := range summaries {
		names[i] = s.Team
	}
	return names
}

func TestSortSummaries(t *testing.T) {
	tests := []struct {
		name  string
		order SortOrder
		want  []string
	}{
		{
			name:  "by name is case-insensitive",
			order: SortByName,
			want:  []string{"arlington", "Bennington", "Wahoo"},
		},
		{
			name:  "by class falls back to name",
			order: SortByClass,
			want:  []string{"Bennington", "arlington", "Wahoo"},
		},
		{
			name:  "by matches puts busiest first",
			order: SortByMatches,
			want:  []string{"arlington", "Bennington", "Wahoo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries := summariesFixture()
			sortSummaries(summaries, tt.order)

			if diff := cmp.Diff(tt.want, teamNames(summaries)); diff != "" {
				t.Errorf("sortSummaries(%s) order mismatch (-want +got):\n%s", tt.order, diff)
			}
		})
	}
}

func TestSortSummaries_UnknownOrderLeavesInputAlone(t *testing.T) {
	summaries := summariesFixture()
	want := teamNames(summaries)

	sortSummaries(summaries, SortOrder("elo"))

	if diff := cmp.Diff(want, teamNames(summaries)); diff != "" {
		t.Errorf("unknown sort order should not reorder (-want +got):\n%s", diff)
	}
}
