package filter

import (
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   bool
	}{
		{
			name:   "empty filter",
			filter: NewFilter(),
			want:   true,
		},
		{
			name: "filter with date from",
			filter: &Filter{
				DateFrom: timePtr(time.Now()),
			},
			want: false,
		},
		{
			name: "filter with weekends only",
			filter: &Filter{
				WeekendsOnly: true,
			},
			want: false,
		},
		{
			name: "filter with class",
			filter: &Filter{
				Classes: []string{"C1"},
			},
			want: false,
		},
		{
			name: "filter with home/away",
			filter: &Filter{
				HomeAway: "home",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("Filter.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	// 9/6/2025 is a Saturday, 9/4/2025 a Thursday.
	saturdayMatch := &result.Record{
		Date:           "9/6/2025",
		Opponent:       "Omaha Concordia",
		HomeAway:       "Home",
		Team:           "Wahoo",
		TeamDisplay:    "Wahoo (8-1)",
		EffectiveClass: "C1",
	}
	thursdayMatch := &result.Record{
		Date:           "9/4/2025",
		Opponent:       "Arlington",
		HomeAway:       "Away",
		Team:           "Bennington",
		TeamDisplay:    "Bennington (5-3)",
		EffectiveClass: "B",
	}

	tests := []struct {
		name   string
		filter *Filter
		record *result.Record
		want   bool
	}{
		{
			name:   "empty filter matches all",
			filter: NewFilter(),
			record: saturdayMatch,
			want:   true,
		},
		{
			name: "class filter matches case-insensitively",
			filter: &Filter{
				Classes: []string{"c1"},
			},
			record: saturdayMatch,
			want:   true,
		},
		{
			name: "class filter does not match",
			filter: &Filter{
				Classes: []string{"A", "D2"},
			},
			record: saturdayMatch,
			want:   false,
		},
		{
			name: "team substring matches",
			filter: &Filter{
				Teams: []string{"waho"},
			},
			record: saturdayMatch,
			want:   true,
		},
		{
			name: "team substring does not match",
			filter: &Filter{
				Teams: []string{"gretna"},
			},
			record: saturdayMatch,
			want:   false,
		},
		{
			name: "opponent substring matches",
			filter: &Filter{
				Opponents: []string{"concordia"},
			},
			record: saturdayMatch,
			want:   true,
		},
		{
			name: "opponent substring does not match",
			filter: &Filter{
				Opponents: []string{"mead"},
			},
			record: saturdayMatch,
			want:   false,
		},
		{
			name: "home designation matches by letter",
			filter: &Filter{
				HomeAway: "h",
			},
			record: saturdayMatch,
			want:   true,
		},
		{
			name: "home filter rejects away match",
			filter: &Filter{
				HomeAway: "home",
			},
			record: thursdayMatch,
			want:   false,
		},
		{
			name: "home filter rejects record without designation",
			filter: &Filter{
				HomeAway: "home",
			},
			record: &result.Record{Date: "9/6/2025", Opponent: "Mead", Team: "Yutan", EffectiveClass: "C2"},
			want:   false,
		},
		{
			name: "date within range",
			filter: &Filter{
				DateFrom: timePtr(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
				DateTo:   timePtr(time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)),
			},
			record: saturdayMatch,
			want:   true,
		},
		{
			name: "date before range",
			filter: &Filter{
				DateFrom: timePtr(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)),
			},
			record: saturdayMatch,
			want:   false,
		},
		{
			name: "date after range",
			filter: &Filter{
				DateTo: timePtr(time.Date(2025, 9, 5, 23, 59, 59, 0, time.UTC)),
			},
			record: saturdayMatch,
			want:   false,
		},
		{
			name: "unparseable date passes date criteria",
			filter: &Filter{
				DateFrom: timePtr(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
			},
			record: &result.Record{Date: "TBD", Opponent: "Mead", Team: "Yutan", EffectiveClass: "C2"},
			want:   true,
		},
		{
			name: "weekends only keeps Saturday",
			filter: &Filter{
				WeekendsOnly: true,
			},
			record: saturdayMatch,
			want:   true,
		},
		{
			name: "weekends only drops Thursday",
			filter: &Filter{
				WeekendsOnly: true,
			},
			record: thursdayMatch,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.record); got != tt.want {
				t.Errorf("Filter.Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	records := []*result.Record{
		{Date: "9/4/2025", Opponent: "Wahoo", Team: "Arlington", EffectiveClass: "C1"},
		{Date: "9/9/2025", Opponent: "Fort Calhoun", Team: "Arlington", EffectiveClass: "C1"},
		{Date: "9/11/2025", Opponent: "Omaha Concordia", Team: "Arlington", EffectiveClass: "B"},
	}

	f := &Filter{Classes: []string{"C1"}}
	got := f.Apply(records)
	if len(got) != 2 {
		t.Errorf("Apply() returned %d records, want 2", len(got))
	}

	empty := NewFilter()
	if got := empty.Apply(records); len(got) != len(records) {
		t.Errorf("empty filter should keep all %d records, got %d", len(records), len(got))
	}
}

func TestFilter_String(t *testing.T) {
	if got := NewFilter().String(); got != "No active filters" {
		t.Errorf("empty filter String() = %q", got)
	}

	f := &Filter{
		DateFrom:     timePtr(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
		Classes:      []string{"C1", "C2"},
		Opponents:    []string{"Wahoo"},
		WeekendsOnly: true,
	}
	got := f.String()

	for _, want := range []string{"From: Sep 1, 2025", "Classes: C1, C2", "Opponents: Wahoo", "Weekends only"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}
