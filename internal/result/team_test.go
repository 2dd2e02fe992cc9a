package result

import (
	"testing"
)

func TestTeamKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Arlington", expected: "arlington"},
		{name: "spaces stripped", input: "Omaha Skutt Catholic", expected: "omahaskuttcatholic"},
		{name: "punctuation stripped", input: "St. Paul", expected: "stpaul"},
		{name: "hyphens stripped", input: "Howells-Dodge", expected: "howellsdodge"},
		{name: "digits kept", input: "Lincoln East 2", expected: "lincolneast2"},
		{name: "slash stripped", input: "Elm Creek/Overton", expected: "elmcreekoverton"},
		{name: "non-ascii letters stripped", input: "Peña Blanca", expected: "peablanca"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TeamKey(tt.input); got != tt.expected {
				t.Errorf("TeamKey(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseTeamDisplay(t *testing.T) {
	tests := []struct {
		name     string
		display  string
		wantName string
		wantKey  string
	}{
		{
			name:     "caption with record",
			display:  "Arlington (1-2)",
			wantName: "Arlington",
			wantKey:  "arlington",
		},
		{
			name:     "caption without record",
			display:  "Bennington",
			wantName: "Bennington",
			wantKey:  "bennington",
		},
		{
			name:     "multi-word with record",
			display:  "Team X (3-1)",
			wantName: "Team X",
			wantKey:  "teamx",
		},
		{
			name:     "trailing whitespace around record",
			display:  "  Wahoo (10-0)  ",
			wantName: "Wahoo",
			wantKey:  "wahoo",
		},
		{
			name:     "digits-only parenthetical still stripped",
			display:  "Kearney (12)",
			wantName: "Kearney",
			wantKey:  "kearney",
		},
		{
			name:     "parenthetical with letters kept",
			display:  "Lincoln (JV)",
			wantName: "Lincoln (JV)",
			wantKey:  "lincolnjv",
		},
		{
			name:     "interior parenthetical kept",
			display:  "Grand (1-2) Island",
			wantName: "Grand (1-2) Island",
			wantKey:  "grand12island",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, key := ParseTeamDisplay(tt.display)
			if name != tt.wantName {
				t.Errorf("ParseTeamDisplay(%q) name = %q, want %q", tt.display, name, tt.wantName)
			}
			if key != tt.wantKey {
				t.Errorf("ParseTeamDisplay(%q) key = %q, want %q", tt.display, key, tt.wantKey)
			}
		})
	}
}
