package result

import (
	"regexp"
	"strings"
)

var (
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
	recordParen = regexp.MustCompile(`\s*\([\d-]+\)\s*$`)
)

// TeamKey canonicalizes a team name into the key used to merge a team's
// records across classification pages: lowercased, stripped to ASCII
// letters and digits. "Omaha Skutt Catholic" -> "omahaskuttcatholic".
func TeamKey(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "")
}

// ParseTeamDisplay splits a table caption like "Arlington (12-3)" into
// the team name ("Arlington") and its canonical key ("arlington"). The
// trailing parenthetical win-loss record, when present, is dropped.
func ParseTeamDisplay(display string) (name, key string) {
	name = strings.TrimSpace(recordParen.ReplaceAllString(display, ""))
	return name, TeamKey(name)
}
