package result

import "sort"

// Document is the full output of a scrape run: every surviving team's
// record sequence under its canonical key, stamped with the write time.
type Document struct {
	Updated int64                `json:"updated"`
	ByTeam  map[string][]*Record `json:"by_team"`
}

// NewDocument returns an empty document ready to merge into.
func NewDocument() *Document {
	return &Document{ByTeam: make(map[string][]*Record)}
}

// Teams returns the team keys in sorted order.
func (d *Document) Teams() []string {
	keys := make([]string, 0, len(d.ByTeam))
	for k := range d.ByTeam {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TotalRecords returns the number of records across all teams.
func (d *Document) TotalRecords() int {
	n := 0
	for _, records := range d.ByTeam {
		n += len(records)
	}
	return n
}

// Classes returns the distinct effective classes present, sorted.
func (d *Document) Classes() []string {
	seen := make(map[string]bool)
	for _, records := range d.ByTeam {
		for _, r := range records {
			if r.EffectiveClass != "" {
				seen[r.EffectiveClass] = true
			}
		}
	}
	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

// MergePolicy decides what happens when a team key being merged already
// exists in the destination map.
type MergePolicy int

const (
	// LastSourceWins replaces the existing entry wholesale. This is the
	// shipped policy: classification pages merge in a fixed order, and a
	// later page's table fully supersedes an earlier one sharing the same
	// canonical key.
	LastSourceWins MergePolicy = iota
	// KeepExisting leaves the first entry in place and drops the
	// incoming one.
	KeepExisting
)

// Merge folds src into dst under the given policy. Record sequences are
// moved by reference, never concatenated: a collision resolves to exactly
// one source's sequence.
func Merge(dst, src map[string][]*Record, policy MergePolicy) {
	for key, records := range src {
		if _, taken := dst[key]; taken && policy == KeepExisting {
			continue
		}
		dst[key] = records
	}
}
