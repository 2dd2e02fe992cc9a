// Package result provides the types for normalized NSAA volleyball
// results: per-match records, the canonical team key used to merge teams
// across classification pages, and the output document written by a
// scrape run.
//
// Field names inside Record serialize under the exact column labels the
// NSAA pages use ("W-L", "Tournament Name", ...) because downstream
// consumers of data/volleyball.json key on those labels. The three
// underscore-prefixed fields (_team, _team_display, _class) are derived
// during extraction and always present.
package result
