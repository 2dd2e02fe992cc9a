// Package cli implements the command-line interface for nsaa-volleyball.
//
// The cli package provides the Cobra-based CLI with the scrape as the root
// command and read-side subcommands (teams, export, notify) over the written
// document. It coordinates the scraper, aggregate, and storage packages to
// fetch, merge, and persist classification results, and formats run reports
// and team summaries as text, JSON, or rendered tables.
package cli
