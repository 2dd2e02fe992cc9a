// Package scraper provides HTTP fetching and HTML table extraction for
// NSAA volleyball classification pages.
//
// Each classification has one static results page listing every team's
// schedule as a captioned table. The markup is inconsistent: header rows
// use th or td cells interchangeably, some pages pluralize the Opponent
// column, and summary tables sit alongside schedule tables. The extractor
// tolerates all of that. Header detection is a pure function over a row's
// cell texts, and each table is consumed through an explicit
// seekingHeader/inData/stopped state machine, so malformed tables skip
// cleanly instead of aborting a page.
package scraper
