// Package storage provides JSON-based persistence for scraped results.
//
// The storage package writes the aggregated results document to a single
// JSON file (data/volleyball.json by default) and reads it back for the
// commands that work from a prior scrape. Writes create missing parent
// directories, keep non-ASCII text literal, and leave HTML characters
// unescaped so the file mirrors the source pages.
package storage
