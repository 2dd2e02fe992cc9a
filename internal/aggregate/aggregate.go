// Package aggregate drives a scrape across classification pages and
// merges the per-page results into a single document.
package aggregate

import (
	"time"

	"github.com/pfrederiksen/nsaa-volleyball/internal/classification"
	"github.com/pfrederiksen/nsaa-volleyball/internal/logger"
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// Source produces the per-team records for one classification page.
// *scraper.Scraper satisfies it; tests substitute a canned source.
type Source interface {
	Scrape(classification.Classification) (map[string][]*result.Record, error)
}

// Warning records a classification whose scrape failed. The run carries
// on past it; the caller decides how to surface it.
type Warning struct {
	Class string
	Err   error
}

// Runner scrapes a fixed sequence of classifications through a Source
// and merges what comes back.
type Runner struct {
	source  Source
	classes []classification.Classification
}

// New creates a Runner over the given classifications. An empty slice
// means all of them, in canonical order.
func New(source Source, classes []classification.Classification) *Runner {
	if len(classes) == 0 {
		classes = classification.All()
	}
	return &Runner{source: source, classes: classes}
}

// Run scrapes every configured classification in order and merges each
// page's teams into one document under the last-source-wins policy: a
// later page's table replaces an earlier one sharing the same team key.
// A failed classification contributes a Warning and the run continues,
// so Run itself never fails. The returned document is stamped with the
// current Unix time.
func (r *Runner) Run() (*result.Document, []Warning) {
	doc := result.NewDocument()
	var warnings []Warning

	for _, c := range r.classes {
		start := time.Now()
		byTeam, err := r.source.Scrape(c)
		logger.RecordTiming("scrape.class", time.Since(start))

		if err != nil {
			// The warning is the caller's to surface; the log record is
			// debug-level trace only.
			warnings = append(warnings, Warning{Class: c.Code, Err: err})
			logger.IncrCounter("scrape.classes_failed")
			logger.Debug("Classification scrape failed", logger.Fields{
				"class": c.Code,
				"error": err.Error(),
			})
			continue
		}

		logger.IncrCounter("scrape.classes_ok")
		logger.Debug("Scraped classification", logger.Fields{
			"class": c.Code,
			"teams": len(byTeam),
		})
		result.Merge(doc.ByTeam, byTeam, result.LastSourceWins)
	}

	doc.Updated = time.Now().Unix()
	logger.SetGauge("scrape.teams", float64(len(doc.ByTeam)))
	return doc, warnings
}
