package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pfrederiksen/nsaa-volleyball/internal/classification"
	"github.com/pfrederiksen/nsaa-volleyball/internal/logger"
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

const (
	UserAgent = "nsaa-volleyball-cli/1.0 (github.com/pfrederiksen/nsaa-volleyball)"
	Timeout   = 30 * time.Second
)

// FetchError reports a failed page fetch for one classification. Status
// is the HTTP status code when a response was received, zero otherwise.
type FetchError struct {
	Class  string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("class %s: unexpected status code: %d", e.Class, e.Status)
	}
	return fmt.Sprintf("class %s: %v", e.Class, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Scraper fetches and parses NSAA volleyball classification pages.
type Scraper struct {
	client *http.Client
	urls   map[string]string
}

// New creates a new Scraper instance.
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// urlFor returns the fetch URL for a classification. Tests substitute
// their httptest server here via the urls map.
func (s *Scraper) urlFor(c classification.Classification) string {
	if u, ok := s.urls[c.Code]; ok {
		return u
	}
	return c.URL()
}

// Fetch retrieves the raw HTML of one classification's results page.
// One attempt per page: a transport error or non-OK status yields a
// *FetchError carrying the classification code and the cause.
func (s *Scraper) Fetch(c classification.Classification) (string, error) {
	logger.IncrCounter("scrape.fetches")

	req, err := http.NewRequest("GET", s.urlFor(c), nil)
	if err != nil {
		return "", &FetchError{Class: c.Code, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &FetchError{Class: c.Code, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{Class: c.Code, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Class: c.Code, Err: fmt.Errorf("reading body: %w", err)}
	}

	return string(body), nil
}

// Scrape fetches one classification's page and extracts its team
// records.
func (s *Scraper) Scrape(c classification.Classification) (map[string][]*result.Record, error) {
	html, err := s.Fetch(c)
	if err != nil {
		return nil, err
	}
	return ParseClassPage(strings.NewReader(html), c.Code)
}
