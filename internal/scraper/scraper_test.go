package scraper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pfrederiksen/nsaa-volleyball/internal/classification"
)

func mustClass(t *testing.T, code string) classification.Classification {
	t.Helper()
	c, err := classification.Parse(code)
	if err != nil {
		t.Fatalf("Parse(%q): %v", code, err)
	}
	return c
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		statusCode  int
		wantError   bool
		wantStatus  int
	}{
		{
			name:        "successful fetch",
			htmlContent: `<html><body><table><caption>Wahoo (1-0)</caption></table></body></html>`,
			statusCode:  http.StatusOK,
			wantError:   false,
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			wantError:  true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			wantError:  true,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Verify User-Agent is set
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "nsaa-volleyball") {
					t.Errorf("User-Agent = %q, should contain 'nsaa-volleyball'", userAgent)
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			s := New()
			s.urls = map[string]string{"A": server.URL}

			body, err := s.Fetch(mustClass(t, "A"))

			if tt.wantError {
				if err == nil {
					t.Fatal("Fetch() expected error, got nil")
				}
				var fe *FetchError
				if !errors.As(err, &fe) {
					t.Fatalf("Fetch() error = %T, want *FetchError", err)
				}
				if fe.Class != "A" {
					t.Errorf("FetchError.Class = %q, want A", fe.Class)
				}
				if fe.Status != tt.wantStatus {
					t.Errorf("FetchError.Status = %d, want %d", fe.Status, tt.wantStatus)
				}
			} else {
				if err != nil {
					t.Fatalf("Fetch() unexpected error: %v", err)
				}
				if body != tt.htmlContent {
					t.Errorf("Fetch() body = %q, want %q", body, tt.htmlContent)
				}
			}
		})
	}
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	s := New()
	s.urls = map[string]string{"B": server.URL}

	_, err := s.Fetch(mustClass(t, "B"))
	if err == nil {
		t.Fatal("Fetch() against closed server expected error, got nil")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Fetch() error = %T, want *FetchError", err)
	}
	if fe.Status != 0 {
		t.Errorf("FetchError.Status = %d, want 0 for transport failure", fe.Status)
	}
	if fe.Unwrap() == nil {
		t.Error("FetchError should wrap the transport cause")
	}
}

func TestFetchErrorMessage(t *testing.T) {
	statusErr := &FetchError{Class: "C1", Status: 404}
	if got := statusErr.Error(); got != "class C1: unexpected status code: 404" {
		t.Errorf("Error() = %q", got)
	}

	causeErr := &FetchError{Class: "D2", Err: errors.New("connection refused")}
	if got := causeErr.Error(); got != "class D2: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestScrape(t *testing.T) {
	html := `<html><body>
		<table><caption>Wahoo (2-1)</caption>
			<tr><th>Date</th><th>Opponent</th><th>W/L</th></tr>
			<tr><td>9/4/2025</td><td>Arlington</td><td>W</td></tr>
			<tr><td>9/9/2025</td><td>Yutan</td><td>L</td></tr>
		</table>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(html))
	}))
	defer server.Close()

	s := New()
	s.urls = map[string]string{"C1": server.URL}

	byTeam, err := s.Scrape(mustClass(t, "C1"))
	if err != nil {
		t.Fatalf("Scrape() error: %v", err)
	}

	records, ok := byTeam["wahoo"]
	if !ok {
		t.Fatalf("Scrape() missing team wahoo, got %v", teamKeys(byTeam))
	}
	if len(records) != 2 {
		t.Fatalf("Scrape() returned %d records, want 2", len(records))
	}
	if records[0].Opponent != "Arlington" || !records[0].Won() {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].EffectiveClass != "C1" {
		t.Errorf("records[1].EffectiveClass = %q, want C1", records[1].EffectiveClass)
	}
}

func TestScrape_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := New()
	s.urls = map[string]string{"A": server.URL}

	if _, err := s.Scrape(mustClass(t, "A")); err == nil {
		t.Fatal("Scrape() expected error on fetch failure, got nil")
	}
}

func TestNew(t *testing.T) {
	s := New()

	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.client == nil {
		t.Fatal("scraper client is nil")
	}
	if s.client.Timeout != Timeout {
		t.Errorf("client timeout = %v, want %v", s.client.Timeout, Timeout)
	}
}
