package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/nsaa-volleyball/internal/aggregate"
	"github.com/pfrederiksen/nsaa-volleyball/internal/classification"
	"github.com/pfrederiksen/nsaa-volleyball/internal/logger"
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
	"github.com/pfrederiksen/nsaa-volleyball/internal/scraper"
	"github.com/pfrederiksen/nsaa-volleyball/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// DefaultDocPath is where the scrape writes and the read-side commands look
// for the results document.
const DefaultDocPath = "data/volleyball.json"

var (
	flagOut     string
	flagClasses string
	flagFormat  string
	flagVerbose bool
	flagQuiet   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nsaa-volleyball",
		Short: "Scrape NSAA volleyball results into a JSON document",
		Long: `A CLI tool that scrapes the published NSAA volleyball results pages for
every classification and writes one JSON document keyed by team. Failed
classifications are reported and skipped; the document is written either way.`,
		RunE:          runScrape,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define flags
	cmd.Flags().StringVar(&flagOut, "out", DefaultDocPath, "Output file path")
	cmd.Flags().StringVar(&flagClasses, "classes", "", "Comma-separated classification codes (default: all)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run report format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress warning lines for failed classifications")

	cmd.AddCommand(newTeamsCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newNotifyCmd())

	return cmd
}

// runScrape is the root command logic
func runScrape(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	logger.SetDefault(logger.New(logger.LevelFromFlags(flagVerbose, flagQuiet), os.Stderr))

	classes, err := classification.Subset(flagClasses)
	if err != nil {
		return err
	}

	logger.Debug("Starting scrape", logger.Fields{
		"classes": len(classes),
		"out":     flagOut,
	})

	runner := aggregate.New(scraper.New(), classes)
	doc, warnings := runner.Run()

	// One warning line per failed classification. These are operator
	// output, required even without --verbose.
	if !flagQuiet {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "[WARN] %s failed: %v\n", w.Class, w.Err)
		}
	}

	logger.Debug("Scrape metrics", logger.Fields(logger.GetMetricsSnapshot()))

	store, err := storage.New(flagOut)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	path, err := store.Write(doc)
	if err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	report := &ScrapeReport{
		ScrapedAt: time.Now().UTC(),
		Classes:   codes(classes),
		Teams:     len(doc.ByTeam),
		Records:   doc.TotalRecords(),
		Output:    path,
	}
	for _, w := range warnings {
		report.Warnings = append(report.Warnings, ReportWarning{Class: w.Class, Error: w.Err.Error()})
	}

	// Failed classifications never fail the run; the report carries them.
	if err := WriteScrapeReport(os.Stdout, report, format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// codes extracts the classification codes in the order they run
func codes(classes []classification.Classification) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.Code
	}
	return out
}

// loadDocument opens the results document the read-side subcommands work
// from. The document must have been written by a previous scrape run.
func loadDocument(path string) (*result.Document, error) {
	store, err := storage.New(path)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	doc, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading document (run a scrape first): %w", err)
	}

	return doc, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
