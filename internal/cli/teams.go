package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pfrederiksen/nsaa-volleyball/internal/filter"
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
	"github.com/spf13/cobra"
)

var (
	flagTeamsIn       string
	flagTeamsFormat   string
	flagTeamsSort     string
	flagTeamsClass    string
	flagTeamsTeam     string
	flagTeamsOpponent string
	flagTeamsHomeAway string
	flagTeamsFrom     string
	flagTeamsTo       string
	flagTeamsDates    string
	flagTeamsWeekends bool
)

// newTeamsCmd creates the teams subcommand
func newTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Show per-team summaries from the scraped document",
		Long: `Loads the document written by a scrape run and renders one summary line
per team: classification, match count, wins and losses, latest result.
Filters narrow which records count toward a team's line; a team whose
records are all filtered out is omitted.`,
		RunE: runTeams,
	}

	cmd.Flags().StringVar(&flagTeamsIn, "in", DefaultDocPath, "Results document path")
	cmd.Flags().StringVar(&flagTeamsFormat, "format", "table", "Output format: table, text, or json")
	cmd.Flags().StringVar(&flagTeamsSort, "sort", "name", "Sort order: name, class, or matches")
	cmd.Flags().StringVar(&flagTeamsClass, "class", "", "Only records in these classifications (comma-separated)")
	cmd.Flags().StringVar(&flagTeamsTeam, "team", "", "Only teams whose name contains this text")
	cmd.Flags().StringVar(&flagTeamsOpponent, "opponent", "", "Only records against opponents containing this text")
	cmd.Flags().StringVar(&flagTeamsHomeAway, "home-away", "", "Only home or away records")
	cmd.Flags().StringVar(&flagTeamsFrom, "from", "", "Earliest match date (e.g. 9/4/2025, 2025-09-04, Sep 4)")
	cmd.Flags().StringVar(&flagTeamsTo, "to", "", "Latest match date")
	cmd.Flags().StringVar(&flagTeamsDates, "dates", "", "Date range (e.g. 'Sep 1-15', 'Sep 20 - Oct 5', 'September')")
	cmd.Flags().BoolVar(&flagTeamsWeekends, "weekends", false, "Weekend matches only (tournament Saturdays)")

	return cmd
}

// runTeams is the teams subcommand logic
func runTeams(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagTeamsFormat))
	if format != FormatTable && format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'table', 'text', or 'json')", flagTeamsFormat)
	}

	sortOrder := SortOrder(strings.ToLower(flagTeamsSort))
	if sortOrder != SortByName && sortOrder != SortByClass && sortOrder != SortByMatches {
		return fmt.Errorf("invalid sort order: %s (must be 'name', 'class', or 'matches')", flagTeamsSort)
	}

	f, err := buildFilter()
	if err != nil {
		return err
	}

	doc, err := loadDocument(flagTeamsIn)
	if err != nil {
		return err
	}

	summaries := buildSummaries(doc, f)
	if len(summaries) == 0 {
		fmt.Println("No teams match.")
		return nil
	}

	sortSummaries(summaries, sortOrder)

	caption := ""
	if !f.IsEmpty() {
		caption = f.String()
	}

	return WriteTeamSummaries(os.Stdout, summaries, format, caption)
}

// buildFilter assembles the record filter from the teams flags
func buildFilter() (*filter.Filter, error) {
	f := filter.NewFilter()

	if flagTeamsClass != "" {
		for _, class := range strings.Split(flagTeamsClass, ",") {
			if class = strings.TrimSpace(class); class != "" {
				f.Classes = append(f.Classes, class)
			}
		}
	}
	if flagTeamsTeam != "" {
		f.Teams = append(f.Teams, flagTeamsTeam)
	}
	if flagTeamsOpponent != "" {
		f.Opponents = append(f.Opponents, flagTeamsOpponent)
	}
	f.HomeAway = flagTeamsHomeAway
	f.WeekendsOnly = flagTeamsWeekends

	// --dates sets the whole range; --from/--to refine or override it
	if flagTeamsDates != "" {
		from, to, err := filter.ParseDateRange(flagTeamsDates)
		if err != nil {
			return nil, fmt.Errorf("parsing --dates: %w", err)
		}
		f.DateFrom = from
		f.DateTo = to
	}
	if flagTeamsFrom != "" {
		from, err := filter.ParseFlagDate(flagTeamsFrom)
		if err != nil {
			return nil, fmt.Errorf("parsing --from: %w", err)
		}
		f.DateFrom = from
	}
	if flagTeamsTo != "" {
		to, err := filter.ParseFlagDate(flagTeamsTo)
		if err != nil {
			return nil, fmt.Errorf("parsing --to: %w", err)
		}
		f.DateTo = to
	}

	return f, nil
}

// buildSummaries folds the filtered document into per-team summary lines
func buildSummaries(doc *result.Document, f *filter.Filter) []*TeamSummary {
	var summaries []*TeamSummary
	for _, key := range doc.Teams() {
		records := f.Apply(doc.ByTeam[key])
		if len(records) == 0 {
			continue
		}
		summaries = append(summaries, summarize(key, records))
	}
	return summaries
}
