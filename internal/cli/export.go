package cli

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/nsaa-volleyball/internal/calendar"
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
	"github.com/spf13/cobra"
)

var (
	flagExportIn  string
	flagExportOut string
)

// newExportCmd creates the export subcommand
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <team>",
		Short: "Export a team's schedule as an iCalendar file",
		Long: `Exports one team's dated matches from the scraped document as an .ics
calendar, one all-day event per match. The team is looked up by its
canonical key, so "Fort Calhoun", "fort-calhoun", and "fortcalhoun" all
name the same team.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagExportIn, "in", DefaultDocPath, "Results document path")
	cmd.Flags().StringVar(&flagExportOut, "out", "", "Output .ics path (default: stdout)")

	return cmd
}

// runExport is the export subcommand logic
func runExport(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(flagExportIn)
	if err != nil {
		return err
	}

	key := result.TeamKey(args[0])
	records, ok := doc.ByTeam[key]
	if !ok {
		return fmt.Errorf("team %q not found (the teams subcommand lists known names)", args[0])
	}

	name := args[0]
	if len(records) > 0 && records[0].Team != "" {
		name = records[0].Team
	}

	ics := calendar.GenerateICS(name, records)
	if ics == "" {
		return fmt.Errorf("team %q has no dated matches to export", name)
	}

	if flagExportOut == "" {
		fmt.Print(ics)
		return nil
	}

	if err := os.WriteFile(flagExportOut, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}

	fmt.Printf("Wrote %s\n", flagExportOut)
	return nil
}
