package main

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/nsaa-volleyball/internal/calendar"
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

func main() {
	// Create a sample schedule
	records := []*result.Record{
		{
			Date:           "9/4/2025",
			Opponent:       "Arlington",
			Class:          "C1",
			Outcome:        "W",
			Score:          "2-0",
			Points:         "48",
			HomeAway:       "Home",
			Site:           "Wahoo, NE",
			Team:           "Wahoo",
			EffectiveClass: "C1",
		},
		{
			Date:               "9/13/2025",
			Opponent:           "Bennington",
			TournamentName:     "Metro Invite",
			TournamentLocation: "Omaha, NE",
			Team:               "Wahoo",
			EffectiveClass:     "C1",
		},
	}

	// Generate .ics file
	icsContent := calendar.GenerateICS("Wahoo", records)

	// Write to file (owner read/write only for security)
	filename := "test-volleyball-schedule.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
