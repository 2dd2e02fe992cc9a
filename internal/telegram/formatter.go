package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// FormatSummary renders a results document as a Telegram HTML summary
// message
func FormatSummary(doc *result.Document) string {
	var msg strings.Builder

	// Header with emoji
	msg.WriteString("🏐 <b>NSAA Volleyball Results Update</b>\n\n")

	teams := len(doc.ByTeam)
	msg.WriteString(fmt.Sprintf("Updated <b>%d</b> team", teams))
	if teams != 1 {
		msg.WriteString("s")
	}

	records := doc.TotalRecords()
	msg.WriteString(fmt.Sprintf(" with <b>%d</b> result", records))
	if records != 1 {
		msg.WriteString("s")
	}

	if classes := doc.Classes(); len(classes) > 0 {
		msg.WriteString(fmt.Sprintf(" across %d class", len(classes)))
		if len(classes) != 1 {
			msg.WriteString("es")
		}
		msg.WriteString(fmt.Sprintf(": %s", strings.Join(classes, ", ")))
	}

	if doc.Updated > 0 {
		updated := time.Unix(doc.Updated, 0).UTC()
		msg.WriteString(fmt.Sprintf("\n\n📅 %s", updated.Format("Jan 2, 2006 15:04 UTC")))
	}

	// Hashtags
	msg.WriteString("\n\n#NSAAVolleyball #NebraskaVB")

	return msg.String()
}
