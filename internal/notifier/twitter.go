package notifier

import (
	"fmt"
	"os"
	"strings"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// TwitterNotifier posts result summaries to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts a single status summarizing the results document
func (n *TwitterNotifier) Notify(doc *result.Document) error {
	status := formatStatus(doc)

	_, _, err := n.client.Statuses.Update(status, nil)
	if err != nil {
		return fmt.Errorf("failed to post status: %w", err)
	}

	return nil
}

// formatStatus formats a results document as a status update
func formatStatus(doc *result.Document) string {
	status := "🏐 NSAA Volleyball results updated!\n\n"
	status += fmt.Sprintf("📊 %d teams, %d match results\n", len(doc.ByTeam), doc.TotalRecords())

	if classes := doc.Classes(); len(classes) > 0 {
		status += fmt.Sprintf("🏆 Classes: %s\n", strings.Join(classes, ", "))
	}

	status += "\n#NSAAVolleyball #NebraskaVB"

	// Twitter limit is 280 characters
	if len(status) > 280 {
		// Truncate and add ellipsis
		status = status[:277] + "..."
	}

	return status
}
