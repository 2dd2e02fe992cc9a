package notifier

import (
	"fmt"

	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the status that would be posted
func (n *DryRunNotifier) Notify(doc *result.Document) error {
	status := formatStatus(doc)
	fmt.Println("--- Status preview ---")
	fmt.Println(status)
	fmt.Printf("\n(Length: %d characters)\n", len(status))
	return nil
}
