package notifier

import (
	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// Notifier defines the interface for posting result notifications
type Notifier interface {
	// Notify posts a notification summarizing the given results document
	Notify(doc *result.Document) error
}
