package cli

import (
	"fmt"

	"github.com/pfrederiksen/nsaa-volleyball/internal/notifier"
	"github.com/spf13/cobra"
)

var (
	flagNotifyIn       string
	flagNotifyTwitter  bool
	flagNotifyTelegram bool
	flagNotifyDryRun   bool
)

// newNotifyCmd creates the notify subcommand
func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Post a summary of the scraped results",
		Long: `Posts a one-line summary of the scraped document (teams, results,
classifications) to the selected channels. Twitter credentials come from
TWITTER_API_KEY, TWITTER_API_SECRET, TWITTER_ACCESS_TOKEN, and
TWITTER_ACCESS_SECRET; Telegram from TELEGRAM_BOT_TOKEN and
TELEGRAM_CHAT_ID.`,
		RunE: runNotify,
	}

	cmd.Flags().StringVar(&flagNotifyIn, "in", DefaultDocPath, "Results document path")
	cmd.Flags().BoolVar(&flagNotifyTwitter, "twitter", false, "Post the summary to Twitter")
	cmd.Flags().BoolVar(&flagNotifyTelegram, "telegram", false, "Send the summary to Telegram")
	cmd.Flags().BoolVar(&flagNotifyDryRun, "dry-run", false, "Print the summary without posting")

	return cmd
}

// runNotify is the notify subcommand logic
func runNotify(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(flagNotifyIn)
	if err != nil {
		return err
	}

	var notifiers []notifier.Notifier
	if flagNotifyDryRun {
		notifiers = append(notifiers, notifier.NewDryRunNotifier())
	} else {
		if flagNotifyTwitter {
			tw, err := notifier.NewTwitterNotifier()
			if err != nil {
				return fmt.Errorf("initializing Twitter client: %w", err)
			}
			notifiers = append(notifiers, tw)
		}
		if flagNotifyTelegram {
			tg, err := notifier.NewTelegramNotifier()
			if err != nil {
				return fmt.Errorf("initializing Telegram client: %w", err)
			}
			notifiers = append(notifiers, tg)
		}
	}

	if len(notifiers) == 0 {
		return fmt.Errorf("nothing to do: pass --twitter, --telegram, or --dry-run")
	}

	for _, n := range notifiers {
		if err := n.Notify(doc); err != nil {
			return fmt.Errorf("posting notification: %w", err)
		}
	}

	if !flagNotifyDryRun {
		fmt.Println("Notification sent.")
	}
	return nil
}
