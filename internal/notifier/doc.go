// Package notifier provides notification interfaces and implementations for
// NSAA volleyball scrape results.
//
// The notifier package supports posting result summaries to Twitter and
// Telegram. It handles OAuth authentication and message formatting for the
// different notification channels.
package notifier
