// Package telegram provides Telegram Bot API integration for posting
// scrape summaries.
//
// The package sends formatted messages via the Bot API using simple HTTP
// requests. No external dependencies required - uses only the standard
// library.
//
// Authentication requires a bot token (from @BotFather) and chat ID,
// read from the TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID environment
// variables.
package telegram
