package render

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders a monetary amount with a currency symbol and
// thousands separators. Raw numbers never reach a rendered report.
func FormatCurrency(amount int64) string {
	return currencyPrinter.Sprintf("$%d", amount)
}

// FormatDate renders a timestamp as a long-form human-readable date,
// e.g. "January 15, 2024". All render backends share this format.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatDateTime renders a timestamp with time of day, used for the
// generation stamp on print and PDF artifacts.
func FormatDateTime(t time.Time) string {
	return t.Format("January 2, 2006 3:04 PM")
}
