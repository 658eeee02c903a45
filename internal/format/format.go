// Package format renders amounts and timestamps the way the storefront
// shows them: Indian rupees with no fractional digits, en-IN date style.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Currency renders an amount as rupees, rounded to whole units.
func Currency(amount float64) string {
	return printer.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Date renders a timestamp for tables and exports, e.g. "2 Jan 2006, 3:04 pm".
func Date(t time.Time) string {
	return t.Format("2 Jan 2006, 3:04 pm")
}
