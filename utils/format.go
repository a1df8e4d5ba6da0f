package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes formatted amounts. Set once at startup.
var CurrencySymbol = ""

var amountPrinter = message.NewPrinter(language.English)

// FormatCurrency renders 12005 as "12,005.00" (with CurrencySymbol in front).
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-" + CurrencySymbol + amountPrinter.Sprintf("%.2f", -amount)
	}
	return CurrencySymbol + amountPrinter.Sprintf("%.2f", amount)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatStayDuration renders a months/days breakdown as "3 months, 5 days".
func FormatStayDuration(months, extraDays int) string {
	parts := make([]string, 0, 2)
	if months > 0 {
		parts = append(parts, plural(months, "month"))
	}
	if extraDays > 0 || months == 0 {
		parts = append(parts, plural(extraDays, "day"))
	}
	return strings.Join(parts, ", ")
}
