package utils

import (
	"fmt"
	"time"
)

// DaysOverdue returns the whole number of days now is past the expected
// return date, floored, never negative.
func DaysOverdue(expectedReturn, now time.Time) int32 {
	if !now.After(expectedReturn) {
		return 0
	}
	return int32(now.Sub(expectedReturn).Hours() / 24)
}

// OverduePenaltyCents computes the tracked amount for a late return:
// chargeable days (overdue days past the grace period) times the daily rate,
// capped at maxCents. A cap of zero means no cap.
func OverduePenaltyCents(daysOverdue, graceDays int32, dailyRateCents, maxCents int64) int64 {
	chargeable := int64(daysOverdue - graceDays)
	if chargeable < 0 {
		chargeable = 0
	}
	amount := chargeable * dailyRateCents
	if maxCents > 0 && amount > maxCents {
		amount = maxCents
	}
	return amount
}

// FormatCents renders an integer-cents amount as a two-decimal string.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
