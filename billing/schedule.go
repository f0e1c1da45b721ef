package billing

import (
	"time"

	"cobrancapix-backend/models"
	"cobrancapix-backend/utils"
)

// adjustedDate resolves billingDay inside the month of (year, month),
// clamping day overflow (31 in a 30-day month, 29-31 in February) to the last
// calendar day of that month instead of rolling into the next one.
func adjustedDate(year int, month time.Month, billingDay int, loc *time.Location) time.Time {
	proposed := time.Date(year, month, billingDay, 0, 0, 0, 0, loc)
	base := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	if proposed.Month() != base.Month() {
		// Day zero of the following month is the last day of this one.
		return time.Date(base.Year(), base.Month()+1, 0, 0, 0, 0, 0, loc)
	}
	return proposed
}

// NextOccurrence computes the calendar date of the next billing occurrence
// for billingDay relative to ref. If ref's day of month is strictly past the
// billing day, the occurrence moved to the following month, clamped the same
// way.
func NextOccurrence(billingDay int, ref time.Time) time.Time {
	year, month, _ := ref.Date()
	if ref.Day() > billingDay {
		month++
	}
	return adjustedDate(year, month, billingDay, ref.Location())
}

// DaysUntilDue is the whole-day distance from today to the client's next
// occurrence.
func DaysUntilDue(billingDay int, today time.Time) int {
	return utils.DaysBetween(today, NextOccurrence(billingDay, today))
}

// IsDue decides whether a reminder for the client fires today. It fires on
// exactly one day per cycle (diff == leadDays, not <=), so the sweep must run
// at least once every calendar day. A client already reminded in today's
// calendar month is never due again that month, whatever the diff says.
// An out-of-range billing day is treated as "not due" rather than an error;
// the registration boundary already rejects it.
func IsDue(client models.Client, leadDays int, today time.Time) bool {
	if client.BillingDay < 1 || client.BillingDay > 31 {
		return false
	}
	if client.LastBillingDate != nil && utils.SameMonth(*client.LastBillingDate, today) {
		return false
	}
	return DaysUntilDue(client.BillingDay, today) == leadDays
}
