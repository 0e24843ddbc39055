// Package billing implements the pure calendar arithmetic behind credit-card
// billing cycles: local-date parsing, month stepping and the mapping from a
// purchase date to the due date of the invoice that owns it.
package billing

import (
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date layout used across the ledger.
const DateLayout = "2006-01-02"

// ParseDateLocal parses a date string into a local-midnight calendar date.
// Any time-of-day or timezone suffix is dropped before parsing: billing-cycle
// day arithmetic must see the calendar date the user recorded, not the date
// the string shifts to in some other timezone. An empty or unparseable string
// falls back to today, so one malformed record cannot abort ledger processing.
func ParseDateLocal(s string) time.Time {
	if s == "" {
		return Truncate(time.Now())
	}

	raw := s
	if i := strings.IndexByte(raw, 'T'); i >= 0 {
		raw = raw[:i]
	}

	parsed, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		return Truncate(time.Now())
	}
	return parsed
}

// Truncate returns the local-midnight calendar date of t, discarding any
// time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddMonths adds n months to t with last-valid-day clamping: Jan 31 plus one
// month is Feb 28 (or 29), never an overflow into March. time.Time.AddDate
// normalizes instead of clamping, which would shift a late-month purchase
// into the wrong billing month.
func AddMonths(t time.Time, n int) time.Time {
	day := t.Day()

	// Step from the first of the month so the offset itself cannot overflow.
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	shifted := first.AddDate(0, n, 0)

	if last := daysInMonth(shifted.Year(), shifted.Month()); day > last {
		day = last
	}
	return time.Date(shifted.Year(), shifted.Month(), day, 0, 0, 0, 0, t.Location())
}

// InvoiceDueDate maps a purchase date to the due date of the invoice that
// owns it.
//
// The closing day is the "best shopping day": a purchase made on the closing
// day itself already rolls into the next cycle, so the comparison is >=, not
// >. When the due day numerically precedes the closing day within a calendar
// month (the common closes-25th / due-5th setup), the payment lands in the
// month after the invoice month.
//
// Deterministic by construction: the same purchase date and card always yield
// the same due date, which keys the invoice and its synthesized id. Persisted
// invoice references depend on this mapping staying stable.
func InvoiceDueDate(purchase time.Time, closingDay, dueDay int) time.Time {
	purchase = Truncate(purchase)

	invoiceMonth := purchase
	if purchase.Day() >= closingDay {
		invoiceMonth = AddMonths(purchase, 1)
	}

	dueMonth := invoiceMonth
	if dueDay < closingDay {
		dueMonth = AddMonths(invoiceMonth, 1)
	}

	// Out-of-range due days normalize forward (due day 31 in February rolls
	// into early March). Stored invoice ids were minted under this rule, so
	// it is kept as-is rather than clamped.
	return time.Date(dueMonth.Year(), dueMonth.Month(), dueDay, 0, 0, 0, 0, purchase.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
