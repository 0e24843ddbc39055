package billing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParseDateLocal(t *testing.T) {
	t.Run("plain calendar date", func(t *testing.T) {
		got := ParseDateLocal("2026-01-05")
		want := date(2026, time.January, 5)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("time suffix is dropped before parsing", func(t *testing.T) {
		// A UTC timestamp late in the day must not shift the calendar date
		// when the local zone is behind UTC.
		got := ParseDateLocal("2026-01-05T23:30:00Z")
		want := date(2026, time.January, 5)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("midnight time component", func(t *testing.T) {
		if got := ParseDateLocal("2026-03-01T00:00:00.000Z"); got.Day() != 1 || got.Month() != time.March {
			t.Errorf("expected March 1, got %v", got)
		}
	})

	t.Run("empty string falls back to today", func(t *testing.T) {
		got := ParseDateLocal("")
		want := Truncate(time.Now())
		if !got.Equal(want) {
			t.Errorf("expected today %v, got %v", want, got)
		}
	})

	t.Run("garbage falls back to today", func(t *testing.T) {
		got := ParseDateLocal("not-a-date")
		want := Truncate(time.Now())
		if !got.Equal(want) {
			t.Errorf("expected today %v, got %v", want, got)
		}
	})
}

func TestTruncate(t *testing.T) {
	in := time.Date(2026, time.July, 14, 18, 45, 12, 999, time.Local)
	got := Truncate(in)
	want := date(2026, time.July, 14)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"mid-month forward", date(2026, time.January, 10), 1, date(2026, time.February, 10)},
		{"jan 31 clamps to feb 28", date(2026, time.January, 31), 1, date(2026, time.February, 28)},
		{"jan 31 clamps to feb 29 on leap years", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"mar 31 clamps to apr 30", date(2026, time.March, 31), 1, date(2026, time.April, 30)},
		{"year rollover", date(2026, time.December, 15), 1, date(2027, time.January, 15)},
		{"several months", date(2026, time.January, 31), 3, date(2026, time.April, 30)},
		{"backwards", date(2026, time.March, 31), -1, date(2026, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonths(tt.in, tt.n); !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestInvoiceDueDate(t *testing.T) {
	tests := []struct {
		name       string
		purchase   time.Time
		closingDay int
		dueDay     int
		want       time.Time
	}{
		{
			// Purchase day (5) is before closing (10), so the January cycle
			// owns it; due day (20) follows closing, so payment is also in
			// January.
			name:     "before closing with due after closing",
			purchase: date(2026, time.January, 5), closingDay: 10, dueDay: 20,
			want: date(2026, time.January, 20),
		},
		{
			// Closing day is exclusive: buying on the 25th already belongs to
			// the cycle that starts that day.
			name:     "purchase on closing day rolls to next cycle",
			purchase: date(2026, time.January, 25), closingDay: 25, dueDay: 5,
			want: date(2026, time.March, 5),
		},
		{
			name:     "purchase after closing day",
			purchase: date(2026, time.January, 26), closingDay: 25, dueDay: 5,
			want: date(2026, time.March, 5),
		},
		{
			name:     "day before closing stays in current cycle",
			purchase: date(2026, time.January, 24), closingDay: 25, dueDay: 5,
			want: date(2026, time.February, 5),
		},
		{
			name:     "purchase on due day",
			purchase: date(2026, time.January, 20), closingDay: 10, dueDay: 20,
			want: date(2026, time.February, 20),
		},
		{
			name:     "december purchase crosses the year",
			purchase: date(2026, time.December, 28), closingDay: 25, dueDay: 5,
			want: date(2027, time.February, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InvoiceDueDate(tt.purchase, tt.closingDay, tt.dueDay)
			if !got.Equal(tt.want) {
				t.Errorf("InvoiceDueDate(%v, %d, %d) = %v, want %v",
					tt.purchase, tt.closingDay, tt.dueDay, got, tt.want)
			}
		})
	}

	t.Run("time of day never changes the bucket", func(t *testing.T) {
		morning := time.Date(2026, time.January, 24, 1, 0, 0, 0, time.Local)
		night := time.Date(2026, time.January, 24, 23, 59, 59, 0, time.Local)
		if a, b := InvoiceDueDate(morning, 25, 5), InvoiceDueDate(night, 25, 5); !a.Equal(b) {
			t.Errorf("same calendar day bucketed differently: %v vs %v", a, b)
		}
	})
}

// The closes-25th / due-5th setup is the common real-world one, and the
// product has not yet decided what the "right" due date is for a purchase
// made well before closing: the current rule hands a Jan 10 purchase to the
// cycle closing Jan 25 and dues it Feb 5, even though the purchaser may
// consider that the "January" bill. Whatever the eventual answer, the mapping
// below is what every stored virtual-invoice id was minted under, so changing
// it is a deliberate product decision, not a refactor. This test pins the
// current behavior.
func TestInvoiceDueDate_DueBeforeClosingRegression(t *testing.T) {
	got := InvoiceDueDate(date(2026, time.January, 10), 25, 5)
	want := date(2026, time.February, 5)
	if !got.Equal(want) {
		t.Fatalf("documented mapping drifted: got %v, want %v", got, want)
	}

	// The due date must follow both the purchase and the cycle close.
	if !got.After(date(2026, time.January, 25)) {
		t.Errorf("due date %v precedes the cycle close", got)
	}
}

// Due days that do not exist in the due month normalize forward instead of
// clamping, matching how existing invoice ids were generated.
func TestInvoiceDueDate_OverflowingDueDay(t *testing.T) {
	got := InvoiceDueDate(date(2026, time.February, 5), 10, 31)
	want := date(2026, time.March, 3) // Feb 31 normalizes to Mar 3.
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
