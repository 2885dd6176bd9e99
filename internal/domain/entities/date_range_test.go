package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestDateRange_Days(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single day", start: "2018-01-01", end: "2018-01-01", want: 1},
		{name: "three days", start: "2018-01-01", end: "2018-01-03", want: 3},
		{name: "across month", start: "2018-01-30", end: "2018-02-02", want: 4},
		{name: "inverted", start: "2018-01-03", end: "2018-01-01", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewDateRange(mustDate(t, tc.start), mustDate(t, tc.end))
			if got := r.Days(); got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestDateRange_ContainsUsesCalendarDate(t *testing.T) {
	r := NewDateRange(mustDate(t, "2018-01-01"), mustDate(t, "2018-01-03"))

	lastSecond := time.Date(2018, 1, 3, 23, 59, 59, 0, time.UTC)
	if !r.Contains(lastSecond) {
		t.Fatalf("expected %s inside %s", lastSecond, r)
	}
	nextDay := time.Date(2018, 1, 4, 0, 0, 0, 0, time.UTC)
	if r.Contains(nextDay) {
		t.Fatalf("expected %s outside %s", nextDay, r)
	}
	dayBefore := time.Date(2017, 12, 31, 23, 59, 59, 0, time.UTC)
	if r.Contains(dayBefore) {
		t.Fatalf("expected %s outside %s", dayBefore, r)
	}
}

func TestDateRange_Covers(t *testing.T) {
	span := NewDateRange(mustDate(t, "2018-01-01"), mustDate(t, "2018-12-31"))
	if !span.Covers(NewDateRange(mustDate(t, "2018-03-01"), mustDate(t, "2018-03-02"))) {
		t.Fatalf("expected inner range to be covered")
	}
	if span.Covers(NewDateRange(mustDate(t, "2017-12-31"), mustDate(t, "2018-03-02"))) {
		t.Fatalf("expected range starting before span to be rejected")
	}
}

func TestOrderLine_TotalPriceIsDerived(t *testing.T) {
	l := OrderLine{Price: decimal.RequireFromString("29.99"), FreightValue: decimal.RequireFromString("8.72")}
	if !l.TotalPrice().Equal(decimal.RequireFromString("38.71")) {
		t.Fatalf("unexpected total: %s", l.TotalPrice())
	}

	l.FreightValue = decimal.Zero
	if !l.TotalPrice().Equal(decimal.RequireFromString("29.99")) {
		t.Fatalf("total did not follow freight change: %s", l.TotalPrice())
	}
}

func TestOrderLine_PurchaseDate(t *testing.T) {
	l := OrderLine{OrderPurchaseTimestamp: time.Date(2017, 10, 2, 10, 56, 33, 0, time.UTC)}
	if got := l.PurchaseDate(); !got.Equal(mustDate(t, "2017-10-02")) {
		t.Fatalf("unexpected purchase date: %s", got)
	}
}
