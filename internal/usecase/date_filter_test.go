package usecase

import (
	"errors"
	"testing"
)

func TestValidateRange(t *testing.T) {
	span := dateRange(t, "2017-01-01", "2018-08-31")

	cases := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{name: "full span", start: "2017-01-01", end: "2018-08-31"},
		{name: "single day", start: "2018-01-10", end: "2018-01-10"},
		{name: "inverted", start: "2018-01-10", end: "2018-01-01", wantErr: ErrInvalidDateRange},
		{name: "start before span", start: "2016-12-31", end: "2018-01-01", wantErr: ErrDateOutOfBounds},
		{name: "end after span", start: "2018-01-01", end: "2018-09-01", wantErr: ErrDateOutOfBounds},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRange(span, dateRange(t, tc.start, tc.end))
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestFilterByDateRange(t *testing.T) {
	lines := lineFixtures{
		{"o1", "2017-12-31 23:59:59"},
		{"o2", "2018-01-01 00:00:00"},
		{"o3", "2018-01-03 23:59:59"},
		{"o4", "2018-01-04 00:00:01"},
	}.build(t)
	before := cloneLines(lines)

	got := FilterByDateRange(lines, dateRange(t, "2018-01-01", "2018-01-03"))
	if len(got) != 2 || got[0].OrderID != "o2" || got[1].OrderID != "o3" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	assertLinesUnchanged(t, before, lines)

	empty := FilterByDateRange(lines, dateRange(t, "2018-02-01", "2018-02-02"))
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestPurchaseSpan(t *testing.T) {
	if _, ok := PurchaseSpan(nil); ok {
		t.Fatalf("expected no span for empty input")
	}

	lines := lineFixtures{
		{"o1", "2018-03-05 10:00:00"},
		{"o2", "2017-09-04 21:15:19"},
		{"o3", "2018-10-17 17:30:18"},
	}.build(t)
	span, ok := PurchaseSpan(lines)
	if !ok {
		t.Fatalf("expected span")
	}
	want := dateRange(t, "2017-09-04", "2018-10-17")
	if !span.Start.Equal(want.Start) || !span.End.Equal(want.End) {
		t.Fatalf("expected %s got %s", want, span)
	}
}
