package request

import (
	"errors"
	"testing"

	"ecommerce_dashboard/internal/domain/entities"
)

func TestDateRangeQuery_Resolve(t *testing.T) {
	start, _ := entities.ParseDate("2016-09-04")
	end, _ := entities.ParseDate("2018-10-17")
	span := entities.DateRange{Start: start, End: end}

	r, err := DateRangeQuery{}.Resolve(span)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(start) || !r.End.Equal(end) {
		t.Fatalf("expected dataset span, got %s", r)
	}

	r, err = DateRangeQuery{StartDate: " 2017-01-01 "}.Resolve(span)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start.Format(entities.DateLayout) != "2017-01-01" || !r.End.Equal(end) {
		t.Fatalf("unexpected range %s", r)
	}

	// Out-of-span values are passed through; the use case rejects them.
	r, err = DateRangeQuery{StartDate: "2010-01-01", EndDate: "2009-01-01"}.Resolve(span)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start.Year() != 2010 || r.End.Year() != 2009 {
		t.Fatalf("expected bounds untouched, got %s", r)
	}

	for _, bad := range []DateRangeQuery{{StartDate: "01/02/2017"}, {EndDate: "2017-13-01"}} {
		if _, err := bad.Resolve(span); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %+v, got %v", bad, err)
		}
	}
}

func TestResolveLimit(t *testing.T) {
	if got := (FreightQuery{}).ResolveLimit(5); got != 5 {
		t.Fatalf("expected default 5, got %d", got)
	}
	three := 3
	if got := (FreightQuery{Limit: &three}).ResolveLimit(5); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := (OrdersQuery{}).ResolveLimit(50); got != 50 {
		t.Fatalf("expected default 50, got %d", got)
	}
}
