package request

import (
	"errors"
	"strings"

	"ecommerce_dashboard/internal/domain/entities"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// DateRangeQuery is the date picker of the dashboard. Both bounds are inclusive
// and default to the dataset span when omitted.
type DateRangeQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (q DateRangeQuery) Resolve(span entities.DateRange) (entities.DateRange, error) {
	r := span
	if v := strings.TrimSpace(q.StartDate); v != "" {
		d, err := entities.ParseDate(v)
		if err != nil {
			return entities.DateRange{}, ErrInvalidDate
		}
		r.Start = d
	}
	if v := strings.TrimSpace(q.EndDate); v != "" {
		d, err := entities.ParseDate(v)
		if err != nil {
			return entities.DateRange{}, ErrInvalidDate
		}
		r.End = d
	}
	return r, nil
}

type FreightQuery struct {
	DateRangeQuery
	Limit *int `form:"limit" binding:"omitempty,min=0"`
}

func (q FreightQuery) ResolveLimit(def int) int {
	if q.Limit == nil {
		return def
	}
	return *q.Limit
}

type OrdersQuery struct {
	DateRangeQuery
	Offset int  `form:"offset" binding:"omitempty,min=0"`
	Limit  *int `form:"limit" binding:"omitempty,min=1"`
}

func (q OrdersQuery) ResolveLimit(def int) int {
	if q.Limit == nil {
		return def
	}
	return *q.Limit
}
