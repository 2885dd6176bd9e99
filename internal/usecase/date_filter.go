package usecase

import (
	"errors"
	"fmt"

	"ecommerce_dashboard/internal/domain/entities"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrDateOutOfBounds  = errors.New("date outside dataset span")
)

// ValidateRange rejects ranges that are inverted or that leave the dataset span.
// Bounds are never clamped.
func ValidateRange(span, r entities.DateRange) error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: missing bound", ErrInvalidDateRange)
	}
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start %s after end %s", ErrInvalidDateRange,
			r.Start.Format(entities.DateLayout), r.End.Format(entities.DateLayout))
	}
	if !span.Covers(r) {
		return fmt.Errorf("%w: %s not within %s", ErrDateOutOfBounds, r, span)
	}
	return nil
}

// FilterByDateRange returns a new slice holding the lines whose purchase date
// falls inside r. lines is not modified.
func FilterByDateRange(lines []entities.OrderLine, r entities.DateRange) []entities.OrderLine {
	out := make([]entities.OrderLine, 0)
	for _, l := range lines {
		if r.Contains(l.OrderPurchaseTimestamp) {
			out = append(out, l)
		}
	}
	return out
}

// PurchaseSpan is the [min, max] purchase date of lines. ok is false when lines is empty.
func PurchaseSpan(lines []entities.OrderLine) (span entities.DateRange, ok bool) {
	if len(lines) == 0 {
		return entities.DateRange{}, false
	}
	lo, hi := lines[0].PurchaseDate(), lines[0].PurchaseDate()
	for _, l := range lines[1:] {
		d := l.PurchaseDate()
		if d.Before(lo) {
			lo = d
		}
		if d.After(hi) {
			hi = d
		}
	}
	return entities.DateRange{Start: lo, End: hi}, true
}
