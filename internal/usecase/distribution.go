package usecase

import (
	"sort"

	"ecommerce_dashboard/internal/domain/entities"
)

// CountBy counts lines per category value, in first-seen order.
func CountBy(lines []entities.OrderLine, key func(entities.OrderLine) string) []entities.CategoryCount {
	idx := make(map[string]int)
	out := make([]entities.CategoryCount, 0)
	for _, l := range lines {
		k := key(l)
		if i, ok := idx[k]; ok {
			out[i].Count++
			continue
		}
		idx[k] = len(out)
		out = append(out, entities.CategoryCount{Category: k, Count: 1})
	}
	return out
}

// OrderStatusDistribution counts lines per order status, sorted by status label.
func OrderStatusDistribution(lines []entities.OrderLine) []entities.CategoryCount {
	out := CountBy(lines, func(l entities.OrderLine) string { return string(l.OrderStatus) })
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// PaymentTypeDistribution counts lines per payment type, most frequent first.
// Equal counts are ordered by label.
func PaymentTypeDistribution(lines []entities.OrderLine) []entities.CategoryCount {
	out := CountBy(lines, func(l entities.OrderLine) string { return string(l.PaymentType) })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Percentages attaches each category's share of the total count, in percent.
func Percentages(counts []entities.CategoryCount) []entities.CategoryShare {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	out := make([]entities.CategoryShare, 0, len(counts))
	for _, c := range counts {
		share := entities.CategoryShare{Category: c.Category, Count: c.Count}
		if total > 0 {
			share.Percent = float64(c.Count) / float64(total) * 100
		}
		out = append(out, share)
	}
	return out
}
