package usecase

import (
	"sort"

	"ecommerce_dashboard/internal/domain/entities"
)

// FreightByProduct sums freight per product, highest first. Ties keep the order
// in which products were first seen. The result is not truncated.
func FreightByProduct(lines []entities.OrderLine) []entities.ProductFreight {
	idx := make(map[string]int)
	out := make([]entities.ProductFreight, 0)
	for _, l := range lines {
		if i, ok := idx[l.ProductID]; ok {
			out[i].TotalFreightValue = out[i].TotalFreightValue.Add(l.FreightValue)
			continue
		}
		idx[l.ProductID] = len(out)
		out = append(out, entities.ProductFreight{ProductID: l.ProductID, TotalFreightValue: l.FreightValue})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalFreightValue.GreaterThan(out[j].TotalFreightValue)
	})
	return out
}

// HeadTail returns the first and last n rows of a sorted freight rollup.
// Both views keep the rollup order.
func HeadTail(rows []entities.ProductFreight, n int) entities.FreightLeaders {
	if n < 0 {
		n = 0
	}
	if n > len(rows) {
		n = len(rows)
	}
	highest := make([]entities.ProductFreight, n)
	copy(highest, rows[:n])
	lowest := make([]entities.ProductFreight, n)
	copy(lowest, rows[len(rows)-n:])
	return entities.FreightLeaders{Highest: highest, Lowest: lowest}
}
