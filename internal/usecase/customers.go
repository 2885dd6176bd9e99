package usecase

import (
	"sort"

	"ecommerce_dashboard/internal/domain/entities"
)

// CustomersByState counts distinct customer_id values per state, in the order
// states are first seen. Empty or unknown state codes form their own group.
func CustomersByState(lines []entities.OrderLine) []entities.StateCustomers {
	idx := make(map[string]int)
	customers := make([]map[string]struct{}, 0)
	out := make([]entities.StateCustomers, 0)
	for _, l := range lines {
		i, ok := idx[l.CustomerState]
		if !ok {
			i = len(out)
			idx[l.CustomerState] = i
			out = append(out, entities.StateCustomers{State: l.CustomerState})
			customers = append(customers, map[string]struct{}{})
		}
		if _, dup := customers[i][l.CustomerID]; !dup {
			customers[i][l.CustomerID] = struct{}{}
			out[i].CustomerCount++
		}
	}
	return out
}

// SortStatesByCustomers returns a copy ordered by customer count, largest first.
func SortStatesByCustomers(rows []entities.StateCustomers) []entities.StateCustomers {
	out := make([]entities.StateCustomers, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CustomerCount > out[j].CustomerCount
	})
	return out
}
