package usecase

import (
	"ecommerce_dashboard/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DailyOrders buckets lines by purchase date between the first and last active
// day of lines. Days without orders are present with zero values.
func DailyOrders(lines []entities.OrderLine) []entities.DailyOrders {
	span, ok := PurchaseSpan(lines)
	if !ok {
		return []entities.DailyOrders{}
	}
	return dailyOrders(lines, span)
}

// DailyOrdersInRange is DailyOrders zero-filled over every day of r.
// An empty input still yields an empty sequence.
func DailyOrdersInRange(lines []entities.OrderLine, r entities.DateRange) []entities.DailyOrders {
	if len(lines) == 0 {
		return []entities.DailyOrders{}
	}
	return dailyOrders(lines, r)
}

func dailyOrders(lines []entities.OrderLine, r entities.DateRange) []entities.DailyOrders {
	n := r.Days()
	out := make([]entities.DailyOrders, n)
	seen := make([]map[string]struct{}, n)
	for i := range out {
		out[i] = entities.DailyOrders{Date: r.Start.AddDate(0, 0, i), Revenue: decimal.Zero}
		seen[i] = map[string]struct{}{}
	}

	for _, l := range lines {
		d := l.PurchaseDate()
		if !r.Contains(d) {
			continue
		}
		i := int(d.Sub(r.Start).Hours() / 24)
		if _, dup := seen[i][l.OrderID]; !dup {
			seen[i][l.OrderID] = struct{}{}
			out[i].OrderCount++
		}
		out[i].Revenue = out[i].Revenue.Add(l.TotalPrice())
	}
	return out
}

// SummarizeDailyOrders totals a daily rollup into the headline order/revenue metrics.
func SummarizeDailyOrders(days []entities.DailyOrders) entities.DailyOrdersSummary {
	s := entities.DailyOrdersSummary{TotalRevenue: decimal.Zero}
	for _, d := range days {
		s.TotalOrders += d.OrderCount
		s.TotalRevenue = s.TotalRevenue.Add(d.Revenue)
	}
	return s
}
