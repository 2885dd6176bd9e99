package usecase

import (
	"sort"
	"time"

	"ecommerce_dashboard/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type rfmAcc struct {
	orders   map[string]struct{}
	monetary decimal.Decimal
	last     time.Time
}

// RFM profiles every customer_unique_id present in lines, ordered by customer id.
//
// Recency is measured against the latest purchase date in lines, never against
// the wall clock, so the customer(s) active on that day get recency 0.
func RFM(lines []entities.OrderLine) []entities.CustomerRFM {
	span, ok := PurchaseSpan(lines)
	if !ok {
		return []entities.CustomerRFM{}
	}

	accs := make(map[string]*rfmAcc)
	for _, l := range lines {
		a, ok := accs[l.CustomerUniqueID]
		if !ok {
			a = &rfmAcc{orders: map[string]struct{}{}, monetary: decimal.Zero}
			accs[l.CustomerUniqueID] = a
		}
		a.orders[l.OrderID] = struct{}{}
		a.monetary = a.monetary.Add(l.TotalPrice())
		if d := l.PurchaseDate(); d.After(a.last) {
			a.last = d
		}
	}

	out := make([]entities.CustomerRFM, 0, len(accs))
	for id, a := range accs {
		out = append(out, entities.CustomerRFM{
			CustomerID: id,
			Recency:    int(span.End.Sub(a.last).Hours() / 24),
			Frequency:  len(a.orders),
			Monetary:   a.monetary,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out
}

// SummarizeRFM averages an RFM table. An empty table yields zero averages.
func SummarizeRFM(rows []entities.CustomerRFM) entities.RFMSummary {
	if len(rows) == 0 {
		return entities.RFMSummary{AvgMonetary: decimal.Zero}
	}
	recency, frequency := 0, 0
	monetary := decimal.Zero
	for _, r := range rows {
		recency += r.Recency
		frequency += r.Frequency
		monetary = monetary.Add(r.Monetary)
	}
	n := len(rows)
	return entities.RFMSummary{
		AvgRecency:   float64(recency) / float64(n),
		AvgFrequency: float64(frequency) / float64(n),
		AvgMonetary:  monetary.Div(decimal.NewFromInt(int64(n))),
	}
}
