package usecase

import (
	"testing"
	"time"

	"ecommerce_dashboard/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type lineOpt func(*entities.OrderLine)

func withCustomer(customerID, uniqueID, state string) lineOpt {
	return func(l *entities.OrderLine) {
		l.CustomerID = customerID
		l.CustomerUniqueID = uniqueID
		l.CustomerState = state
	}
}

func withProduct(productID string) lineOpt {
	return func(l *entities.OrderLine) { l.ProductID = productID }
}

func withStatus(s entities.OrderStatus) lineOpt {
	return func(l *entities.OrderLine) { l.OrderStatus = s }
}

func withPayment(p entities.PaymentType) lineOpt {
	return func(l *entities.OrderLine) { l.PaymentType = p }
}

func withAmounts(price, freight string) lineOpt {
	return func(l *entities.OrderLine) {
		l.Price = decimal.RequireFromString(price)
		l.FreightValue = decimal.RequireFromString(freight)
	}
}

// newLine builds an order line purchased at ts ("2006-01-02 15:04:05").
func newLine(t *testing.T, orderID, ts string, opts ...lineOpt) entities.OrderLine {
	t.Helper()
	purchased, err := time.ParseInLocation("2006-01-02 15:04:05", ts, time.UTC)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", ts, err)
	}
	l := entities.OrderLine{
		OrderID:                orderID,
		CustomerID:             "cust-" + orderID,
		CustomerUniqueID:       "uniq-" + orderID,
		CustomerState:          "SP",
		ProductID:              "prod-1",
		OrderStatus:            entities.OrderStatusDelivered,
		PaymentType:            entities.PaymentTypeCreditCard,
		Price:                  decimal.NewFromInt(10),
		FreightValue:           decimal.Zero,
		OrderPurchaseTimestamp: purchased,
	}
	for _, o := range opts {
		o(&l)
	}
	return l
}

func dateRange(t *testing.T, start, end string) entities.DateRange {
	t.Helper()
	s, err := entities.ParseDate(start)
	if err != nil {
		t.Fatalf("bad date %q: %v", start, err)
	}
	e, err := entities.ParseDate(end)
	if err != nil {
		t.Fatalf("bad date %q: %v", end, err)
	}
	return entities.DateRange{Start: s, End: e}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func cloneLines(lines []entities.OrderLine) []entities.OrderLine {
	out := make([]entities.OrderLine, len(lines))
	copy(out, lines)
	return out
}

func assertLinesUnchanged(t *testing.T, before, after []entities.OrderLine) {
	t.Helper()
	if len(before) != len(after) {
		t.Fatalf("input length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		b, a := before[i], after[i]
		if b.OrderID != a.OrderID || b.ProductID != a.ProductID || !b.Price.Equal(a.Price) ||
			!b.FreightValue.Equal(a.FreightValue) || !b.OrderPurchaseTimestamp.Equal(a.OrderPurchaseTimestamp) {
			t.Fatalf("input row %d mutated: %+v -> %+v", i, b, a)
		}
	}
}

type lineFixture struct {
	orderID string
	ts      string
}

type lineFixtures []lineFixture

func (s lineFixtures) build(t *testing.T) []entities.OrderLine {
	t.Helper()
	out := make([]entities.OrderLine, 0, len(s))
	for _, f := range s {
		out = append(out, newLine(t, f.orderID, f.ts))
	}
	return out
}
