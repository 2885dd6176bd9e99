package usecase

import (
	"context"
	"errors"
	"testing"

	"ecommerce_dashboard/internal/domain/entities"
	"ecommerce_dashboard/internal/infrastructure/logger"
	mock_interfaces "ecommerce_dashboard/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleLines(t *testing.T) []entities.OrderLine {
	return []entities.OrderLine{
		newLine(t, "o1", "2018-01-01 09:00:00", withCustomer("c1", "U1", "SP"), withProduct("p1"), withAmounts("40", "10")),
		newLine(t, "o1", "2018-01-01 09:00:00", withCustomer("c1", "U1", "SP"), withProduct("p2"), withAmounts("20", "4")),
		newLine(t, "o2", "2018-01-03 12:00:00", withCustomer("c2", "U2", "RJ"), withProduct("p1"), withAmounts("25", "5"),
			withStatus(entities.OrderStatusShipped), withPayment(entities.PaymentTypeBoleto)),
		newLine(t, "o3", "2018-01-10 18:00:00", withCustomer("c3", "U1", "SP"), withProduct("p3"), withAmounts("15", "15")),
	}
}

func TestLoadDataset(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLineRepository(ctrl)
		repo.EXPECT().LoadAll(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := LoadDataset(context.Background(), repo)
		if err == nil || err.Error() != "load order lines: boom" {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})

	t.Run("empty dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLineRepository(ctrl)
		repo.EXPECT().LoadAll(gomock.Any()).Return([]entities.OrderLine{}, nil)

		_, err := LoadDataset(context.Background(), repo)
		if !errors.Is(err, ErrEmptyDataset) {
			t.Fatalf("expected ErrEmptyDataset, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLineRepository(ctrl)
		repo.EXPECT().LoadAll(gomock.Any()).Return(sampleLines(t), nil)

		ds, err := LoadDataset(context.Background(), repo)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := dateRange(t, "2018-01-01", "2018-01-10")
		if !ds.Span.Start.Equal(want.Start) || !ds.Span.End.Equal(want.End) {
			t.Fatalf("expected span %s got %s", want, ds.Span)
		}
		if len(ds.Lines) != 4 {
			t.Fatalf("expected 4 lines, got %d", len(ds.Lines))
		}
	})
}

func newTestDashboard(t *testing.T) *DashboardUseCase {
	t.Helper()
	lines := sampleLines(t)
	span, _ := PurchaseSpan(lines)
	return NewDashboardUseCase(entities.Dataset{Lines: lines, Span: span}, logger.Nop())
}

func TestDashboardUseCase_Build(t *testing.T) {
	uc := newTestDashboard(t)
	ctx := context.Background()

	t.Run("full span", func(t *testing.T) {
		d, err := uc.Build(ctx, uc.DateSpan(ctx))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.RowCount != 4 {
			t.Fatalf("expected 4 rows, got %d", d.RowCount)
		}
		if len(d.DailyOrders) != 10 {
			t.Fatalf("expected 10 daily buckets, got %d", len(d.DailyOrders))
		}
		if d.DailySummary.TotalOrders != 3 || !d.DailySummary.TotalRevenue.Equal(dec("134")) {
			t.Fatalf("unexpected summary: %+v", d.DailySummary)
		}
		if d.Freight[0].ProductID != "p1" || d.Freight[1].ProductID != "p3" || !d.Freight[0].TotalFreightValue.Equal(dec("15")) {
			t.Fatalf("unexpected freight leader: %+v", d.Freight)
		}
		if len(d.FreightLeaders.Highest) != 3 || len(d.FreightLeaders.Lowest) != 3 {
			t.Fatalf("unexpected freight leaders: %+v", d.FreightLeaders)
		}
		if d.CustomersByState[0].State != "SP" || d.CustomersByState[0].CustomerCount != 2 {
			t.Fatalf("unexpected state rollup: %+v", d.CustomersByState)
		}
		if len(d.RFM) != 2 || d.RFM[0].CustomerID != "U1" || d.RFM[0].Frequency != 2 || d.RFM[0].Recency != 0 {
			t.Fatalf("unexpected rfm: %+v", d.RFM)
		}
		if d.RFM[1].CustomerID != "U2" || d.RFM[1].Recency != 7 {
			t.Fatalf("unexpected rfm for U2: %+v", d.RFM[1])
		}
		if len(d.PaymentTypes) != 2 || d.PaymentTypes[0].Category != "credit_card" || d.PaymentTypes[0].Percent != 75 {
			t.Fatalf("unexpected payment types: %+v", d.PaymentTypes)
		}
	})

	t.Run("empty working set is not an error", func(t *testing.T) {
		d, err := uc.Build(ctx, dateRange(t, "2018-01-05", "2018-01-08"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.RowCount != 0 || len(d.DailyOrders) != 0 || len(d.RFM) != 0 || len(d.Freight) != 0 {
			t.Fatalf("expected empty dashboard, got %+v", d)
		}
		if d.DailySummary.TotalOrders != 0 || !d.DailySummary.TotalRevenue.IsZero() {
			t.Fatalf("expected zero metrics, got %+v", d.DailySummary)
		}
	})

	t.Run("rejects ranges outside the span", func(t *testing.T) {
		_, err := uc.Build(ctx, dateRange(t, "2017-12-31", "2018-01-05"))
		if !errors.Is(err, ErrDateOutOfBounds) {
			t.Fatalf("expected ErrDateOutOfBounds, got %v", err)
		}
	})

	t.Run("rejects inverted ranges", func(t *testing.T) {
		_, err := uc.Build(ctx, dateRange(t, "2018-01-05", "2018-01-02"))
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := uc.Build(cctx, uc.DateSpan(ctx))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestDashboardUseCase_Widgets(t *testing.T) {
	uc := newTestDashboard(t)
	ctx := context.Background()
	r := dateRange(t, "2018-01-01", "2018-01-03")

	daily, summary, err := uc.DailyOrders(ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(daily) != 3 || daily[1].OrderCount != 0 || summary.TotalOrders != 2 {
		t.Fatalf("unexpected daily rollup: %+v %+v", daily, summary)
	}

	freight, leaders, err := uc.Freight(ctx, r, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(freight) != 2 || freight[0].ProductID != "p1" || leaders.Lowest[0].ProductID != "p2" {
		t.Fatalf("unexpected freight: %+v %+v", freight, leaders)
	}

	states, err := uc.CustomersByState(ctx, r)
	if err != nil || len(states) != 2 {
		t.Fatalf("unexpected states: %+v err=%v", states, err)
	}

	statuses, err := uc.OrderStatus(ctx, r)
	if err != nil || len(statuses) != 2 || statuses[0].Category != "delivered" {
		t.Fatalf("unexpected statuses: %+v err=%v", statuses, err)
	}

	payments, err := uc.PaymentTypes(ctx, r)
	if err != nil || len(payments) != 2 {
		t.Fatalf("unexpected payments: %+v err=%v", payments, err)
	}

	rfm, rfmSummary, err := uc.RFM(ctx, r)
	if err != nil || len(rfm) != 2 {
		t.Fatalf("unexpected rfm: %+v err=%v", rfm, err)
	}
	if rfmSummary.AvgFrequency != 1 || rfmSummary.AvgRecency != 1 {
		t.Fatalf("unexpected rfm summary: %+v", rfmSummary)
	}
}

func TestDashboardUseCase_Orders(t *testing.T) {
	uc := newTestDashboard(t)
	ctx := context.Background()
	span := uc.DateSpan(ctx)

	page, err := uc.Orders(ctx, span, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 4 || len(page.Lines) != 2 || page.Lines[0].ProductID != "p2" {
		t.Fatalf("unexpected page: %+v", page)
	}

	past, err := uc.Orders(ctx, span, 10, 2)
	if err != nil || len(past.Lines) != 0 || past.Total != 4 {
		t.Fatalf("unexpected page past the end: %+v err=%v", past, err)
	}

	if _, err := uc.Orders(ctx, span, -1, 2); !errors.Is(err, ErrInvalidPagination) {
		t.Fatalf("expected ErrInvalidPagination, got %v", err)
	}
	if _, err := uc.Orders(ctx, span, 0, MaxPageSize+1); !errors.Is(err, ErrInvalidPagination) {
		t.Fatalf("expected ErrInvalidPagination, got %v", err)
	}
}
