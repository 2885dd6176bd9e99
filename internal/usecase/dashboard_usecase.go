package usecase

import (
	"context"
	"errors"
	"fmt"

	"ecommerce_dashboard/internal/domain/entities"
	"ecommerce_dashboard/internal/infrastructure/logger"
	"ecommerce_dashboard/internal/usecase/interfaces"
)

const (
	DefaultFreightLeaders = 5
	DefaultPageSize       = 50
	MaxPageSize           = 1000
)

var (
	ErrEmptyDataset      = errors.New("dataset has no order lines")
	ErrInvalidPagination = errors.New("invalid pagination")
)

// LoadDataset ingests the order lines once and records their purchase date span.
// Any ingestion error is returned as-is; callers treat it as fatal.
func LoadDataset(ctx context.Context, repo interfaces.IOrderLineRepository) (entities.Dataset, error) {
	lines, err := repo.LoadAll(ctx)
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("load order lines: %w", err)
	}
	span, ok := PurchaseSpan(lines)
	if !ok {
		return entities.Dataset{}, ErrEmptyDataset
	}
	return entities.Dataset{Lines: lines, Span: span}, nil
}

// IDashboardUseCase serves the dashboard widgets for a date range.
//
// Every call validates the range against the dataset span and builds its own
// working set; nothing is cached between calls.
type IDashboardUseCase interface {
	DateSpan(ctx context.Context) entities.DateRange
	Build(ctx context.Context, r entities.DateRange) (entities.Dashboard, error)
	DailyOrders(ctx context.Context, r entities.DateRange) ([]entities.DailyOrders, entities.DailyOrdersSummary, error)
	Freight(ctx context.Context, r entities.DateRange, n int) ([]entities.ProductFreight, entities.FreightLeaders, error)
	CustomersByState(ctx context.Context, r entities.DateRange) ([]entities.StateCustomers, error)
	OrderStatus(ctx context.Context, r entities.DateRange) ([]entities.CategoryCount, error)
	PaymentTypes(ctx context.Context, r entities.DateRange) ([]entities.CategoryShare, error)
	RFM(ctx context.Context, r entities.DateRange) ([]entities.CustomerRFM, entities.RFMSummary, error)
	Orders(ctx context.Context, r entities.DateRange, offset, limit int) (entities.OrderPage, error)
}

type DashboardUseCase struct {
	dataset entities.Dataset
	log     *logger.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(dataset entities.Dataset, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{dataset: dataset, log: log.With("component", "dashboard")}
}

func (u *DashboardUseCase) DateSpan(_ context.Context) entities.DateRange {
	return u.dataset.Span
}

func (u *DashboardUseCase) workingSet(ctx context.Context, r entities.DateRange) ([]entities.OrderLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateRange(u.dataset.Span, r); err != nil {
		u.log.Warn("rejected date range", "range", r.String(), "err", err)
		return nil, err
	}
	lines := FilterByDateRange(u.dataset.Lines, r)
	u.log.Debug("working set built", "range", r.String(), "rows", len(lines))
	return lines, nil
}

func (u *DashboardUseCase) Build(ctx context.Context, r entities.DateRange) (entities.Dashboard, error) {
	lines, err := u.workingSet(ctx, r)
	if err != nil {
		return entities.Dashboard{}, err
	}

	daily := DailyOrdersInRange(lines, r)
	freight := FreightByProduct(lines)
	rfm := RFM(lines)
	return entities.Dashboard{
		Range:            r,
		RowCount:         len(lines),
		DailyOrders:      daily,
		DailySummary:     SummarizeDailyOrders(daily),
		Freight:          freight,
		FreightLeaders:   HeadTail(freight, DefaultFreightLeaders),
		CustomersByState: SortStatesByCustomers(CustomersByState(lines)),
		OrderStatus:      OrderStatusDistribution(lines),
		PaymentTypes:     Percentages(PaymentTypeDistribution(lines)),
		RFM:              rfm,
		RFMSummary:       SummarizeRFM(rfm),
	}, nil
}

func (u *DashboardUseCase) DailyOrders(ctx context.Context, r entities.DateRange) ([]entities.DailyOrders, entities.DailyOrdersSummary, error) {
	lines, err := u.workingSet(ctx, r)
	if err != nil {
		return nil, entities.DailyOrdersSummary{}, err
	}
	daily := DailyOrdersInRange(lines, r)
	return daily, SummarizeDailyOrders(daily), nil
}

func (u *DashboardUseCase) Freight(ctx context.Context, r entities.DateRange, n int) ([]entities.ProductFreight, entities.FreightLeaders, error) {
	lines, err := u.workingSet(ctx, r)
	if err != nil {
		return nil, entities.FreightLeaders{}, err
	}
	freight := FreightByProduct(lines)
	return freight, HeadTail(freight, n), nil
}

func (u *DashboardUseCase) CustomersByState(ctx context.Context, r entities.DateRange) ([]entities.StateCustomers, error) {
	lines, err := u.workingSet(ctx, r)
	if err != nil {
		return nil, err
	}
	return SortStatesByCustomers(CustomersByState(lines)), nil
}

func (u *DashboardUseCase) OrderStatus(ctx context.Context, r entities.DateRange) ([]entities.CategoryCount, error) {
	lines, err := u.workingSet(ctx, r)
	if err != nil {
		return nil, err
	}
	return OrderStatusDistribution(lines), nil
}

func (u *DashboardUseCase) PaymentTypes(ctx context.Context, r entities.DateRange) ([]entities.CategoryShare, error) {
	lines, err := u.workingSet(ctx, r)
	if err != nil {
		return nil, err
	}
	return Percentages(PaymentTypeDistribution(lines)), nil
}

func (u *DashboardUseCase) RFM(ctx context.Context, r entities.DateRange) ([]entities.CustomerRFM, entities.RFMSummary, error) {
	lines, err := u.workingSet(ctx, r)
	if err != nil {
		return nil, entities.RFMSummary{}, err
	}
	rows := RFM(lines)
	return rows, SummarizeRFM(rows), nil
}

func (u *DashboardUseCase) Orders(ctx context.Context, r entities.DateRange, offset, limit int) (entities.OrderPage, error) {
	if offset < 0 || limit <= 0 || limit > MaxPageSize {
		return entities.OrderPage{}, ErrInvalidPagination
	}
	lines, err := u.workingSet(ctx, r)
	if err != nil {
		return entities.OrderPage{}, err
	}

	page := entities.OrderPage{Lines: []entities.OrderLine{}, Total: len(lines), Offset: offset, Limit: limit}
	if offset >= len(lines) {
		return page, nil
	}
	end := offset + limit
	if end > len(lines) {
		end = len(lines)
	}
	page.Lines = lines[offset:end]
	return page, nil
}
