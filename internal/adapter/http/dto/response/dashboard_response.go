package response

import (
	"time"

	"ecommerce_dashboard/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Monetary values leave the service as plain JSON numbers; formatting and
// rounding belong to the client.

type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

type DailyOrdersResponse struct {
	Date       string  `json:"date"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

type DailyOrdersSummaryResponse struct {
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

type DailyOrdersWidgetResponse struct {
	Range   DateRangeResponse          `json:"range"`
	Days    []DailyOrdersResponse      `json:"days"`
	Summary DailyOrdersSummaryResponse `json:"summary"`
}

type ProductFreightResponse struct {
	ProductID         string  `json:"product_id"`
	TotalFreightValue float64 `json:"total_freight_value"`
}

type FreightWidgetResponse struct {
	Range    DateRangeResponse        `json:"range"`
	Highest  []ProductFreightResponse `json:"highest"`
	Lowest   []ProductFreightResponse `json:"lowest"`
	Products []ProductFreightResponse `json:"products"`
}

type StateCustomersResponse struct {
	State         string `json:"state"`
	CustomerCount int    `json:"customer_count"`
}

type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CategoryShareResponse struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

type CustomerRFMResponse struct {
	CustomerID string  `json:"customer_id"`
	Recency    int     `json:"recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary"`
}

type RFMSummaryResponse struct {
	AvgRecency   float64 `json:"avg_recency"`
	AvgFrequency float64 `json:"avg_frequency"`
	AvgMonetary  float64 `json:"avg_monetary"`
}

type RFMWidgetResponse struct {
	Range     DateRangeResponse     `json:"range"`
	Customers []CustomerRFMResponse `json:"customers"`
	Summary   RFMSummaryResponse    `json:"summary"`
}

type ListResponse[T any] struct {
	Range DateRangeResponse `json:"range"`
	Items []T               `json:"items"`
}

type OrderLineResponse struct {
	OrderID                    string     `json:"order_id"`
	CustomerID                 string     `json:"customer_id"`
	CustomerUniqueID           string     `json:"customer_unique_id"`
	CustomerState              string     `json:"customer_state"`
	ProductID                  string     `json:"product_id"`
	OrderStatus                string     `json:"order_status"`
	PaymentType                string     `json:"payment_type"`
	Price                      float64    `json:"price"`
	FreightValue               float64    `json:"freight_value"`
	TotalPrice                 float64    `json:"total_price"`
	OrderPurchaseTimestamp     time.Time  `json:"order_purchase_timestamp"`
	OrderApprovedAt            *time.Time `json:"order_approved_at,omitempty"`
	OrderDeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date,omitempty"`
	OrderDeliveredCustomerDate *time.Time `json:"order_delivered_customer_date,omitempty"`
	OrderEstimatedDeliveryDate *time.Time `json:"order_estimated_delivery_date,omitempty"`
	ShippingLimitDate          *time.Time `json:"shipping_limit_date,omitempty"`
}

type OrderPageResponse struct {
	Range  DateRangeResponse   `json:"range"`
	Total  int                 `json:"total"`
	Offset int                 `json:"offset"`
	Limit  int                 `json:"limit"`
	Lines  []OrderLineResponse `json:"lines"`
}

type DashboardResponse struct {
	Range            DateRangeResponse          `json:"range"`
	RowCount         int                        `json:"row_count"`
	DailyOrders      []DailyOrdersResponse      `json:"daily_orders"`
	DailySummary     DailyOrdersSummaryResponse `json:"daily_summary"`
	FreightHighest   []ProductFreightResponse   `json:"freight_highest"`
	FreightLowest    []ProductFreightResponse   `json:"freight_lowest"`
	CustomersByState []StateCustomersResponse   `json:"customers_by_state"`
	OrderStatus      []CategoryCountResponse    `json:"order_status"`
	PaymentTypes     []CategoryShareResponse    `json:"payment_types"`
	RFM              []CustomerRFMResponse      `json:"rfm"`
	RFMSummary       RFMSummaryResponse         `json:"rfm_summary"`
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func FromDateRange(r entities.DateRange) DateRangeResponse {
	return DateRangeResponse{
		StartDate: r.Start.Format(entities.DateLayout),
		EndDate:   r.End.Format(entities.DateLayout),
		Days:      r.Days(),
	}
}

func FromDailyOrders(days []entities.DailyOrders) []DailyOrdersResponse {
	out := make([]DailyOrdersResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DailyOrdersResponse{
			Date:       d.Date.Format(entities.DateLayout),
			OrderCount: d.OrderCount,
			Revenue:    money(d.Revenue),
		})
	}
	return out
}

func FromDailyOrdersSummary(s entities.DailyOrdersSummary) DailyOrdersSummaryResponse {
	return DailyOrdersSummaryResponse{TotalOrders: s.TotalOrders, TotalRevenue: money(s.TotalRevenue)}
}

func FromProductFreight(rows []entities.ProductFreight) []ProductFreightResponse {
	out := make([]ProductFreightResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProductFreightResponse{ProductID: r.ProductID, TotalFreightValue: money(r.TotalFreightValue)})
	}
	return out
}

func FromStateCustomers(rows []entities.StateCustomers) []StateCustomersResponse {
	out := make([]StateCustomersResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, StateCustomersResponse{State: r.State, CustomerCount: r.CustomerCount})
	}
	return out
}

func FromCategoryCounts(rows []entities.CategoryCount) []CategoryCountResponse {
	out := make([]CategoryCountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CategoryCountResponse{Category: r.Category, Count: r.Count})
	}
	return out
}

func FromCategoryShares(rows []entities.CategoryShare) []CategoryShareResponse {
	out := make([]CategoryShareResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CategoryShareResponse{Category: r.Category, Count: r.Count, Percent: r.Percent})
	}
	return out
}

func FromCustomerRFM(rows []entities.CustomerRFM) []CustomerRFMResponse {
	out := make([]CustomerRFMResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CustomerRFMResponse{
			CustomerID: r.CustomerID,
			Recency:    r.Recency,
			Frequency:  r.Frequency,
			Monetary:   money(r.Monetary),
		})
	}
	return out
}

func FromRFMSummary(s entities.RFMSummary) RFMSummaryResponse {
	return RFMSummaryResponse{
		AvgRecency:   s.AvgRecency,
		AvgFrequency: s.AvgFrequency,
		AvgMonetary:  money(s.AvgMonetary),
	}
}

func FromOrderLine(l entities.OrderLine) OrderLineResponse {
	return OrderLineResponse{
		OrderID:                    l.OrderID,
		CustomerID:                 l.CustomerID,
		CustomerUniqueID:           l.CustomerUniqueID,
		CustomerState:              l.CustomerState,
		ProductID:                  l.ProductID,
		OrderStatus:                string(l.OrderStatus),
		PaymentType:                string(l.PaymentType),
		Price:                      money(l.Price),
		FreightValue:               money(l.FreightValue),
		TotalPrice:                 money(l.TotalPrice()),
		OrderPurchaseTimestamp:     l.OrderPurchaseTimestamp,
		OrderApprovedAt:            l.OrderApprovedAt,
		OrderDeliveredCarrierDate:  l.OrderDeliveredCarrierDate,
		OrderDeliveredCustomerDate: l.OrderDeliveredCustomerDate,
		OrderEstimatedDeliveryDate: l.OrderEstimatedDeliveryDate,
		ShippingLimitDate:          l.ShippingLimitDate,
	}
}

func FromOrderPage(r entities.DateRange, p entities.OrderPage) OrderPageResponse {
	lines := make([]OrderLineResponse, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, FromOrderLine(l))
	}
	return OrderPageResponse{Range: FromDateRange(r), Total: p.Total, Offset: p.Offset, Limit: p.Limit, Lines: lines}
}

func FromDashboard(d entities.Dashboard) DashboardResponse {
	return DashboardResponse{
		Range:            FromDateRange(d.Range),
		RowCount:         d.RowCount,
		DailyOrders:      FromDailyOrders(d.DailyOrders),
		DailySummary:     FromDailyOrdersSummary(d.DailySummary),
		FreightHighest:   FromProductFreight(d.FreightLeaders.Highest),
		FreightLowest:    FromProductFreight(d.FreightLeaders.Lowest),
		CustomersByState: FromStateCustomers(d.CustomersByState),
		OrderStatus:      FromCategoryCounts(d.OrderStatus),
		PaymentTypes:     FromCategoryShares(d.PaymentTypes),
		RFM:              FromCustomerRFM(d.RFM),
		RFMSummary:       FromRFMSummary(d.RFMSummary),
	}
}
