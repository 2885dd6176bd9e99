package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dataset is the ingested order-line table plus its observed purchase date span.
//
// It is built once at startup and only read afterwards.
type Dataset struct {
	Lines []OrderLine
	Span  DateRange
}

// DailyOrders is one bucket of the daily order/revenue rollup.
type DailyOrders struct {
	Date       time.Time       `json:"date"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// DailyOrdersSummary holds the headline metrics shown above the daily chart.
type DailyOrdersSummary struct {
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type ProductFreight struct {
	ProductID         string          `json:"product_id"`
	TotalFreightValue decimal.Decimal `json:"total_freight_value"`
}

type StateCustomers struct {
	State         string `json:"state"`
	CustomerCount int    `json:"customer_count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CategoryShare struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// CustomerRFM is the recency/frequency/monetary profile of one unique customer.
//
// CustomerID carries the customer_unique_id, not the per-order customer_id.
type CustomerRFM struct {
	CustomerID string          `json:"customer_id"`
	Recency    int             `json:"recency"`
	Frequency  int             `json:"frequency"`
	Monetary   decimal.Decimal `json:"monetary"`
}

type RFMSummary struct {
	AvgRecency   float64         `json:"avg_recency"`
	AvgFrequency float64         `json:"avg_frequency"`
	AvgMonetary  decimal.Decimal `json:"avg_monetary"`
}

// FreightLeaders is the head/tail view of the freight rollup.
type FreightLeaders struct {
	Highest []ProductFreight `json:"highest"`
	Lowest  []ProductFreight `json:"lowest"`
}

// Dashboard bundles every widget for one date range.
type Dashboard struct {
	Range            DateRange          `json:"range"`
	RowCount         int                `json:"row_count"`
	DailyOrders      []DailyOrders      `json:"daily_orders"`
	DailySummary     DailyOrdersSummary `json:"daily_summary"`
	Freight          []ProductFreight   `json:"freight"`
	FreightLeaders   FreightLeaders     `json:"freight_leaders"`
	CustomersByState []StateCustomers   `json:"customers_by_state"`
	OrderStatus      []CategoryCount    `json:"order_status"`
	PaymentTypes     []CategoryShare    `json:"payment_types"`
	RFM              []CustomerRFM      `json:"rfm"`
	RFMSummary       RFMSummary         `json:"rfm_summary"`
}

// OrderPage is a window over the working set, for the raw data view.
type OrderPage struct {
	Lines  []OrderLine `json:"lines"`
	Total  int         `json:"total"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
}
