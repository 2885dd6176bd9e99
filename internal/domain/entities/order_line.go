package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle status of an order as exported by the marketplace.
//
// Values outside the known set are kept as-is; the dashboard only counts them.
type OrderStatus string

const (
	OrderStatusCreated     OrderStatus = "created"
	OrderStatusApproved    OrderStatus = "approved"
	OrderStatusInvoiced    OrderStatus = "invoiced"
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusUnavailable OrderStatus = "unavailable"
	OrderStatusCanceled    OrderStatus = "canceled"
)

// PaymentType is the payment method used for an order.
type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "credit_card"
	PaymentTypeBoleto     PaymentType = "boleto"
	PaymentTypeVoucher    PaymentType = "voucher"
	PaymentTypeDebitCard  PaymentType = "debit_card"
	PaymentTypeNotDefined PaymentType = "not_defined"
)

// OrderLine is one row of the pre-joined transactions dataset: one item of one order.
//
// An order with several items contributes several lines, so order counts must be
// distinct counts over OrderID. A customer may own several CustomerID values that
// all map to the same CustomerUniqueID.
//
// Monetary representation:
//   - Price and FreightValue are non-negative decimals.
//   - The line total is derived by TotalPrice and is never stored.
//
// Timestamps are timezone-naive in the source and are kept as UTC wall clock.
type OrderLine struct {
	OrderID          string      `json:"order_id"`
	CustomerID       string      `json:"customer_id"`
	CustomerUniqueID string      `json:"customer_unique_id"`
	CustomerState    string      `json:"customer_state"`
	ProductID        string      `json:"product_id"`
	OrderStatus      OrderStatus `json:"order_status"`
	PaymentType      PaymentType `json:"payment_type"`

	Price        decimal.Decimal `json:"price"`
	FreightValue decimal.Decimal `json:"freight_value"`

	OrderPurchaseTimestamp     time.Time  `json:"order_purchase_timestamp"`
	OrderApprovedAt            *time.Time `json:"order_approved_at,omitempty"`
	OrderDeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date,omitempty"`
	OrderDeliveredCustomerDate *time.Time `json:"order_delivered_customer_date,omitempty"`
	OrderEstimatedDeliveryDate *time.Time `json:"order_estimated_delivery_date,omitempty"`
	ShippingLimitDate          *time.Time `json:"shipping_limit_date,omitempty"`
}

// TotalPrice is price plus freight for this line.
func (l OrderLine) TotalPrice() decimal.Decimal {
	return l.Price.Add(l.FreightValue)
}

// PurchaseDate is the calendar date of the purchase timestamp.
func (l OrderLine) PurchaseDate() time.Time {
	return DateOf(l.OrderPurchaseTimestamp)
}
