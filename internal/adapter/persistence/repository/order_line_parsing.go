package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ecommerce_dashboard/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrMalformedDataset marks any ingestion failure: missing column, bad timestamp,
// bad amount or empty category. Loading stops at the first one.
var ErrMalformedDataset = errors.New("malformed dataset")

// Timestamps in the export carry no zone; they are read as UTC wall clock.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// Column names of the pre-joined export.
const (
	colOrderID                    = "order_id"
	colCustomerID                 = "customer_id"
	colCustomerUniqueID           = "customer_unique_id"
	colCustomerState              = "customer_state"
	colProductID                  = "product_id"
	colOrderStatus                = "order_status"
	colPaymentType                = "payment_type"
	colPrice                      = "price"
	colFreightValue               = "freight_value"
	colOrderPurchaseTimestamp     = "order_purchase_timestamp"
	colOrderApprovedAt            = "order_approved_at"
	colOrderDeliveredCarrierDate  = "order_delivered_carrier_date"
	colOrderDeliveredCustomerDate = "order_delivered_customer_date"
	colOrderEstimatedDeliveryDate = "order_estimated_delivery_date"
	colShippingLimitDate          = "shipping_limit_date"
)

var requiredColumns = []string{
	colOrderID,
	colCustomerID,
	colCustomerUniqueID,
	colCustomerState,
	colProductID,
	colOrderStatus,
	colPaymentType,
	colPrice,
	colFreightValue,
	colOrderPurchaseTimestamp,
}

var optionalTimestampColumns = []string{
	colOrderApprovedAt,
	colOrderDeliveredCarrierDate,
	colOrderDeliveredCustomerDate,
	colOrderEstimatedDeliveryDate,
	colShippingLimitDate,
}

// rawOrderLine is the untyped form shared by every source before validation.
type rawOrderLine map[string]string

func (r rawOrderLine) get(col string) string {
	return strings.TrimSpace(r[col])
}

func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseOptionalTimestamp(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative amount %s", s)
	}
	return d, nil
}

func malformed(row int, col string, err error) error {
	return fmt.Errorf("%w: row %d column %s: %v", ErrMalformedDataset, row, col, err)
}

// toOrderLine validates a raw row. row is 1-based and only used in errors.
func toOrderLine(row int, r rawOrderLine) (entities.OrderLine, error) {
	for _, col := range []string{colOrderID, colCustomerID, colCustomerUniqueID, colProductID, colOrderStatus, colPaymentType} {
		if r.get(col) == "" {
			return entities.OrderLine{}, malformed(row, col, errors.New("empty value"))
		}
	}

	price, err := parseAmount(r.get(colPrice))
	if err != nil {
		return entities.OrderLine{}, malformed(row, colPrice, err)
	}
	freight, err := parseAmount(r.get(colFreightValue))
	if err != nil {
		return entities.OrderLine{}, malformed(row, colFreightValue, err)
	}
	purchased, err := parseTimestamp(r.get(colOrderPurchaseTimestamp))
	if err != nil {
		return entities.OrderLine{}, malformed(row, colOrderPurchaseTimestamp, err)
	}

	optional := make(map[string]*time.Time, len(optionalTimestampColumns))
	for _, col := range optionalTimestampColumns {
		ts, err := parseOptionalTimestamp(r.get(col))
		if err != nil {
			return entities.OrderLine{}, malformed(row, col, err)
		}
		optional[col] = ts
	}

	return entities.OrderLine{
		OrderID:                    r.get(colOrderID),
		CustomerID:                 r.get(colCustomerID),
		CustomerUniqueID:           r.get(colCustomerUniqueID),
		CustomerState:              r.get(colCustomerState),
		ProductID:                  r.get(colProductID),
		OrderStatus:                entities.OrderStatus(r.get(colOrderStatus)),
		PaymentType:                entities.PaymentType(r.get(colPaymentType)),
		Price:                      price,
		FreightValue:               freight,
		OrderPurchaseTimestamp:     purchased,
		OrderApprovedAt:            optional[colOrderApprovedAt],
		OrderDeliveredCarrierDate:  optional[colOrderDeliveredCarrierDate],
		OrderDeliveredCustomerDate: optional[colOrderDeliveredCustomerDate],
		OrderEstimatedDeliveryDate: optional[colOrderEstimatedDeliveryDate],
		ShippingLimitDate:          optional[colShippingLimitDate],
	}, nil
}
