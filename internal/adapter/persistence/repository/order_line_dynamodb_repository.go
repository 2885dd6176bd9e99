package repository

import (
	"context"
	"strings"

	"ecommerce_dashboard/internal/domain/entities"
	"ecommerce_dashboard/internal/infrastructure/logger"
	"ecommerce_dashboard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultOrderLinesTableName = "order_lines"

type orderLineItem struct {
	ID                         string `dynamodbav:"id"`
	OrderID                    string `dynamodbav:"order_id"`
	CustomerID                 string `dynamodbav:"customer_id"`
	CustomerUniqueID           string `dynamodbav:"customer_unique_id"`
	CustomerState              string `dynamodbav:"customer_state"`
	ProductID                  string `dynamodbav:"product_id"`
	OrderStatus                string `dynamodbav:"order_status"`
	PaymentType                string `dynamodbav:"payment_type"`
	Price                      string `dynamodbav:"price"`
	FreightValue               string `dynamodbav:"freight_value"`
	OrderPurchaseTimestamp     string `dynamodbav:"order_purchase_timestamp"`
	OrderApprovedAt            string `dynamodbav:"order_approved_at,omitempty"`
	OrderDeliveredCarrierDate  string `dynamodbav:"order_delivered_carrier_date,omitempty"`
	OrderDeliveredCustomerDate string `dynamodbav:"order_delivered_customer_date,omitempty"`
	OrderEstimatedDeliveryDate string `dynamodbav:"order_estimated_delivery_date,omitempty"`
	ShippingLimitDate          string `dynamodbav:"shipping_limit_date,omitempty"`
}

// OrderLineDynamoRepository reads the transactions dataset from a DynamoDB table.
//
// Table requirements:
//   - PK: id (string), one item per order line
//   - amounts stored as decimal strings, timestamps as "2006-01-02 15:04:05"
//
// The whole table is scanned page by page; the dataset is loaded once at startup.
type OrderLineDynamoRepository struct {
	ddb       dynamodb.ScanAPIClient
	tableName string
	log       *logger.Logger
}

var _ interfaces.IOrderLineRepository = (*OrderLineDynamoRepository)(nil)

func NewOrderLineDynamoRepository(ddb dynamodb.ScanAPIClient, tableName string, log *logger.Logger) *OrderLineDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultOrderLinesTableName
	}
	return &OrderLineDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		log:       log.With("source", "dynamodb", "table", tableName),
	}
}

func (r *OrderLineDynamoRepository) LoadAll(ctx context.Context) ([]entities.OrderLine, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	out := make([]entities.OrderLine, 0)
	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			r.log.Error("scan failed", "page", pages, "err", err)
			return nil, err
		}
		pages++

		for _, raw := range page.Items {
			var it orderLineItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, malformed(len(out)+1, "item", err)
			}
			line, err := toOrderLine(len(out)+1, fromOrderLineItem(it))
			if err != nil {
				r.log.Error("dataset ingestion failed", "item_id", it.ID, "err", err)
				return nil, err
			}
			out = append(out, line)
		}
	}

	r.log.Info("dataset ingested", "rows", len(out), "pages", pages)
	return out, nil
}

func fromOrderLineItem(it orderLineItem) rawOrderLine {
	return rawOrderLine{
		colOrderID:                    it.OrderID,
		colCustomerID:                 it.CustomerID,
		colCustomerUniqueID:           it.CustomerUniqueID,
		colCustomerState:              it.CustomerState,
		colProductID:                  it.ProductID,
		colOrderStatus:                it.OrderStatus,
		colPaymentType:                it.PaymentType,
		colPrice:                      it.Price,
		colFreightValue:               it.FreightValue,
		colOrderPurchaseTimestamp:     it.OrderPurchaseTimestamp,
		colOrderApprovedAt:            it.OrderApprovedAt,
		colOrderDeliveredCarrierDate:  it.OrderDeliveredCarrierDate,
		colOrderDeliveredCustomerDate: it.OrderDeliveredCustomerDate,
		colOrderEstimatedDeliveryDate: it.OrderEstimatedDeliveryDate,
		colShippingLimitDate:          it.ShippingLimitDate,
	}
}
