package interfaces

import (
	"context"
	"ecommerce_dashboard/internal/domain/entities"
)

//go:generate mockgen -source=order_line_repository_interface.go -destination=mocks/mock_order_line_repository_interface.go -package=mock_interfaces

// IOrderLineRepository abstracts where the transactions dataset is read from
// (flat CSV export or a DynamoDB table).
//
// LoadAll returns every row already parsed and validated; a malformed row fails
// the whole load.
type IOrderLineRepository interface {
	LoadAll(ctx context.Context) ([]entities.OrderLine, error)
}
