package repository

import (
	"context"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/entity"
)

// OrderRepository defines the interface for order line data operations
type OrderRepository interface {
	// UpsertBatch writes order lines keyed by (order_id, sku_id), updating
	// rows that already exist. The batch is all-or-nothing: a failure rolls
	// every write back.
	UpsertBatch(ctx context.Context, lines []entity.OrderLine) error
	// ListAll returns every stored order line ordered by order_id, sku_id.
	ListAll(ctx context.Context) ([]entity.OrderLine, error)
	Count(ctx context.Context) (int64, error)
}
