package repository

import (
	"context"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	// UpsertBatch writes customers keyed by customer_id, updating rows that
	// already exist. The batch is all-or-nothing: a failure rolls every
	// write back.
	UpsertBatch(ctx context.Context, customers []entity.Customer) error
	// ListAll returns every stored customer ordered by customer_id.
	ListAll(ctx context.Context) ([]entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}
