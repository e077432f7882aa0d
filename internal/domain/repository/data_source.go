package repository

import (
	"context"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/entity"
)

// DataSource is the tabular-collection capability an analysis run loads its
// dataset from. Both backings satisfy it: normalized records held in memory,
// and the relational store read back through the repositories. Whatever the
// backing, the same KPI engine consumes the result, so the two execution
// modes cannot drift apart.
type DataSource interface {
	Customers(ctx context.Context) ([]entity.Customer, error)
	Orders(ctx context.Context) ([]entity.OrderLine, error)
}
