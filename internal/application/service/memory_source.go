package service

import (
	"context"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/entity"
)

// MemorySource serves a normalized batch straight from memory. It is the
// memory-mode counterpart of the store-backed source: the KPI engine cannot
// tell them apart.
type MemorySource struct {
	customers []entity.Customer
	orders    []entity.OrderLine
}

func NewMemorySource(customers []entity.Customer, orders []entity.OrderLine) *MemorySource {
	return &MemorySource{customers: customers, orders: orders}
}

func (s *MemorySource) Customers(_ context.Context) ([]entity.Customer, error) {
	return s.customers, nil
}

func (s *MemorySource) Orders(_ context.Context) ([]entity.OrderLine, error) {
	return s.orders, nil
}
