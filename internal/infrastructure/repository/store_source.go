package repository

import (
	"context"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/entity"
	domainRepo "github.com/yaseenahmed1407/AkasaAir/internal/domain/repository"
)

// StoreSource adapts the relational repositories to the engine's data
// source seam. In db mode the persisted tables are read back through it, so
// the KPI engine runs over exactly what the store holds.
type StoreSource struct {
	customers domainRepo.CustomerRepository
	orders    domainRepo.OrderRepository
}

func NewStoreSource(customers domainRepo.CustomerRepository, orders domainRepo.OrderRepository) *StoreSource {
	return &StoreSource{customers: customers, orders: orders}
}

func (s *StoreSource) Customers(ctx context.Context) ([]entity.Customer, error) {
	return s.customers.ListAll(ctx)
}

func (s *StoreSource) Orders(ctx context.Context) ([]entity.OrderLine, error) {
	return s.orders.ListAll(ctx)
}
