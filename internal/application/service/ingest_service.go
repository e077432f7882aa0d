package service

import (
	"context"

	"github.com/op/go-logging"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/entity"
	"github.com/yaseenahmed1407/AkasaAir/internal/domain/repository"
	"github.com/yaseenahmed1407/AkasaAir/internal/infrastructure/ingest"
	"github.com/yaseenahmed1407/AkasaAir/pkg/apperror"
)

// IngestService runs the decode and normalize front of the pipeline and, in
// db mode, persists the normalized batch. Memory-mode callers construct it
// without repositories and never call Persist.
type IngestService struct {
	normalizer   *Normalizer
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	log          *logging.Logger
}

func NewIngestService(normalizer *Normalizer, customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository, log *logging.Logger) *IngestService {
	return &IngestService{
		normalizer:   normalizer,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		log:          log,
	}
}

// LoadCustomers decodes and normalizes the customers CSV.
func (s *IngestService) LoadCustomers(path string) ([]entity.Customer, error) {
	s.log.Infof("loading customer data from %s", path)
	table, err := ingest.ReadCustomersCSV(path)
	if err != nil {
		return nil, err
	}
	customers, err := s.normalizer.NormalizeCustomers(table)
	if err != nil {
		return nil, err
	}
	s.log.Infof("normalized %d customer records", len(customers))
	return customers, nil
}

// LoadOrders decodes and normalizes the orders XML.
func (s *IngestService) LoadOrders(path string) ([]entity.OrderLine, error) {
	s.log.Infof("loading orders data from %s", path)
	table, err := ingest.ReadOrdersXML(path)
	if err != nil {
		return nil, err
	}
	orders, err := s.normalizer.NormalizeOrders(table)
	if err != nil {
		return nil, err
	}
	s.log.Infof("normalized %d order line records", len(orders))
	return orders, nil
}

// Persist upserts the normalized batch into the relational store, customers
// first, then order lines. Each table's batch is transactional: on failure
// that table is left untouched and the error propagates without retry. The
// closing counts come from the store itself, as a verification that the
// writes landed.
func (s *IngestService) Persist(ctx context.Context, customers []entity.Customer, orders []entity.OrderLine) error {
	if err := s.customerRepo.UpsertBatch(ctx, customers); err != nil {
		return apperror.NewStoreError("upserting customers", err)
	}
	if err := s.orderRepo.UpsertBatch(ctx, orders); err != nil {
		return apperror.NewStoreError("upserting order lines", err)
	}

	customerCount, err := s.customerRepo.Count(ctx)
	if err != nil {
		return apperror.NewStoreError("counting customers", err)
	}
	orderCount, err := s.orderRepo.Count(ctx)
	if err != nil {
		return apperror.NewStoreError("counting order lines", err)
	}
	s.log.Infof("store now holds %d customers and %d order lines", customerCount, orderCount)
	return nil
}
