package service

import (
	"context"
	"time"

	"github.com/op/go-logging"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/kpi"
	"github.com/yaseenahmed1407/AkasaAir/internal/domain/repository"
	"github.com/yaseenahmed1407/AkasaAir/pkg/apperror"
	"github.com/yaseenahmed1407/AkasaAir/pkg/utils"
)

// AnalyticsService runs the KPI engine over whichever data source the mode
// selected and stamps each run with a short correlation ID.
type AnalyticsService struct {
	source repository.DataSource
	engine *kpi.Engine
	loc    *time.Location
	log    *logging.Logger
}

func NewAnalyticsService(source repository.DataSource, engine *kpi.Engine, loc *time.Location, log *logging.Logger) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{
		source: source,
		engine: engine,
		loc:    loc,
		log:    log,
	}
}

// Run analyzes as of the current instant in the service's location.
func (s *AnalyticsService) Run(ctx context.Context) (*kpi.Report, error) {
	return s.RunAt(ctx, time.Now().In(s.loc))
}

// RunAt analyzes as of a fixed reference instant. The instant is captured
// exactly once per run: every relative-time comparison uses it, so a run
// straddling midnight cannot disagree with itself.
func (s *AnalyticsService) RunAt(ctx context.Context, now time.Time) (*kpi.Report, error) {
	runID := utils.NewRunID()
	s.log.Infof("run %s: analyzing as of %s", runID, now.Format(time.RFC3339))

	customers, err := s.source.Customers(ctx)
	if err != nil {
		return nil, apperror.NewAggregateError("loading customers", err)
	}
	orders, err := s.source.Orders(ctx)
	if err != nil {
		return nil, apperror.NewAggregateError("loading order lines", err)
	}
	s.log.Infof("run %s: dataset has %d customers and %d order lines", runID, len(customers), len(orders))

	report := s.engine.Run(&kpi.Dataset{Customers: customers, Orders: orders}, now)
	report.RunID = runID
	return report, nil
}
