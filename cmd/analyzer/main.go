package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yaseenahmed1407/AkasaAir/internal/application/service"
	"github.com/yaseenahmed1407/AkasaAir/internal/config"
	"github.com/yaseenahmed1407/AkasaAir/internal/domain/kpi"
	domainRepo "github.com/yaseenahmed1407/AkasaAir/internal/domain/repository"
	"github.com/yaseenahmed1407/AkasaAir/internal/infrastructure/database"
	infraRepo "github.com/yaseenahmed1407/AkasaAir/internal/infrastructure/repository"
	"github.com/yaseenahmed1407/AkasaAir/internal/logging"
	"github.com/yaseenahmed1407/AkasaAir/internal/presentation/report"
	"github.com/yaseenahmed1407/AkasaAir/pkg/apperror"
)

func main() {
	// Load configuration
	cfg := config.Load()

	customersPath := flag.String("customers", cfg.Input.CustomersFile, "path to the customers CSV file")
	ordersPath := flag.String("orders", cfg.Input.OrdersFile, "path to the orders XML file")
	flag.Parse()

	logger, err := logging.New(cfg.App.Name, cfg.App.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL %q: %v\n", cfg.App.LogLevel, err)
		os.Exit(1)
	}

	// Every fatal error reports the stage it died in before the process exits.
	fail := func(stage string, err error) {
		if appErr := apperror.GetAppError(err); appErr.Stage != "" {
			stage = appErr.Stage
		}
		logger.Errorf("run failed during %s: %v", stage, err)
		os.Exit(1)
	}

	mode := cfg.Analytics.Mode
	if mode != config.ModeMemory && mode != config.ModeDB {
		fail("startup", fmt.Errorf("unknown ANALYTICS_MODE %q", mode))
	}
	loc, err := cfg.Analytics.Location()
	if err != nil {
		fail("startup", fmt.Errorf("loading timezone %q: %w", cfg.Analytics.Timezone, err))
	}

	logger.Infof("starting %s (env %s, mode %s)", cfg.App.Name, cfg.App.Env, mode)

	ctx := context.Background()
	normalizer := service.NewNormalizer(loc)
	engine := kpi.NewEngine(loc, cfg.Analytics.WindowDays, cfg.Analytics.TopCustomers)

	// The store only participates in db mode; memory mode never connects.
	var (
		customerRepo domainRepo.CustomerRepository
		orderRepo    domainRepo.OrderRepository
	)
	if mode == config.ModeDB {
		// Connect to database
		db, err := database.NewMySQLDB(&cfg.Database)
		if err != nil {
			fail(apperror.StagePersist, err)
		}
		// Run auto-migrations
		if err := database.AutoMigrate(db); err != nil {
			fail(apperror.StagePersist, err)
		}
		customerRepo = infraRepo.NewCustomerRepository(db)
		orderRepo = infraRepo.NewOrderRepository(db)
	}

	// Decode and normalize the batch; both modes consume the same records
	ing := service.NewIngestService(normalizer, customerRepo, orderRepo, logger)
	customers, err := ing.LoadCustomers(*customersPath)
	if err != nil {
		fail(apperror.StageNormalize, err)
	}
	orders, err := ing.LoadOrders(*ordersPath)
	if err != nil {
		fail(apperror.StageNormalize, err)
	}

	// Pick the dataset the engine will read
	var source domainRepo.DataSource
	if mode == config.ModeDB {
		if err := ing.Persist(ctx, customers, orders); err != nil {
			fail(apperror.StagePersist, err)
		}
		source = infraRepo.NewStoreSource(customerRepo, orderRepo)
	} else {
		source = service.NewMemorySource(customers, orders)
	}

	// Compute the KPIs
	analytics := service.NewAnalyticsService(source, engine, loc, logger)
	rep, err := analytics.Run(ctx)
	if err != nil {
		fail(apperror.StageAggregate, err)
	}

	// Render and export
	if err := report.NewRenderer().Render(os.Stdout, rep); err != nil {
		fail(apperror.StageReport, err)
	}
	if dir := cfg.Report.Dir; dir != "" {
		path, err := report.ExportJSON(dir, rep)
		if err != nil {
			fail(apperror.StageReport, err)
		}
		logger.Infof("exported JSON report to %s", path)

		paths, err := report.ExportCSV(dir, rep)
		if err != nil {
			fail(apperror.StageReport, err)
		}
		logger.Infof("exported %d CSV tables to %s", len(paths), dir)
	}
}
