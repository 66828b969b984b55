package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	catalogmemory "github.com/autobatya/workshop-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/autobatya/workshop-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/autobatya/workshop-api/internal/domains/catalog/application"
	catalogports "github.com/autobatya/workshop-api/internal/domains/catalog/ports"

	financememory "github.com/autobatya/workshop-api/internal/domains/finance/adapters/memory"
	financepostgres "github.com/autobatya/workshop-api/internal/domains/finance/adapters/persistence/postgres"
	financeapp "github.com/autobatya/workshop-api/internal/domains/finance/application"
	financeports "github.com/autobatya/workshop-api/internal/domains/finance/ports"

	ledgermemory "github.com/autobatya/workshop-api/internal/domains/ledger/adapters/memory"
	ledgerobs "github.com/autobatya/workshop-api/internal/domains/ledger/adapters/observability"
	ledgerpostgres "github.com/autobatya/workshop-api/internal/domains/ledger/adapters/persistence/postgres"
	ledgerapp "github.com/autobatya/workshop-api/internal/domains/ledger/application"
	ledgerports "github.com/autobatya/workshop-api/internal/domains/ledger/ports"

	reportingmemory "github.com/autobatya/workshop-api/internal/domains/reporting/adapters/memory"
	reportingpostgres "github.com/autobatya/workshop-api/internal/domains/reporting/adapters/persistence/postgres"
	reportingapp "github.com/autobatya/workshop-api/internal/domains/reporting/application"
	reportingports "github.com/autobatya/workshop-api/internal/domains/reporting/ports"

	workforcememory "github.com/autobatya/workshop-api/internal/domains/workforce/adapters/memory"
	workforcepostgres "github.com/autobatya/workshop-api/internal/domains/workforce/adapters/persistence/postgres"
	workforceapp "github.com/autobatya/workshop-api/internal/domains/workforce/application"
	workforceports "github.com/autobatya/workshop-api/internal/domains/workforce/ports"

	"github.com/autobatya/workshop-api/internal/platform/migrations"
	platformobservability "github.com/autobatya/workshop-api/internal/platform/observability"
	platformpostgres "github.com/autobatya/workshop-api/internal/platform/postgres"
	"github.com/autobatya/workshop-api/internal/shared/middleware"
	"github.com/autobatya/workshop-api/internal/transport/httpapi"
)

const serviceName = "workshop-api"

// repositories groups the per-context persistence ports behind one wiring seam.
type repositories struct {
	ledger    ledgerports.Repository
	parts     catalogports.PartRepository
	services  catalogports.ServiceRepository
	employees workforceports.EmployeeRepository
	payments  workforceports.PaymentRepository
	expenses  financeports.Repository
	reports   reportingports.Reader
}

// Run boots the workshop HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger
	cfg := LoadConfig()

	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	repos := buildRepositories(db)

	ledgerService := ledgerobs.New(
		ledgerapp.NewService(repos.ledger),
		ledgerobs.WithLogger(logger),
		ledgerobs.WithTracer(instruments.Tracer("internal.ledger.application")),
		ledgerobs.WithMeter(instruments.Meter("internal.ledger.application")),
	)
	catalogService := catalogapp.NewService(repos.parts, repos.services)
	workforceService := workforceapp.NewService(repos.employees, repos.payments)
	financeService := financeapp.NewService(repos.expenses)
	reportingService := reportingapp.NewService(repos.reports)

	handlers := httpapi.Handlers{
		OrderAPI:     httpapi.NewOrderAPI(ledgerService),
		CatalogAPI:   httpapi.NewCatalogAPI(catalogService),
		WorkforceAPI: httpapi.NewWorkforceAPI(workforceService),
		ExpenseAPI:   httpapi.NewExpenseAPI(financeService),
		ReportAPI:    httpapi.NewReportAPI(reportingService),
	}

	router := httpapi.NewRouter(handlers,
		otelgin.Middleware(serviceName),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
	)
	addr := ":" + cfg.Port
	logger.Info("workshop API listening", slog.String("addr", addr), slog.String("environment", cfg.Environment))
	if err := router.Run(addr); err != nil {
		logger.Error("workshop API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildRepositories selects Postgres-backed adapters when a connection is
// available and falls back to the in-memory set otherwise. In the memory
// wiring the catalog part repository doubles as the ledger's stock store so
// both contexts see the same quantities.
func buildRepositories(db *gorm.DB) repositories {
	if db != nil {
		return repositories{
			ledger:    ledgerpostgres.NewRepository(db),
			parts:     catalogpostgres.NewPartRepository(db),
			services:  catalogpostgres.NewServiceRepository(db),
			employees: workforcepostgres.NewEmployeeRepository(db),
			payments:  workforcepostgres.NewPaymentRepository(db),
			expenses:  financepostgres.NewRepository(db),
			reports:   reportingpostgres.NewReader(db),
		}
	}
	parts := catalogmemory.NewPartRepository()
	ledger := ledgermemory.NewRepository(parts)
	employees := workforcememory.NewEmployeeRepository()
	payments := workforcememory.NewPaymentRepository()
	expenses := financememory.NewRepository()
	return repositories{
		ledger:    ledger,
		parts:     parts,
		services:  catalogmemory.NewServiceRepository(),
		employees: employees,
		payments:  payments,
		expenses:  expenses,
		reports:   reportingmemory.NewReader(ledger, parts, employees, payments, expenses),
	}
}
