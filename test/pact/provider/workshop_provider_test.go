//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/autobatya/workshop-api/test/pact"

	catalogmemory "github.com/autobatya/workshop-api/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/autobatya/workshop-api/internal/domains/catalog/application"
	catalogdomain "github.com/autobatya/workshop-api/internal/domains/catalog/domain"
	financememory "github.com/autobatya/workshop-api/internal/domains/finance/adapters/memory"
	financeapp "github.com/autobatya/workshop-api/internal/domains/finance/application"
	ledgermemory "github.com/autobatya/workshop-api/internal/domains/ledger/adapters/memory"
	ledgerobs "github.com/autobatya/workshop-api/internal/domains/ledger/adapters/observability"
	ledgerapp "github.com/autobatya/workshop-api/internal/domains/ledger/application"
	ledgerdomain "github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	ledgerports "github.com/autobatya/workshop-api/internal/domains/ledger/ports"
	reportingmemory "github.com/autobatya/workshop-api/internal/domains/reporting/adapters/memory"
	reportingapp "github.com/autobatya/workshop-api/internal/domains/reporting/application"
	workforcememory "github.com/autobatya/workshop-api/internal/domains/workforce/adapters/memory"
	workforceapp "github.com/autobatya/workshop-api/internal/domains/workforce/application"
	workforcedomain "github.com/autobatya/workshop-api/internal/domains/workforce/domain"
	"github.com/autobatya/workshop-api/internal/transport/httpapi"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestWorkshopProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateOrdersBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders(t)
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders(t)
			if setup {
				app.seedOrder(t, pacttest.ExistingOrderID)
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders(t)
			return nil, nil
		},
		pacttest.StatePartStocked: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.seedPart(t, pacttest.StockedPartID, 10)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.resetOrders(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	orders *ledgermemory.Repository
	parts  *catalogmemory.PartRepository
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	parts := catalogmemory.NewPartRepository()
	orders := ledgermemory.NewRepository(parts)
	services := catalogmemory.NewServiceRepository()
	employees := workforcememory.NewEmployeeRepository()
	payments := workforcememory.NewPaymentRepository()
	expenses := financememory.NewRepository()

	// The seed employee backs every contract order's employee_id.
	_, err := employees.Create(context.Background(), &workforcedomain.Employee{
		ID:   pacttest.SeedEmployeeID,
		Name: "Pact Mechanic",
	})
	require.NoError(t, err)

	ledgerService := ledgerobs.New(ledgerapp.NewService(orders))
	reportingService := reportingapp.NewService(
		reportingmemory.NewReader(orders, parts, employees, payments, expenses),
	)

	handlers := httpapi.Handlers{
		OrderAPI:     httpapi.NewOrderAPI(ledgerService),
		CatalogAPI:   httpapi.NewCatalogAPI(catalogapp.NewService(parts, services)),
		WorkforceAPI: httpapi.NewWorkforceAPI(workforceapp.NewService(employees, payments)),
		ExpenseAPI:   httpapi.NewExpenseAPI(financeapp.NewService(expenses)),
		ReportAPI:    httpapi.NewReportAPI(reportingService),
	}

	server := httptest.NewServer(httpapi.NewRouter(handlers))
	t.Cleanup(server.Close)

	return &contractProviderApp{
		orders: orders,
		parts:  parts,
		server: server,
	}
}

func (a *contractProviderApp) resetOrders(t testing.TB) {
	t.Helper()
	orders, err := a.orders.ListOrders(context.Background(), ledgerports.ListOrdersFilter{})
	require.NoError(t, err)
	for _, order := range orders {
		_ = a.orders.DeleteOrder(context.Background(), order.ID)
	}
}

func (a *contractProviderApp) seedOrder(t testing.TB, id int64) {
	t.Helper()
	_, err := a.orders.CreateOrder(context.Background(), &ledgerdomain.Order{
		ID:         id,
		ClientName: "Pact Ivanov",
		CarModel:   "Lada Vesta",
		Date:       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:     ledgerdomain.StatusInProgress,
		EmployeeID: pacttest.SeedEmployeeID,
	})
	require.NoError(t, err)
}

func (a *contractProviderApp) seedPart(t testing.TB, id int64, quantity int) {
	t.Helper()
	_, err := a.parts.Create(context.Background(), &catalogdomain.Part{
		ID:       id,
		Name:     "pact brake pads",
		Quantity: quantity,
	})
	require.NoError(t, err)
}
