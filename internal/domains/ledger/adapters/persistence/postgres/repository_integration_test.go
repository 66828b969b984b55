//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	catalogpostgres "github.com/autobatya/workshop-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogdomain "github.com/autobatya/workshop-api/internal/domains/catalog/domain"
	"github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	"github.com/autobatya/workshop-api/internal/domains/ledger/ports"
	workforcepostgres "github.com/autobatya/workshop-api/internal/domains/workforce/adapters/persistence/postgres"
	workforcedomain "github.com/autobatya/workshop-api/internal/domains/workforce/domain"
	"github.com/autobatya/workshop-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("workshop_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

// ledgerFixture seeds the rows an order needs: an employee for the order
// foreign key and a couple of stocked parts.
type ledgerFixture struct {
	t        *testing.T
	db       *gorm.DB
	repo     *Repository
	employee *workforcedomain.Employee
}

func newLedgerFixture(t *testing.T, db *gorm.DB) *ledgerFixture {
	employees := workforcepostgres.NewEmployeeRepository(db)
	employee, err := employees.Create(context.Background(), &workforcedomain.Employee{
		Name:     "Sidorov",
		Position: "mechanic",
		Salary:   decimal.NewFromInt(1800),
		HireDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return &ledgerFixture{
		t:        t,
		db:       db,
		repo:     NewRepository(db),
		employee: employee,
	}
}

func (f *ledgerFixture) addPart(name string, quantity int) int64 {
	f.t.Helper()
	parts := catalogpostgres.NewPartRepository(f.db)
	part, err := parts.Create(context.Background(), &catalogdomain.Part{
		Name:     name,
		Price:    decimal.NewFromInt(25),
		Quantity: quantity,
	})
	require.NoError(f.t, err)
	return part.ID
}

func (f *ledgerFixture) addOrder(client string) *domain.Order {
	f.t.Helper()
	order, err := f.repo.CreateOrder(context.Background(), &domain.Order{
		ClientName: client,
		CarModel:   "Lada Vesta",
		Date:       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusInProgress,
		EmployeeID: f.employee.ID,
	})
	require.NoError(f.t, err)
	return order
}

func (f *ledgerFixture) total(orderID int64) decimal.Decimal {
	f.t.Helper()
	order, err := f.repo.GetOrder(context.Background(), orderID)
	require.NoError(f.t, err)
	return order.TotalPrice
}

func (f *ledgerFixture) stock(partID int64) int {
	f.t.Helper()
	quantity, found, err := f.repo.PartQuantity(context.Background(), partID)
	require.NoError(f.t, err)
	require.True(f.t, found)
	return quantity
}

func TestPostgresRepository_OrderRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newLedgerFixture(t, db)
	ctx := context.Background()

	order := f.addOrder("Ivanov")
	assert.NotZero(t, order.ID)
	assert.True(t, order.TotalPrice.IsZero())

	order.Status = domain.StatusCompleted
	order.CarNumber = "A123BC"
	updated, err := f.repo.UpdateOrder(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, "A123BC", updated.CarNumber)

	completed := domain.StatusCompleted
	list, err := f.repo.ListOrders(ctx, ports.ListOrdersFilter{Status: &completed})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, f.repo.DeleteOrder(ctx, order.ID))
	_, err = f.repo.GetOrder(ctx, order.ID)
	assert.ErrorIs(t, err, ports.ErrOrderNotFound)

	err = f.repo.DeleteOrder(ctx, order.ID)
	assert.ErrorIs(t, err, ports.ErrOrderNotFound)
}

func TestPostgresRepository_LineItemAdjustsTotalAndStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newLedgerFixture(t, db)
	ctx := context.Background()

	order := f.addOrder("Ivanov")
	partID := f.addPart("brake pads", 10)

	item, err := f.repo.CreateLineItem(ctx, &domain.LineItem{
		OrderID:  order.ID,
		PartID:   &partID,
		Quantity: 2,
		Price:    decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.True(t, f.total(order.ID).Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 8, f.stock(partID))

	require.NoError(t, f.repo.DeleteLineItem(ctx, item.ID))
	assert.True(t, f.total(order.ID).IsZero())
	assert.Equal(t, 10, f.stock(partID))
}

func TestPostgresRepository_TotalIsSumOfLinePrices(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newLedgerFixture(t, db)
	ctx := context.Background()

	order := f.addOrder("Ivanov")
	partID := f.addPart("oil filter", 20)

	// Quantity never multiplies into the total: 100 + 40, not 3*100 + 2*40.
	_, err := f.repo.CreateLineItem(ctx, &domain.LineItem{
		OrderID: order.ID, PartID: &partID, Quantity: 3, Price: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	_, err = f.repo.CreateLineItem(ctx, &domain.LineItem{
		OrderID: order.ID, PartID: &partID, Quantity: 2, Price: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	assert.True(t, f.total(order.ID).Equal(decimal.NewFromInt(140)))
	assert.Equal(t, 15, f.stock(partID))
}

func TestPostgresRepository_UpdateLineItemSwapsParts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newLedgerFixture(t, db)
	ctx := context.Background()

	order := f.addOrder("Ivanov")
	oldPart := f.addPart("pads front", 10)
	newPart := f.addPart("pads rear", 10)

	item, err := f.repo.CreateLineItem(ctx, &domain.LineItem{
		OrderID: order.ID, PartID: &oldPart, Quantity: 3, Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	require.Equal(t, 7, f.stock(oldPart))

	item.PartID = &newPart
	item.Quantity = 5
	item.Price = decimal.NewFromInt(45)
	_, err = f.repo.UpdateLineItem(ctx, item)
	require.NoError(t, err)

	assert.Equal(t, 10, f.stock(oldPart))
	assert.Equal(t, 5, f.stock(newPart))
	assert.True(t, f.total(order.ID).Equal(decimal.NewFromInt(45)))
}

func TestPostgresRepository_MovingLineItemRecalculatesBothOrders(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newLedgerFixture(t, db)
	ctx := context.Background()

	first := f.addOrder("Ivanov")
	second := f.addOrder("Petrov")

	item, err := f.repo.CreateLineItem(ctx, &domain.LineItem{
		OrderID: first.ID, Quantity: 1, Price: decimal.NewFromInt(75),
	})
	require.NoError(t, err)
	require.True(t, f.total(first.ID).Equal(decimal.NewFromInt(75)))

	item.OrderID = second.ID
	_, err = f.repo.UpdateLineItem(ctx, item)
	require.NoError(t, err)

	assert.True(t, f.total(first.ID).IsZero())
	assert.True(t, f.total(second.ID).Equal(decimal.NewFromInt(75)))
}

func TestPostgresRepository_StockMayGoNegative(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newLedgerFixture(t, db)
	ctx := context.Background()

	order := f.addOrder("Ivanov")
	partID := f.addPart("spark plugs", 1)

	_, err := f.repo.CreateLineItem(ctx, &domain.LineItem{
		OrderID: order.ID, PartID: &partID, Quantity: 5, Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.Equal(t, -4, f.stock(partID))
}

func TestPostgresRepository_ForeignKeysHold(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newLedgerFixture(t, db)
	ctx := context.Background()

	// Order pointing at a missing employee must not insert.
	_, err := f.repo.CreateOrder(ctx, &domain.Order{
		ClientName: "Ghost",
		Date:       time.Now(),
		Status:     domain.StatusInProgress,
		EmployeeID: 9999,
	})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	// A failed line-item insert leaves no trace: the order keeps a zero
	// total because the transaction rolled back as a whole.
	order := f.addOrder("Ivanov")
	missingPart := int64(9999)
	_, err = f.repo.CreateLineItem(ctx, &domain.LineItem{
		OrderID: order.ID, PartID: &missingPart, Quantity: 1, Price: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	items, err := f.repo.ListLineItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.True(t, f.total(order.ID).IsZero())
}

func TestPostgresRepository_RecalculateTotalIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newLedgerFixture(t, db)
	ctx := context.Background()

	order := f.addOrder("Ivanov")
	_, err := f.repo.CreateLineItem(ctx, &domain.LineItem{
		OrderID: order.ID, Quantity: 1, Price: decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		total, err := f.repo.RecalculateTotal(ctx, order.ID)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(60)))
	}
}
