package application

import (
	"context"

	ledgerdomain "github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	"github.com/autobatya/workshop-api/internal/domains/reporting/domain"
	"github.com/autobatya/workshop-api/internal/domains/reporting/ports"
)

// DefaultLowStockThreshold applies when the caller gives no threshold.
const DefaultLowStockThreshold = 5

// Service fronts the reporting reader with defaults.
type Service struct {
	reader ports.Reader
}

func NewService(reader ports.Reader) *Service {
	return &Service{reader: reader}
}

func (s *Service) FinancialSummary(ctx context.Context, period domain.DateRange) (domain.FinancialSummary, error) {
	return s.reader.FinancialSummary(ctx, period)
}

func (s *Service) EmployeeSummary(ctx context.Context) (domain.EmployeeSummary, error) {
	return s.reader.EmployeeSummary(ctx)
}

func (s *Service) LowStock(ctx context.Context, minQuantity int) ([]domain.LowStockItem, error) {
	if minQuantity <= 0 {
		minQuantity = DefaultLowStockThreshold
	}
	return s.reader.LowStock(ctx, minQuantity)
}

// OrdersReport defaults to completed orders when no status is given.
func (s *Service) OrdersReport(ctx context.Context, status ledgerdomain.Status, period domain.DateRange) ([]domain.OrderReportRow, error) {
	if status == "" {
		status = ledgerdomain.StatusCompleted
	}
	return s.reader.OrdersReport(ctx, status, period)
}
