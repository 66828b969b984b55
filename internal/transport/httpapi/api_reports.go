package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ledgerdomain "github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	reportingapp "github.com/autobatya/workshop-api/internal/domains/reporting/application"
	reportingdomain "github.com/autobatya/workshop-api/internal/domains/reporting/domain"
)

// ReportAPI wires HTTP transport with the reporting queries.
type ReportAPI struct {
	service *reportingapp.Service
}

// NewReportAPI creates a ReportAPI backed by the provided service.
func NewReportAPI(service *reportingapp.Service) ReportAPI {
	return ReportAPI{service: service}
}

// Get /stats/financial
// Income, expenses, salaries, and profit over an optional date range
func (api *ReportAPI) FinancialSummary(c *gin.Context) {
	period, ok := parseDateRange(c)
	if !ok {
		return
	}
	summary, err := api.service.FinancialSummary(c.Request.Context(), period)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"income":   summary.Income,
		"expenses": summary.Expenses,
		"salaries": summary.Salaries,
		"profit":   summary.Profit,
	})
}

// Get /stats/employees
// Headcount and average salary
func (api *ReportAPI) EmployeeSummary(c *gin.Context) {
	summary, err := api.service.EmployeeSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"employee_count": summary.Count,
		"average_salary": summary.AverageSalary,
	})
}

// Get /reports/parts
// Parts whose stock fell under min_quantity, ascending
func (api *ReportAPI) LowStock(c *gin.Context) {
	minQuantity, ok := parseIntQuery(c, "min_quantity", 0)
	if !ok {
		return
	}
	items, err := api.service.LowStock(c.Request.Context(), minQuantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]gin.H, 0, len(items))
	for _, item := range items {
		result = append(result, gin.H{
			"name":     item.Name,
			"quantity": item.Quantity,
			"price":    item.Price,
		})
	}
	c.JSON(http.StatusOK, result)
}

// Get /reports/orders
// Orders by status with the responsible employee, newest first
func (api *ReportAPI) OrdersReport(c *gin.Context) {
	period, ok := parseDateRange(c)
	if !ok {
		return
	}
	status := ledgerdomain.Status(c.Query("status"))
	rows, err := api.service.OrdersReport(c.Request.Context(), status, period)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		result = append(result, gin.H{
			"id":          row.ID,
			"client_name": row.ClientName,
			"total_price": row.TotalPrice,
			"employee":    row.EmployeeName,
		})
	}
	c.JSON(http.StatusOK, result)
}

func parseDateRange(c *gin.Context) (reportingdomain.DateRange, bool) {
	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return reportingdomain.DateRange{}, false
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return reportingdomain.DateRange{}, false
	}
	return reportingdomain.DateRange{Start: start, End: end}, true
}
