package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the per-context APIs the router dispatches to.
type Handlers struct {
	OrderAPI     OrderAPI
	CatalogAPI   CatalogAPI
	WorkforceAPI WorkforceAPI
	ExpenseAPI   ExpenseAPI
	ReportAPI    ReportAPI
}

// Route binds an HTTP method and path to a handler.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// NewRouter builds a gin engine with all API routes registered.
// Middleware is attached by the caller before serving.
func NewRouter(handlers Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)
	for _, route := range routes(handlers) {
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func routes(h Handlers) []Route {
	return []Route{
		{http.MethodPost, "/employees/", h.WorkforceAPI.CreateEmployee},
		{http.MethodGet, "/employees/", h.WorkforceAPI.ListEmployees},
		{http.MethodGet, "/employees/:id", h.WorkforceAPI.GetEmployee},
		{http.MethodPut, "/employees/:id", h.WorkforceAPI.UpdateEmployee},
		{http.MethodDelete, "/employees/:id", h.WorkforceAPI.DeleteEmployee},

		{http.MethodPost, "/parts/", h.CatalogAPI.CreatePart},
		{http.MethodGet, "/parts/", h.CatalogAPI.ListParts},
		{http.MethodGet, "/parts/check/:id", h.OrderAPI.CheckAvailability},
		{http.MethodGet, "/parts/:id", h.CatalogAPI.GetPart},
		{http.MethodPut, "/parts/:id", h.CatalogAPI.UpdatePart},
		{http.MethodDelete, "/parts/:id", h.CatalogAPI.DeletePart},

		{http.MethodPost, "/services/", h.CatalogAPI.CreateService},
		{http.MethodGet, "/services/", h.CatalogAPI.ListServices},
		{http.MethodGet, "/services/:id", h.CatalogAPI.GetService},
		{http.MethodPut, "/services/:id", h.CatalogAPI.UpdateService},
		{http.MethodDelete, "/services/:id", h.CatalogAPI.DeleteService},

		{http.MethodPost, "/orders/", h.OrderAPI.CreateOrder},
		{http.MethodGet, "/orders/", h.OrderAPI.ListOrders},
		{http.MethodGet, "/orders/:id", h.OrderAPI.GetOrder},
		{http.MethodPut, "/orders/:id", h.OrderAPI.UpdateOrder},
		{http.MethodDelete, "/orders/:id", h.OrderAPI.DeleteOrder},
		{http.MethodPost, "/orders/:id/calculate", h.OrderAPI.CalculateTotal},

		{http.MethodPost, "/order_items/", h.OrderAPI.CreateLineItem},
		{http.MethodGet, "/order_items/", h.OrderAPI.ListLineItems},
		{http.MethodGet, "/order_items/:id", h.OrderAPI.GetLineItem},
		{http.MethodPut, "/order_items/:id", h.OrderAPI.UpdateLineItem},
		{http.MethodDelete, "/order_items/:id", h.OrderAPI.DeleteLineItem},

		{http.MethodPost, "/salary_payments/", h.WorkforceAPI.CreatePayment},
		{http.MethodGet, "/salary_payments/", h.WorkforceAPI.ListPayments},
		{http.MethodGet, "/salary_payments/:id", h.WorkforceAPI.GetPayment},
		{http.MethodPut, "/salary_payments/:id", h.WorkforceAPI.UpdatePayment},
		{http.MethodDelete, "/salary_payments/:id", h.WorkforceAPI.DeletePayment},

		{http.MethodPost, "/expenses/", h.ExpenseAPI.CreateExpense},
		{http.MethodGet, "/expenses/", h.ExpenseAPI.ListExpenses},
		{http.MethodGet, "/expenses/:id", h.ExpenseAPI.GetExpense},
		{http.MethodPut, "/expenses/:id", h.ExpenseAPI.UpdateExpense},
		{http.MethodDelete, "/expenses/:id", h.ExpenseAPI.DeleteExpense},

		{http.MethodGet, "/stats/financial", h.ReportAPI.FinancialSummary},
		{http.MethodGet, "/stats/employees", h.ReportAPI.EmployeeSummary},
		{http.MethodGet, "/reports/parts", h.ReportAPI.LowStock},
		{http.MethodGet, "/reports/orders", h.ReportAPI.OrdersReport},
	}
}
