package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	catalogmemory "github.com/autobatya/workshop-api/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/autobatya/workshop-api/internal/domains/catalog/application"
	catalogdomain "github.com/autobatya/workshop-api/internal/domains/catalog/domain"
	financememory "github.com/autobatya/workshop-api/internal/domains/finance/adapters/memory"
	financeapp "github.com/autobatya/workshop-api/internal/domains/finance/application"
	ledgermemory "github.com/autobatya/workshop-api/internal/domains/ledger/adapters/memory"
	ledgerapp "github.com/autobatya/workshop-api/internal/domains/ledger/application"
	reportingmemory "github.com/autobatya/workshop-api/internal/domains/reporting/adapters/memory"
	reportingapp "github.com/autobatya/workshop-api/internal/domains/reporting/application"
	workforcememory "github.com/autobatya/workshop-api/internal/domains/workforce/adapters/memory"
	workforceapp "github.com/autobatya/workshop-api/internal/domains/workforce/application"
	workforcedomain "github.com/autobatya/workshop-api/internal/domains/workforce/domain"
)

type apiFixture struct {
	router    *gin.Engine
	parts     *catalogmemory.PartRepository
	employees *workforcememory.EmployeeRepository
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	parts := catalogmemory.NewPartRepository()
	orders := ledgermemory.NewRepository(parts)
	services := catalogmemory.NewServiceRepository()
	employees := workforcememory.NewEmployeeRepository()
	payments := workforcememory.NewPaymentRepository()
	expenses := financememory.NewRepository()

	handlers := Handlers{
		OrderAPI:     NewOrderAPI(ledgerapp.NewService(orders)),
		CatalogAPI:   NewCatalogAPI(catalogapp.NewService(parts, services)),
		WorkforceAPI: NewWorkforceAPI(workforceapp.NewService(employees, payments)),
		ExpenseAPI:   NewExpenseAPI(financeapp.NewService(expenses)),
		ReportAPI: NewReportAPI(reportingapp.NewService(
			reportingmemory.NewReader(orders, parts, employees, payments, expenses),
		)),
	}

	return &apiFixture{
		router:    NewRouter(handlers),
		parts:     parts,
		employees: employees,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func (f *apiFixture) seedEmployee(t *testing.T) int64 {
	t.Helper()
	employee, err := f.employees.Create(context.Background(), &workforcedomain.Employee{Name: "Sidorov"})
	require.NoError(t, err)
	return employee.ID
}

func (f *apiFixture) seedPart(t *testing.T, quantity int) int64 {
	t.Helper()
	part, err := f.parts.Create(context.Background(), &catalogdomain.Part{
		Name:     "brake pads",
		Price:    decimal.NewFromInt(25),
		Quantity: quantity,
	})
	require.NoError(t, err)
	return part.ID
}

func (f *apiFixture) createOrder(t *testing.T, employeeID int64) int64 {
	t.Helper()
	res := f.do(t, http.MethodPost, "/orders/", gin.H{
		"client_name": "Ivanov",
		"car_model":   "Lada Vesta",
		"date":        "2025-03-01",
		"employee_id": employeeID,
	})
	require.Equal(t, http.StatusCreated, res.Code)
	var payload struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	require.NotZero(t, payload.ID)
	return payload.ID
}

func decodeBody(t *testing.T, res *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	return body
}

func TestCreateOrder_MissingClientNameIs400(t *testing.T) {
	f := newAPIFixture(t)

	res := f.do(t, http.MethodPost, "/orders/", gin.H{"employee_id": 1})
	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Contains(t, res.Header().Get("Content-Type"), "application/problem+json")
}

func TestCreateOrder_BadDateIs400(t *testing.T) {
	f := newAPIFixture(t)

	res := f.do(t, http.MethodPost, "/orders/", gin.H{
		"client_name": "Ivanov",
		"employee_id": 1,
		"date":        "01.03.2025",
	})
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestGetOrder_NotFoundProblem(t *testing.T) {
	f := newAPIFixture(t)

	res := f.do(t, http.MethodGet, "/orders/999", nil)
	require.Equal(t, http.StatusNotFound, res.Code)
	require.Contains(t, res.Header().Get("Content-Type"), "application/problem+json")

	body := decodeBody(t, res)
	require.Equal(t, "/problems/not-found", body["type"])
	require.EqualValues(t, http.StatusNotFound, body["status"])
	require.Equal(t, "/orders/999", body["instance"])
}

func TestLineItemFlow_TotalAndStockOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	employeeID := f.seedEmployee(t)
	partID := f.seedPart(t, 10)
	orderID := f.createOrder(t, employeeID)

	res := f.do(t, http.MethodPost, "/order_items/", gin.H{
		"order_id": orderID,
		"part_id":  partID,
		"quantity": 2,
		"price":    "50",
	})
	require.Equal(t, http.StatusCreated, res.Code)
	item := decodeBody(t, res)

	res = f.do(t, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	require.Equal(t, http.StatusOK, res.Code)
	order := decodeBody(t, res)
	require.Equal(t, "50", order["total_price"])

	res = f.do(t, http.MethodGet, fmt.Sprintf("/parts/%d", partID), nil)
	require.Equal(t, http.StatusOK, res.Code)
	part := decodeBody(t, res)
	require.EqualValues(t, 8, part["quantity"])

	res = f.do(t, http.MethodDelete, fmt.Sprintf("/order_items/%v", item["id"]), nil)
	require.Equal(t, http.StatusNoContent, res.Code)

	res = f.do(t, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	order = decodeBody(t, res)
	require.Equal(t, "0", order["total_price"])
}

func TestCalculateTotal_Endpoint(t *testing.T) {
	f := newAPIFixture(t)
	employeeID := f.seedEmployee(t)
	orderID := f.createOrder(t, employeeID)

	res := f.do(t, http.MethodPost, fmt.Sprintf("/orders/%d/calculate", orderID), nil)
	require.Equal(t, http.StatusOK, res.Code)
	body := decodeBody(t, res)
	require.EqualValues(t, orderID, body["order_id"])
	require.Equal(t, "0", body["total_price"])
}

func TestListLineItems_RequiresOrderID(t *testing.T) {
	f := newAPIFixture(t)

	res := f.do(t, http.MethodGet, "/order_items/", nil)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestCheckAvailability_Endpoint(t *testing.T) {
	f := newAPIFixture(t)
	partID := f.seedPart(t, 3)

	res := f.do(t, http.MethodGet, fmt.Sprintf("/parts/check/%d?quantity=3", partID), nil)
	require.Equal(t, http.StatusOK, res.Code)
	body := decodeBody(t, res)
	require.Equal(t, true, body["available"])

	res = f.do(t, http.MethodGet, fmt.Sprintf("/parts/check/%d?quantity=4", partID), nil)
	body = decodeBody(t, res)
	require.Equal(t, false, body["available"])
}

func TestListOrders_UnknownStatusIs400(t *testing.T) {
	f := newAPIFixture(t)

	res := f.do(t, http.MethodGet, "/orders/?status=done", nil)
	require.Equal(t, http.StatusBadRequest, res.Code)
	body := decodeBody(t, res)
	require.Equal(t, "/problems/validation-error", body["type"])
}

func TestFinancialSummary_Endpoint(t *testing.T) {
	f := newAPIFixture(t)
	employeeID := f.seedEmployee(t)
	orderID := f.createOrder(t, employeeID)

	res := f.do(t, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), gin.H{
		"client_name": "Ivanov",
		"employee_id": employeeID,
		"date":        "2025-03-01",
		"status":      "completed",
	})
	require.Equal(t, http.StatusOK, res.Code)

	res = f.do(t, http.MethodGet, "/stats/financial", nil)
	require.Equal(t, http.StatusOK, res.Code)
	body := decodeBody(t, res)
	require.Contains(t, body, "income")
	require.Contains(t, body, "profit")
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t)

	res := f.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, res.Code)
}
