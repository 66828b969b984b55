package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	workforcedomain "github.com/autobatya/workshop-api/internal/domains/workforce/domain"
	workforceports "github.com/autobatya/workshop-api/internal/domains/workforce/ports"
)

// WorkforceAPI wires HTTP transport with the employee and payroll service.
type WorkforceAPI struct {
	service workforceports.Service
}

// NewWorkforceAPI creates a WorkforceAPI backed by the provided service.
func NewWorkforceAPI(service workforceports.Service) WorkforceAPI {
	return WorkforceAPI{service: service}
}

type employeePayload struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name" binding:"required"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
	HireDate string          `json:"hire_date"`
	Phone    string          `json:"phone"`
	Email    string          `json:"email"`
}

func (p employeePayload) toDomain() (*workforcedomain.Employee, error) {
	hireDate, err := parseOptionalDate(p.HireDate)
	if err != nil {
		return nil, err
	}
	return &workforcedomain.Employee{
		ID:       p.ID,
		Name:     p.Name,
		Position: p.Position,
		Salary:   p.Salary,
		HireDate: hireDate,
		Phone:    p.Phone,
		Email:    p.Email,
	}, nil
}

func fromDomainEmployee(employee *workforcedomain.Employee) employeePayload {
	if employee == nil {
		return employeePayload{}
	}
	return employeePayload{
		ID:       employee.ID,
		Name:     employee.Name,
		Position: employee.Position,
		Salary:   employee.Salary,
		HireDate: employee.HireDate.Format(dateLayout),
		Phone:    employee.Phone,
		Email:    employee.Email,
	}
}

type salaryPaymentPayload struct {
	ID         int64           `json:"id"`
	EmployeeID int64           `json:"employee_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Bonus      decimal.Decimal `json:"bonus"`
}

func (p salaryPaymentPayload) toDomain() (*workforcedomain.SalaryPayment, error) {
	date, err := parseOptionalDate(p.Date)
	if err != nil {
		return nil, err
	}
	return &workforcedomain.SalaryPayment{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Amount:     p.Amount,
		Date:       date,
		Bonus:      p.Bonus,
	}, nil
}

func fromDomainPayment(payment *workforcedomain.SalaryPayment) salaryPaymentPayload {
	if payment == nil {
		return salaryPaymentPayload{}
	}
	return salaryPaymentPayload{
		ID:         payment.ID,
		EmployeeID: payment.EmployeeID,
		Amount:     payment.Amount,
		Date:       payment.Date.Format(dateLayout),
		Bonus:      payment.Bonus,
	}
}

// parseOptionalDate defaults an absent date to today, UTC midnight.
func parseOptionalDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, value)
}

// Post /employees/
func (api *WorkforceAPI) CreateEmployee(c *gin.Context) {
	var payload employeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	employee, err := payload.toDomain()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreateEmployee(c.Request.Context(), employee)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainEmployee(created))
}

// Get /employees/
func (api *WorkforceAPI) ListEmployees(c *gin.Context) {
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	employees, err := api.service.ListEmployees(c.Request.Context(), offset, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]employeePayload, 0, len(employees))
	for _, employee := range employees {
		result = append(result, fromDomainEmployee(employee))
	}
	c.JSON(http.StatusOK, result)
}

// Get /employees/:id
func (api *WorkforceAPI) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	employee, err := api.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainEmployee(employee))
}

// Put /employees/:id
func (api *WorkforceAPI) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload employeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	payload.ID = id
	employee, err := payload.toDomain()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := api.service.UpdateEmployee(c.Request.Context(), employee)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainEmployee(updated))
}

// Delete /employees/:id
func (api *WorkforceAPI) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /salary_payments/
func (api *WorkforceAPI) CreatePayment(c *gin.Context) {
	var payload salaryPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	payment, err := payload.toDomain()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreatePayment(c.Request.Context(), payment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainPayment(created))
}

// Get /salary_payments/
func (api *WorkforceAPI) ListPayments(c *gin.Context) {
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	filter := workforceports.ListPaymentsFilter{Offset: offset, Limit: limit}
	employeeID, ok := parseIntQuery(c, "employee_id", 0)
	if !ok {
		return
	}
	if employeeID > 0 {
		id := int64(employeeID)
		filter.EmployeeID = &id
	}
	payments, err := api.service.ListPayments(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]salaryPaymentPayload, 0, len(payments))
	for _, payment := range payments {
		result = append(result, fromDomainPayment(payment))
	}
	c.JSON(http.StatusOK, result)
}

// Get /salary_payments/:id
func (api *WorkforceAPI) GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	payment, err := api.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainPayment(payment))
}

// Put /salary_payments/:id
func (api *WorkforceAPI) UpdatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload salaryPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	payload.ID = id
	payment, err := payload.toDomain()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := api.service.UpdatePayment(c.Request.Context(), payment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainPayment(updated))
}

// Delete /salary_payments/:id
func (api *WorkforceAPI) DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeletePayment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
