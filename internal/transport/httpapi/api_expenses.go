package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	financedomain "github.com/autobatya/workshop-api/internal/domains/finance/domain"
	financeports "github.com/autobatya/workshop-api/internal/domains/finance/ports"
)

// ExpenseAPI wires HTTP transport with the expense tracking service.
type ExpenseAPI struct {
	service financeports.Service
}

// NewExpenseAPI creates an ExpenseAPI backed by the provided service.
func NewExpenseAPI(service financeports.Service) ExpenseAPI {
	return ExpenseAPI{service: service}
}

type expensePayload struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Category string          `json:"category" binding:"required"`
}

func (p expensePayload) toDomain() (*financedomain.Expense, error) {
	date, err := parseOptionalDate(p.Date)
	if err != nil {
		return nil, err
	}
	return &financedomain.Expense{
		ID:       p.ID,
		Name:     p.Name,
		Amount:   p.Amount,
		Date:     date,
		Category: financedomain.Category(p.Category),
	}, nil
}

func fromDomainExpense(expense *financedomain.Expense) expensePayload {
	if expense == nil {
		return expensePayload{}
	}
	return expensePayload{
		ID:       expense.ID,
		Name:     expense.Name,
		Amount:   expense.Amount,
		Date:     expense.Date.Format(dateLayout),
		Category: string(expense.Category),
	}
}

// Post /expenses/
func (api *ExpenseAPI) CreateExpense(c *gin.Context) {
	var payload expensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	expense, err := payload.toDomain()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreateExpense(c.Request.Context(), expense)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainExpense(created))
}

// Get /expenses/
func (api *ExpenseAPI) ListExpenses(c *gin.Context) {
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	filter := financeports.ListExpensesFilter{Offset: offset, Limit: limit}
	if raw := c.Query("category"); raw != "" {
		category := financedomain.Category(raw)
		filter.Category = &category
	}
	expenses, err := api.service.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]expensePayload, 0, len(expenses))
	for _, expense := range expenses {
		result = append(result, fromDomainExpense(expense))
	}
	c.JSON(http.StatusOK, result)
}

// Get /expenses/:id
func (api *ExpenseAPI) GetExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	expense, err := api.service.GetExpense(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainExpense(expense))
}

// Put /expenses/:id
func (api *ExpenseAPI) UpdateExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload expensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	payload.ID = id
	expense, err := payload.toDomain()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := api.service.UpdateExpense(c.Request.Context(), expense)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainExpense(updated))
}

// Delete /expenses/:id
func (api *ExpenseAPI) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteExpense(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
