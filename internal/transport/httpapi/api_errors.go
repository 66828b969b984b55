// Package httpapi exposes the workshop bounded contexts over gin.
package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/autobatya/workshop-api/internal/domains/catalog/application"
	catalogports "github.com/autobatya/workshop-api/internal/domains/catalog/ports"
	financeapp "github.com/autobatya/workshop-api/internal/domains/finance/application"
	financeports "github.com/autobatya/workshop-api/internal/domains/finance/ports"
	ledgerapp "github.com/autobatya/workshop-api/internal/domains/ledger/application"
	ledgerports "github.com/autobatya/workshop-api/internal/domains/ledger/ports"
	workforceapp "github.com/autobatya/workshop-api/internal/domains/workforce/application"
	workforceports "github.com/autobatya/workshop-api/internal/domains/workforce/ports"
	apierrors "github.com/autobatya/workshop-api/internal/shared/errors"
)

// dateLayout is the wire format for calendar dates across all endpoints.
const dateLayout = "2006-01-02"

const defaultPageSize = 100

var errMissingOrderID = errors.New("order_id query parameter is required")

var responder = apierrors.NewChainedResponder("", mapServiceError)

// mapServiceError translates application and ports errors into problems.
// Storage and constraint failures intentionally fall through to 500.
func mapServiceError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, ledgerports.ErrOrderNotFound),
		errors.Is(err, ledgerports.ErrLineItemNotFound),
		errors.Is(err, catalogports.ErrPartNotFound),
		errors.Is(err, catalogports.ErrServiceNotFound),
		errors.Is(err, workforceports.ErrEmployeeNotFound),
		errors.Is(err, workforceports.ErrPaymentNotFound),
		errors.Is(err, financeports.ErrExpenseNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, ledgerapp.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, workforceapp.ErrInvalidInput),
		errors.Is(err, financeapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func respondBadRequest(c *gin.Context, err error) {
	responder.BadRequest(c, err.Error())
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}
	return id, true
}

// parsePagination reads the skip/limit query parameters.
func parsePagination(c *gin.Context) (offset, limit int, ok bool) {
	offset, ok = parseIntQuery(c, "skip", 0)
	if !ok {
		return 0, 0, false
	}
	limit, ok = parseIntQuery(c, "limit", defaultPageSize)
	if !ok {
		return 0, 0, false
	}
	return offset, limit, true
}

func parseIntQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}
	return value, true
}

// parseDateQuery returns nil when the parameter is absent.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		respondBadRequest(c, err)
		return nil, false
	}
	return &date, true
}
