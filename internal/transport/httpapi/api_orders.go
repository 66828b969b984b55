package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ledgermapper "github.com/autobatya/workshop-api/internal/domains/ledger/adapters/http/mapper"
	ledgerdomain "github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	ledgerports "github.com/autobatya/workshop-api/internal/domains/ledger/ports"
)

// OrderAPI wires HTTP transport with the order ledger service.
type OrderAPI struct {
	service ledgerports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ledgerports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Post /orders/
// Create a repair order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload ledgermapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	order, err := ledgermapper.ToDomainOrder(payload)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreateOrder(c.Request.Context(), order)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ledgermapper.FromDomainOrder(created))
}

// Get /orders/
// List orders, optionally filtered by status
func (api *OrderAPI) ListOrders(c *gin.Context) {
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	filter := ledgerports.ListOrdersFilter{Offset: offset, Limit: limit}
	if raw := c.Query("status"); raw != "" {
		status := ledgerdomain.Status(raw)
		filter.Status = &status
	}
	orders, err := api.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]ledgermapper.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, ledgermapper.FromDomainOrder(order))
	}
	c.JSON(http.StatusOK, result)
}

// Get /orders/:id
// Find order by ID
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := api.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledgermapper.FromDomainOrder(order))
}

// Put /orders/:id
// Update an existing order; total_price stays ledger-owned
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload ledgermapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	payload.ID = id
	order, err := ledgermapper.ToDomainOrder(payload)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := api.service.UpdateOrder(c.Request.Context(), order)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledgermapper.FromDomainOrder(updated))
}

// Delete /orders/:id
// Delete an order; line items are not cascaded
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteOrder(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /orders/:id/calculate
// Recompute and persist the order total from its line items
func (api *OrderAPI) CalculateTotal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	total, err := api.service.RecalculateTotal(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": id, "total_price": total})
}

// Get /parts/check/:id
// Advisory stock availability check
func (api *OrderAPI) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	quantity, ok := parseIntQuery(c, "quantity", 1)
	if !ok {
		return
	}
	available, err := api.service.CheckAvailability(c.Request.Context(), id, quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"part_id": id, "quantity": quantity, "available": available})
}

// Post /order_items/
// Add a line item; recalculates the order total and decrements part stock
func (api *OrderAPI) CreateLineItem(c *gin.Context) {
	var payload ledgermapper.LineItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreateLineItem(c.Request.Context(), ledgermapper.ToDomainLineItem(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ledgermapper.FromDomainLineItem(created))
}

// Get /order_items/
// List line items for an order
func (api *OrderAPI) ListLineItems(c *gin.Context) {
	orderID, ok := parseIntQuery(c, "order_id", 0)
	if !ok {
		return
	}
	if orderID <= 0 {
		respondBadRequest(c, errMissingOrderID)
		return
	}
	items, err := api.service.ListLineItems(c.Request.Context(), int64(orderID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]ledgermapper.LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, ledgermapper.FromDomainLineItem(item))
	}
	c.JSON(http.StatusOK, result)
}

// Get /order_items/:id
// Find a line item by ID
func (api *OrderAPI) GetLineItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := api.service.GetLineItem(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledgermapper.FromDomainLineItem(item))
}

// Put /order_items/:id
// Update a line item; restores the old stock effect before applying the new one
func (api *OrderAPI) UpdateLineItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload ledgermapper.LineItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	payload.ID = id
	updated, err := api.service.UpdateLineItem(c.Request.Context(), ledgermapper.ToDomainLineItem(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledgermapper.FromDomainLineItem(updated))
}

// Delete /order_items/:id
// Delete a line item; recalculates the total and restores part stock
func (api *OrderAPI) DeleteLineItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteLineItem(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
