package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_DefaultsStatus(t *testing.T) {
	order, err := NewOrder(1, "Ivanov", "Toyota Corolla", "A123BC", time.Now(), decimal.Zero, "", 1)
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, order.Status)
}

func TestNewOrder_RejectsUnknownStatus(t *testing.T) {
	_, err := NewOrder(1, "Ivanov", "Toyota Corolla", "A123BC", time.Now(), decimal.Zero, "done", 1)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderValidate(t *testing.T) {
	order := &Order{Status: StatusInProgress, EmployeeID: 1}
	require.ErrorIs(t, order.Validate(), ErrMissingClientName)

	order.ClientName = "Ivanov"
	order.EmployeeID = 0
	require.ErrorIs(t, order.Validate(), ErrInvalidEmployeeID)

	order.EmployeeID = 1
	require.NoError(t, order.Validate())
}

func TestLineItemValidate(t *testing.T) {
	item := &LineItem{Quantity: 1, Price: decimal.NewFromInt(50)}
	require.ErrorIs(t, item.Validate(), ErrMissingOrderID)

	item.OrderID = 1
	require.NoError(t, item.Validate())

	bad := int64(0)
	item.ServiceID = &bad
	require.ErrorIs(t, item.Validate(), ErrInvalidServiceID)

	item.ServiceID = nil
	item.PartID = &bad
	require.ErrorIs(t, item.Validate(), ErrInvalidPartID)
}

func TestLineItemConsumesPart(t *testing.T) {
	item := &LineItem{OrderID: 1}
	require.False(t, item.ConsumesPart())

	partID := int64(7)
	item.PartID = &partID
	require.True(t, item.ConsumesPart())
}
