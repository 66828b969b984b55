package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/autobatya/workshop-api/internal/domains/catalog/adapters/memory"
	"github.com/autobatya/workshop-api/internal/domains/catalog/domain"
	"github.com/autobatya/workshop-api/internal/domains/catalog/ports"
)

func newCatalogService() *Service {
	return NewService(memory.NewPartRepository(), memory.NewServiceRepository())
}

func TestCreatePart_ValidatesName(t *testing.T) {
	svc := newCatalogService()

	_, err := svc.CreatePart(context.Background(), &domain.Part{})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrMissingPartName)
}

func TestPartCRUD(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	created, err := svc.CreatePart(ctx, &domain.Part{Name: "brake pads", Price: decimal.NewFromInt(25), Quantity: 10, Supplier: "Bosch"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.Quantity = 8
	updated, err := svc.UpdatePart(ctx, created)
	require.NoError(t, err)
	require.Equal(t, 8, updated.Quantity)

	loaded, err := svc.GetPart(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "brake pads", loaded.Name)

	require.NoError(t, svc.DeletePart(ctx, created.ID))
	_, err = svc.GetPart(ctx, created.ID)
	require.ErrorIs(t, err, ports.ErrPartNotFound)
}

func TestServiceCRUD(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateService(ctx, &domain.Service{})
	require.ErrorIs(t, err, domain.ErrMissingServiceName)

	created, err := svc.CreateService(ctx, &domain.Service{Name: "oil change", Price: decimal.NewFromInt(40), DurationHours: 0.5})
	require.NoError(t, err)

	list, err := svc.ListServices(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteService(ctx, created.ID))
	err = svc.DeleteService(ctx, created.ID)
	require.ErrorIs(t, err, ports.ErrServiceNotFound)
}

func TestListParts_Pagination(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.CreatePart(ctx, &domain.Part{Name: name})
		require.NoError(t, err)
	}

	page, err := svc.ListParts(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "b", page[0].Name)
}
