package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/src/sales/application/request"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
)

func validUpdateRequest() *request.UpdateSaleRequest {
	return &request.UpdateSaleRequest{
		CustomerID: "CUST-002",
		BranchID:   "BR-002",
	}
}

func TestUpdateSale_NotFound(t *testing.T) {
	repo := newFakeSaleRepo()
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewUpdateSaleUseCase(repo, publisher, cache)

	resp := uc.Execute(context.Background(), uuid.New(), validUpdateRequest())

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, entity.ErrSaleNotFound.Error())
	assert.Equal(t, 0, repo.updateCalls)
	assert.Empty(t, publisher.published)
}

func TestUpdateSale_ValidationErrors(t *testing.T) {
	repo := newFakeSaleRepo()
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewUpdateSaleUseCase(repo, publisher, cache)

	resp := uc.Execute(context.Background(), uuid.New(), &request.UpdateSaleRequest{})

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, entity.ErrCustomerRequired.Error())
	assert.Contains(t, resp.Errors, entity.ErrBranchRequired.Error())

	// Con errores de validación ni siquiera se consulta el repositorio
	assert.Equal(t, 0, repo.findCalls)
}

func TestUpdateSale_ReplacesItemsAndInvalidatesCache(t *testing.T) {
	repo := newFakeSaleRepo()
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewUpdateSaleUseCase(repo, publisher, cache)

	sale := seedSale(t, repo, 5)

	req := validUpdateRequest()
	req.Items = []request.UpdateSaleItemRequest{
		{Product: "Agua Mineral", Quantity: 10, UnitPrice: decimal.NewFromInt(50)},
	}

	resp := uc.Execute(context.Background(), sale.ID, req)

	require.True(t, resp.Success)
	assert.Equal(t, 1, repo.updateCalls)

	updated := repo.sales[sale.ID]
	assert.Equal(t, "CUST-002", updated.CustomerID)
	assert.Equal(t, "BR-002", updated.BranchID)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Agua Mineral", updated.Items[0].Product)

	// 10 unidades al 20%: total 400, descuentos rederivados
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(400)))
	assert.True(t, updated.Items[0].Discount.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, []string{event.TypeSaleModified}, publisher.eventTypes())
	assert.Contains(t, cache.removed, "Sale:"+sale.ID.String())
	assert.Empty(t, updated.Events())
}

func TestUpdateSale_WithoutItemsKeepsExisting(t *testing.T) {
	repo := newFakeSaleRepo()
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewUpdateSaleUseCase(repo, publisher, cache)

	sale := seedSale(t, repo, 5)

	resp := uc.Execute(context.Background(), sale.ID, validUpdateRequest())

	require.True(t, resp.Success)
	updated := repo.sales[sale.ID]
	require.Len(t, updated.Items, 1)

	// Los items existentes conservan sus descuentos ya calculados
	assert.True(t, updated.Items[0].Discount.Equal(decimal.NewFromInt(50)))
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(450)))
}

func TestUpdateSale_CancellationEventOrder(t *testing.T) {
	repo := newFakeSaleRepo()
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewUpdateSaleUseCase(repo, publisher, cache)

	sale := seedSale(t, repo, 5)

	req := validUpdateRequest()
	req.IsCancelled = true
	req.Items = []request.UpdateSaleItemRequest{
		{Product: "Cerveza IPA", Quantity: 2, UnitPrice: decimal.NewFromInt(100), IsCancelled: true},
	}

	resp := uc.Execute(context.Background(), sale.ID, req)
	require.True(t, resp.Success)

	// Orden de emisión: SaleModified, SaleCancelled, ItemCancelled
	assert.Equal(t, []string{
		event.TypeSaleModified,
		event.TypeSaleCancelled,
		event.TypeItemCancelled,
	}, publisher.eventTypes())
}

func TestUpdateSale_AlreadyCancelledSaleEmitsNoCancelEvent(t *testing.T) {
	repo := newFakeSaleRepo()
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewUpdateSaleUseCase(repo, publisher, cache)

	sale := seedSale(t, repo, 5)
	sale.IsCancelled = true

	req := validUpdateRequest()
	req.IsCancelled = true

	resp := uc.Execute(context.Background(), sale.ID, req)
	require.True(t, resp.Success)

	// La cancelación ya estaba vigente: solo SaleModified
	assert.Equal(t, []string{event.TypeSaleModified}, publisher.eventTypes())
}

func TestUpdateSale_AlreadyCancelledItemEmitsNoItemEvent(t *testing.T) {
	repo := newFakeSaleRepo()
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewUpdateSaleUseCase(repo, publisher, cache)

	sale := seedSale(t, repo, 5)
	sale.Items[0].Cancel()
	itemID := sale.Items[0].ID

	req := validUpdateRequest()
	req.Items = []request.UpdateSaleItemRequest{
		{ID: itemID, Product: "Cerveza IPA", Quantity: 5, UnitPrice: decimal.NewFromInt(100), IsCancelled: true},
	}

	resp := uc.Execute(context.Background(), sale.ID, req)
	require.True(t, resp.Success)

	assert.Equal(t, []string{event.TypeSaleModified}, publisher.eventTypes())
}

func TestUpdateSale_QuantityLimitRejectsUpdate(t *testing.T) {
	repo := newFakeSaleRepo()
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewUpdateSaleUseCase(repo, publisher, cache)

	sale := seedSale(t, repo, 5)

	req := validUpdateRequest()
	req.Items = []request.UpdateSaleItemRequest{
		{Product: "Cerveza IPA", Quantity: 21, UnitPrice: decimal.NewFromInt(100)},
	}

	resp := uc.Execute(context.Background(), sale.ID, req)

	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "Cerveza IPA")

	assert.Equal(t, 0, repo.updateCalls)
	assert.Empty(t, publisher.published)
	assert.Empty(t, cache.removed)
}
