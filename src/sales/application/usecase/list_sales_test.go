package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSales_Success(t *testing.T) {
	repo := newFakeSaleRepo()
	uc := NewListSalesUseCase(repo)

	first := seedSale(t, repo, 2)
	second := seedSale(t, repo, 5)
	repo.listSales = append(repo.listSales, first, second)
	repo.listTotal = 42

	resp := uc.Execute(context.Background(), 0, 10)

	require.True(t, resp.Success)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, first.ID, resp.Items[0].SaleID)
	assert.Equal(t, second.ID, resp.Items[1].SaleID)
	assert.Equal(t, 42, resp.TotalCount)
}

func TestListSales_EmptyPage(t *testing.T) {
	repo := newFakeSaleRepo()
	uc := NewListSalesUseCase(repo)

	resp := uc.Execute(context.Background(), 0, 10)

	require.True(t, resp.Success)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.TotalCount)
}

func TestListSales_RepositoryError(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.listErr = errors.New("db down")
	uc := NewListSalesUseCase(repo)

	resp := uc.Execute(context.Background(), 0, 10)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "db down")
}
