package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
)

// fakeSaleRepo repositorio en memoria para los tests de casos de uso
type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale

	createCalls int
	findCalls   int
	updateCalls int

	createErr error
	findErr   error
	updateErr error
	listErr   error

	listSales []*entity.Sale
	listTotal int

	cancelResult bool
	cancelErr    error
	deleteResult bool
	deleteErr    error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:        make(map[uuid.UUID]*entity.Sale),
		cancelResult: true,
		deleteResult: true,
	}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	sale, ok := r.sales[saleID]
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	return sale, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.sales[sale.ID]; !ok {
		return entity.ErrSaleNotFound
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) List(_ context.Context, _, _ int) ([]*entity.Sale, int, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	return r.listSales, r.listTotal, nil
}

func (r *fakeSaleRepo) Cancel(_ context.Context, _ uuid.UUID) (bool, error) {
	return r.cancelResult, r.cancelErr
}

func (r *fakeSaleRepo) Delete(_ context.Context, _ uuid.UUID) (bool, error) {
	return r.deleteResult, r.deleteErr
}

// fakePublisher registra los eventos publicados en orden
type fakePublisher struct {
	published []event.Event
}

func (p *fakePublisher) Publish(_ context.Context, e event.Event) {
	p.published = append(p.published, e)
}

func (p *fakePublisher) eventTypes() []string {
	types := make([]string, 0, len(p.published))
	for _, e := range p.published {
		types = append(types, e.EventType())
	}
	return types
}

// fakeCache cache en memoria con serialización JSON, como la implementación real
type fakeCache struct {
	entries map[string][]byte
	removed []string

	setCalls int

	getErr    error
	setErr    error
	removeErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string][]byte),
	}
}

func (c *fakeCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.setCalls++
	if c.setErr != nil {
		return c.setErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *fakeCache) Remove(_ context.Context, key string) error {
	c.removed = append(c.removed, key)
	delete(c.entries, key)
	return c.removeErr
}
