package services

import (
	"context"
	"sync"
	"time"

	"pharmacy-chatbot-backend/models"
)

type fakeStore struct {
	stock     []models.Stock
	sales     []models.Sale
	customers []models.Customer
	err       error

	from, to time.Time
}

func (f *fakeStore) ListStock(context.Context) ([]models.Stock, error) {
	return f.stock, f.err
}

func (f *fakeStore) RecentSales(_ context.Context, limit int) ([]models.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.sales) {
		return f.sales[:limit], nil
	}
	return f.sales, nil
}

func (f *fakeStore) SalesBetween(_ context.Context, from, to time.Time) ([]models.Sale, error) {
	f.from, f.to = from, to
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Sale
	for _, s := range f.sales {
		if !s.Date.Before(from) && s.Date.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) ListCustomers(context.Context) ([]models.Customer, error) {
	return f.customers, f.err
}

func (f *fakeStore) CountSales(context.Context) (int64, error) {
	return int64(len(f.sales)), f.err
}

type fakeLookup struct {
	mu      sync.Mutex
	results map[string][]models.ExternalLookupResult
	terms   []string
}

func (f *fakeLookup) Search(_ context.Context, term string) []models.ExternalLookupResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terms = append(f.terms, term)
	return f.results[term]
}

var fixedNow = time.Date(2025, time.March, 14, 15, 30, 0, 0, time.UTC)
