package services

import (
	"context"
	"time"

	"pharmacy-chatbot-backend/models"
)

// PharmacyStore is the read-only slice of the persistence layer the chatbot
// and the insight reports need.
type PharmacyStore interface {
	ListStock(ctx context.Context) ([]models.Stock, error)
	RecentSales(ctx context.Context, limit int) ([]models.Sale, error)
	SalesBetween(ctx context.Context, from, to time.Time) ([]models.Sale, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CountSales(ctx context.Context) (int64, error)
}

// MedicalLookup searches external medical references for a term. It never
// fails: sources that cannot be reached are left out of the result.
type MedicalLookup interface {
	Search(ctx context.Context, term string) []models.ExternalLookupResult
}
