package database

import (
	"context"
	"fmt"
	"time"

	"pharmacy-chatbot-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the read-only view of the pharmacy records the chatbot
// answers from.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// ListStock returns every stock item, most recently updated first.
func (s *MongoStore) ListStock(ctx context.Context) ([]models.Stock, error) {
	var items []models.Stock
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	if err := s.findAll(ctx, StockCollection, bson.D{}, opts, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RecentSales returns the latest limit sales by transaction date.
func (s *MongoStore) RecentSales(ctx context.Context, limit int) ([]models.Sale, error) {
	var sales []models.Sale
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))
	if err := s.findAll(ctx, SalesCollection, bson.D{}, opts, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// SalesBetween returns sales dated in [from, to).
func (s *MongoStore) SalesBetween(ctx context.Context, from, to time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	filter := bson.D{{Key: "date", Value: bson.D{
		{Key: "$gte", Value: from},
		{Key: "$lt", Value: to},
	}}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if err := s.findAll(ctx, SalesCollection, filter, opts, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// ListCustomers returns every customer, highest loyalty first.
func (s *MongoStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	opts := options.Find().SetSort(bson.D{{Key: "loyaltyPoints", Value: -1}})
	if err := s.findAll(ctx, CustomerCollection, bson.D{}, opts, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CountSales returns the number of recorded sales.
func (s *MongoStore) CountSales(ctx context.Context) (int64, error) {
	n, err := s.db.Collection(SalesCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

func (s *MongoStore) findAll(ctx context.Context, collection string, filter bson.D, opts *options.FindOptions, out any) error {
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("query %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}
