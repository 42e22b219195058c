package database

import (
	"context"
	"errors"
	"time"

	"pharmacy-chatbot-backend/config"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// Connect establishes the database connection
func Connect(cfg *config.Config) error {
	return ConnectMongoDB(cfg)
}

// Disconnect closes the database connection
func Disconnect() error {
	return DisconnectMongoDB()
}

// HealthCheck performs a database health check
func HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return GetMongoClient().Ping(ctx, readpref.Primary())
}
