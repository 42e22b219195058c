package database

import (
	"context"
	"fmt"
	"time"

	"pharmacy-chatbot-backend/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	StockCollection    = "stock"
	SalesCollection    = "sales"
	PurchaseCollection = "purchases"
	CustomerCollection = "customers"
	SupplierCollection = "suppliers"
	ProductCollection  = "products"
)

var (
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
)

// ConnectMongoDB establishes connection to MongoDB
func ConnectMongoDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.BuildDatabaseURI()).
		SetMaxPoolSize(uint64(cfg.Database.MaxConnections)).
		SetMinPoolSize(uint64(cfg.Database.MinConnections)).
		SetMaxConnIdleTime(cfg.Database.MaxIdleTime)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	db, err := prepare(ctx, client, cfg.Database.Name)
	if err != nil {
		if derr := client.Disconnect(context.Background()); derr != nil {
			log.Warn().Err(derr).Msg("Failed to close MongoDB client after setup error")
		}
		return err
	}

	mongoClient = client
	mongoDB = db

	log.Info().Str("database", cfg.Database.Name).Msg("Connected to MongoDB")
	return nil
}

// prepare checks the server is reachable and ensures indexes exist.
func prepare(ctx context.Context, client *mongo.Client, name string) (*mongo.Database, error) {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(name)
	if err := createIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	return db, nil
}

// GetMongoDB returns the MongoDB database instance
func GetMongoDB() *mongo.Database {
	if mongoDB == nil {
		log.Fatal().Msg("MongoDB not initialized")
	}
	return mongoDB
}

// GetMongoClient returns the MongoDB client
func GetMongoClient() *mongo.Client {
	if mongoClient == nil {
		log.Fatal().Msg("MongoDB client not initialized")
	}
	return mongoClient
}

// createIndexes creates the indexes the chatbot queries rely on
func createIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		StockCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "expiryDate", Value: 1}}},
			{Keys: bson.D{{Key: "quantity", Value: 1}}},
		},
		SalesCollection: {
			{Keys: bson.D{{Key: "date", Value: -1}}},
			{
				Keys:    bson.D{{Key: "invoiceNumber", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CustomerCollection: {
			{Keys: bson.D{{Key: "loyaltyPoints", Value: -1}}},
			{Keys: bson.D{{Key: "phone", Value: 1}}},
		},
		PurchaseCollection: {
			{Keys: bson.D{{Key: "purchaseDate", Value: -1}}},
		},
	}

	for collection, idx := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
	}

	log.Info().Msg("Database indexes created successfully")
	return nil
}

// DisconnectMongoDB closes the MongoDB connection
func DisconnectMongoDB() error {
	if mongoClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mongoClient.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	log.Info().Msg("Disconnected from MongoDB")
	return nil
}
