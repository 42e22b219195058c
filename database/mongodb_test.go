package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-chatbot-backend/config"
)

func TestConnectMongoDB_UnreachableServerLeavesNoClient(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			URI:            "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200",
			Name:           "pharmacy_test",
			MaxConnections: 5,
			MinConnections: 0,
			MaxIdleTime:    time.Minute,
		},
	}

	err := ConnectMongoDB(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping MongoDB")
	assert.Nil(t, mongoClient)
	assert.Nil(t, mongoDB)
}
