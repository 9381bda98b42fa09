package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"Backend-StudentHub/src/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo bundles the connected client and the collections the service layer
// works with. Built once in main and injected, never accessed as a global.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
	Users  *mongo.Collection
}

// Connect establishes the MongoDB connection, pings the primary and creates
// the indexes the data model relies on.
func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	db := client.Database(cfg.DBName)
	m := &Mongo{
		Client: client,
		DB:     db,
		Users:  db.Collection("users"),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	log.Println("✅ MongoDB connected successfully")
	return m, nil
}

// ensureIndexes creates the unique email index. Duplicate registrations are
// rejected by this index even when the application-level pre-check races.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	idxCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := m.Users.Indexes().CreateOne(idxCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// Disconnect tears the connection down on shutdown.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
