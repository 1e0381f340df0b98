package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"readings-index/pkg/domain"
)

// MongoClient stores reading content in a MongoDB collection, keyed by _id.
type MongoClient struct {
	mongoClient *mongo.Client
	collection  *mongo.Collection
}

// NewMongoClient creates a new MongoDB client. The connection is verified by Connect.
func NewMongoClient(connectionString, databaseName, collectionName string) *MongoClient {
	if collectionName == "" {
		collectionName = DefaultTable
	}

	clientOptions := options.Client().ApplyURI(connectionString)
	mongoClient, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		// Error surfaces from Connect.
		return &MongoClient{}
	}

	return &MongoClient{
		mongoClient: mongoClient,
		collection:  mongoClient.Database(databaseName).Collection(collectionName),
	}
}

// Connect verifies the connection to MongoDB.
func (c *MongoClient) Connect(ctx context.Context) error {
	if c.mongoClient == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return c.mongoClient.Ping(ctx, nil)
}

// Close closes the MongoDB connection.
func (c *MongoClient) Close(ctx context.Context) error {
	if c.mongoClient == nil {
		return nil
	}
	return c.mongoClient.Disconnect(ctx)
}

// UpsertReadingContent inserts rc or replaces the document with the same id.
func (c *MongoClient) UpsertReadingContent(ctx context.Context, rc *domain.ReadingContent) error {
	if c.collection == nil {
		return fmt.Errorf("collection not initialized")
	}
	if rc == nil || rc.ID == "" {
		return fmt.Errorf("reading content id is required")
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := c.collection.ReplaceOne(ctx, bson.M{"_id": rc.ID}, rc, opts); err != nil {
		return fmt.Errorf("upsert reading content id=%q: %w", rc.ID, err)
	}
	return nil
}

// GetReadingContent fetches one stored reading by id.
func (c *MongoClient) GetReadingContent(ctx context.Context, id string) (*domain.ReadingContent, error) {
	if c.collection == nil {
		return nil, fmt.Errorf("collection not initialized")
	}

	var rc domain.ReadingContent
	if err := c.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rc); err != nil {
		return nil, fmt.Errorf("find reading content id=%q: %w", id, err)
	}
	return &rc, nil
}

// CountReadingContent returns the number of stored readings.
func (c *MongoClient) CountReadingContent(ctx context.Context) (int, error) {
	if c.collection == nil {
		return 0, fmt.Errorf("collection not initialized")
	}

	n, err := c.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count reading content: %w", err)
	}
	return int(n), nil
}

// drop removes the collection. Used by integration tests.
func (c *MongoClient) drop(ctx context.Context) error {
	if c.collection == nil {
		return nil
	}
	return c.collection.Drop(ctx)
}
