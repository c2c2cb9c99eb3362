package mongostore

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexDefinition defines a MongoDB index
type IndexDefinition struct {
	Collection string
	Keys       bson.D
	Options    *options.IndexOptions
}

// EnsureIndexes creates the lookup indexes the stores benefit from.
// The stores never call this themselves: correctness does not require any
// index, and name lookups work (slowly) without one. Callers opt in,
// typically once at deployment time.
func EnsureIndexes(ctx context.Context, client *Client) error {
	for _, idx := range indexDefinitions() {
		if err := createIndex(ctx, client, idx); err != nil {
			slog.Warn("Failed to create index (may already exist)",
				"error", err,
				"collection", idx.Collection)
		}
	}

	slog.Info("Index initialization complete", "count", len(indexDefinitions()))
	return nil
}

func createIndex(ctx context.Context, client *Client, idx IndexDefinition) error {
	indexModel := mongo.IndexModel{
		Keys:    idx.Keys,
		Options: idx.Options,
	}

	_, err := client.Collection(idx.Collection).Indexes().CreateOne(ctx, indexModel)
	return err
}

func indexDefinitions() []IndexDefinition {
	return []IndexDefinition{
		// AspNetRoles: name lookups only; duplicates are legal so the
		// index is not unique.
		{
			Collection: "AspNetRoles",
			Keys:       bson.D{{Key: "name", Value: 1}},
		},

		// AspNetUsers
		{
			Collection: "AspNetUsers",
			Keys:       bson.D{{Key: "userName", Value: 1}},
		},
		{
			Collection: "AspNetUsers",
			Keys:       bson.D{{Key: "email", Value: 1}},
			Options:    options.Index().SetSparse(true),
		},
	}
}
