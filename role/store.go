// Package role persists role records for an external identity framework.
//
// The store is a thin adapter: every operation performs exactly one document
// operation against the AspNetRoles collection and returns synchronously.
// It never caches, retries, or validates field contents.
package role

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"go.identistore.tech/config"
	"go.identistore.tech/mongostore"
)

const collectionName = "AspNetRoles"

// Store defines role persistence as the identity framework consumes it.
// All implementations must be wrapped with instrumentation.
type Store interface {
	// Create inserts the role, assigning a new id when none is set.
	Create(ctx context.Context, r *Role) error

	// FindByID returns the role with the given hex id, or nil when absent.
	FindByID(ctx context.Context, id string) (*Role, error)

	// FindByName returns the first role with an exact, case-sensitive name
	// match, or nil when absent. Duplicate names are legal; "first" means
	// the oldest document (ascending _id order).
	FindByName(ctx context.Context, name string) (*Role, error)

	// Update replaces the whole document keyed by the role's id, inserting
	// it when absent (upsert).
	Update(ctx context.Context, r *Role) error

	// Delete removes the document keyed by the role's id. Deleting a role
	// that does not exist is not an error.
	Delete(ctx context.Context, r *Role) error

	// Close marks the store closed and releases the connection when the
	// store opened it. Every operation afterwards fails with
	// store.ErrStoreClosed.
	Close(ctx context.Context) error
}

// NewStore wraps a caller-supplied database handle. The handle's lifecycle
// stays with the caller; Close only marks the store closed.
func NewStore(db *mongo.Database) Store {
	return newInstrumentedStore(newMongoStore(mongostore.FromDatabase(db)))
}

// NewStoreFromConfig resolves the named connection string from cfg and
// connects. The store owns the connection and Close releases it.
func NewStoreFromConfig(ctx context.Context, cfg *config.Config, connectionName string) (Store, error) {
	client, err := mongostore.ResolveNamed(ctx, cfg, connectionName)
	if err != nil {
		return nil, err
	}
	return newInstrumentedStore(newMongoStore(client)), nil
}

// NewStoreWithDatabase connects using the connection string verbatim and
// selects the named database, ignoring any database embedded in the string.
// The store owns the connection and Close releases it.
func NewStoreWithDatabase(ctx context.Context, connectionString, databaseName string) (Store, error) {
	client, err := mongostore.ResolveWithDatabase(ctx, connectionString, databaseName)
	if err != nil {
		return nil, err
	}
	return newInstrumentedStore(newMongoStore(client)), nil
}

// NewStoreNamedFormat is NewStoreFromConfig with the connection string's
// format stated by the caller instead of sniffed from the scheme.
//
// Deprecated: use NewStoreFromConfig.
func NewStoreNamedFormat(ctx context.Context, cfg *config.Config, connectionName string, format mongostore.Format) (Store, error) {
	client, err := mongostore.ResolveNamedFormat(ctx, cfg, connectionName, format)
	if err != nil {
		return nil, err
	}
	return newInstrumentedStore(newMongoStore(client)), nil
}
