// Package user persists user records for an external identity framework.
//
// Like package role, this is a thin adapter over the AspNetUsers collection:
// one document operation per call, no caching, no retries, no credential
// logic of any kind.
package user

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"go.identistore.tech/config"
	"go.identistore.tech/mongostore"
)

const collectionName = "AspNetUsers"

// Store defines user persistence as the identity framework consumes it.
// All implementations must be wrapped with instrumentation.
type Store interface {
	// Create inserts the user, assigning a new id when none is set.
	Create(ctx context.Context, u *User) error

	// FindByID returns the user with the given hex id, or nil when absent.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByName returns the first user with an exact, case-sensitive
	// userName match, or nil when absent; ties go to the oldest document.
	FindByName(ctx context.Context, userName string) (*User, error)

	// FindByEmail returns the first user with an exact, case-sensitive
	// email match, or nil when absent; ties go to the oldest document.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update replaces the whole document keyed by the user's id, inserting
	// it when absent (upsert).
	Update(ctx context.Context, u *User) error

	// Delete removes the document keyed by the user's id. Deleting a user
	// that does not exist is not an error.
	Delete(ctx context.Context, u *User) error

	// Close marks the store closed and releases the connection when the
	// store opened it.
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
