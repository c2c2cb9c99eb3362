// Package mongostore resolves MongoDB connections for the identity stores.
//
// A store needs exactly one live database handle for its lifetime. This
// package produces that handle through one of four paths: a named connection
// string from configuration, an explicit connection string paired with a
// database name, a pre-built *mongo.Database supplied by the caller, or the
// deprecated named-configuration path with an explicit format flag.
// Connections are opened and pinged eagerly at resolution, never lazily.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"go.identistore.tech/config"
)

// ErrNoDatabaseName indicates the connection string carried no database
// component and no explicit database name was supplied.
var ErrNoDatabaseName = errors.New("no database name specified in connection string")

// Format identifies how a stored connection string should be interpreted.
//
// Deprecated: resolution sniffs the mongodb:// scheme automatically; the
// explicit flag exists only for callers ported from configurations that
// recorded the format out of band. Use ResolveNamed instead.
type Format int

const (
	// FormatURL forces URL interpretation (mongodb:// or mongodb+srv://)
	FormatURL Format = iota
	// FormatStructured forces legacy key=value; interpretation
	FormatStructured
)

// Client wraps the MongoDB client with the single database handle the
// stores operate on.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
	owned    bool
}

// Connect establishes a connection using an explicit URI and database name.
func Connect(ctx context.Context, cfg config.MongoDBConfig) (*Client, error) {
	return connect(ctx, cfg.URI, cfg.Database)
}

// ResolveNamed resolves a connection from a named configuration entry.
// A value beginning with the mongodb:// or mongodb+srv:// scheme is parsed
// as a URL, with the database taken from the URL path; any other value is
// parsed as a legacy structured connection string.
func ResolveNamed(ctx context.Context, cfg *config.Config, name string) (*Client, error) {
	cs, err := cfg.ConnectionString(name)
	if err != nil {
		return nil, err
	}
	if hasMongoScheme(cs) {
		return resolveURL(ctx, cs)
	}
	return resolveStructured(ctx, cs)
}

// ResolveNamedFormat resolves a named configuration entry with the stored
// string's format stated by the caller instead of sniffed from the scheme.
//
// Deprecated: use ResolveNamed.
func ResolveNamedFormat(ctx context.Context, cfg *config.Config, name string, format Format) (*Client, error) {
	cs, err := cfg.ConnectionString(name)
	if err != nil {
		return nil, err
	}
	if format == FormatURL {
		return resolveURL(ctx, cs)
	}
	return resolveStructured(ctx, cs)
}

// ResolveWithDatabase connects using the connection string verbatim and
// selects the named database, ignoring any database embedded in the string.
func ResolveWithDatabase(ctx context.Context, connectionString, databaseName string) (*Client, error) {
	if databaseName == "" {
		return nil, ErrNoDatabaseName
	}
	uri := connectionString
	if !hasMongoScheme(uri) {
		parsed, err := ParseStructured(connectionString)
		if err != nil {
			return nil, err
		}
		uri = parsed.URI()
	}
	return connect(ctx, uri, databaseName)
}

// FromDatabase wraps an already-connected database handle. No resolution is
// performed and the handle's lifecycle stays with the caller: Close on the
// returned client never disconnects it.
func FromDatabase(db *mongo.Database) *Client {
	return &Client{
		client:   db.Client(),
		database: db,
		dbName:   db.Name(),
	}
}

func resolveURL(ctx context.Context, rawURL string) (*Client, error) {
	dbName, err := databaseFromURL(rawURL)
	if err != nil {
		return nil, err
	}
	if dbName == "" {
		return nil, ErrNoDatabaseName
	}
	return connect(ctx, rawURL, dbName)
}

func resolveStructured(ctx context.Context, cs string) (*Client, error) {
	parsed, err := ParseStructured(cs)
	if err != nil {
		return nil, err
	}
	if parsed.Database == "" {
		return nil, ErrNoDatabaseName
	}
	return connect(ctx, parsed.URI(), parsed.Database)
}

func connect(ctx context.Context, uri, dbName string) (*Client, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	slog.Info("Connected to MongoDB", "database", dbName)

	return &Client{
		client:   client,
		database: client.Database(dbName),
		dbName:   dbName,
		owned:    true,
	}, nil
}

// Database returns the resolved database handle.
func (c *Client) Database() *mongo.Database {
	return c.database
}

// Collection returns a collection from the resolved database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

// Ping checks if the connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Owned reports whether this client opened its own connection. Wrapped
// handles from FromDatabase are not owned.
func (c *Client) Owned() bool {
	return c.owned
}

// Close disconnects the underlying client when this client owns it.
// Closing a wrapped handle is a no-op so a caller-supplied connection is
// never torn down underneath its owner.
func (c *Client) Close(ctx context.Context) error {
	if !c.owned {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func hasMongoScheme(s string) bool {
	return strings.HasPrefix(s, "mongodb://") || strings.HasPrefix(s, "mongodb+srv://")
}

// databaseFromURL extracts the database component from a mongodb URL path.
func databaseFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid connection URL: %w", err)
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}
