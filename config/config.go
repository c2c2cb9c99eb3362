package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultConnectionName is the named connection string consulted when the
// caller does not specify one.
const DefaultConnectionName = "Mongo"

// connStringEnvPrefix feeds the named connection string map from the
// environment: CONNSTR_MONGO becomes the entry "Mongo".
const connStringEnvPrefix = "CONNSTR_"

// ErrConnectionStringNotFound indicates the requested named connection string
// is absent from configuration.
var ErrConnectionStringNotFound = errors.New("connection string not found")

// Config holds all configuration the stores consume. It is always passed
// explicitly to store constructors; nothing in this module reads ambient
// process state after Load returns.
type Config struct {
	// MongoDB connection used when no named connection string is given
	MongoDB MongoDBConfig

	// ConnectionStrings maps connection names to connection strings
	// (either mongodb:// URLs or legacy key=value; strings)
	ConnectionStrings map[string]string
}

// MongoDBConfig holds MongoDB connection configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// Load loads configuration from environment variables with sensible defaults.
//
// Named connection strings are read from CONNSTR_* variables; the part after
// the prefix becomes the connection name with its original casing lost, so
// lookups against Load output are case-insensitive on the name.
func Load() (*Config, error) {
	cfg := &Config{
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "identity"),
		},
		ConnectionStrings: make(map[string]string),
	}

	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, connStringEnvPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, connStringEnvPrefix)
		if name == "" || value == "" {
			continue
		}
		cfg.ConnectionStrings[strings.ToLower(name)] = value
	}

	return cfg, nil
}

// ConnectionString returns the named connection string. Lookup tries the
// exact name first, then a lowercase fold so entries loaded from the
// environment resolve under their conventional names.
func (c *Config) ConnectionString(name string) (string, error) {
	if name == "" {
		name = DefaultConnectionName
	}
	if cs, ok := c.ConnectionStrings[name]; ok {
		return cs, nil
	}
	if cs, ok := c.ConnectionStrings[strings.ToLower(name)]; ok {
		return cs, nil
	}
	return "", fmt.Errorf("%w: %q", ErrConnectionStringNotFound, name)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
