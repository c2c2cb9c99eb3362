package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MongoDB.URI == "" {
		t.Error("Expected default MongoDB URI to be set")
	}

	if cfg.MongoDB.Database == "" {
		t.Error("Expected default MongoDB database to be set")
	}
}

func TestLoadNamedConnectionStrings(t *testing.T) {
	t.Setenv("CONNSTR_MONGO", "mongodb://db.example.com:27017/identity")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cs, err := cfg.ConnectionString("Mongo")
	if err != nil {
		t.Fatalf("ConnectionString failed: %v", err)
	}

	if cs != "mongodb://db.example.com:27017/identity" {
		t.Errorf("Expected connection string from environment, got '%s'", cs)
	}
}

func TestConnectionStringDefaultName(t *testing.T) {
	cfg := &Config{
		ConnectionStrings: map[string]string{
			DefaultConnectionName: "mongodb://localhost:27017/identity",
		},
	}

	cs, err := cfg.ConnectionString("")
	if err != nil {
		t.Fatalf("ConnectionString failed: %v", err)
	}

	if cs != "mongodb://localhost:27017/identity" {
		t.Errorf("Expected default-name lookup to resolve, got '%s'", cs)
	}
}

func TestConnectionStringNotFound(t *testing.T) {
	cfg := &Config{ConnectionStrings: map[string]string{}}

	_, err := cfg.ConnectionString("Missing")
	if err == nil {
		t.Fatal("Expected error for missing connection string")
	}

	if !errors.Is(err, ErrConnectionStringNotFound) {
		t.Errorf("Expected ErrConnectionStringNotFound, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
[mongodb]
uri = "mongodb://file.example.com:27017"
database = "identity_test"

[connection_strings]
Legacy = "Server=legacy.example.com:27017;Database=legacy"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.MongoDB.URI != "mongodb://file.example.com:27017" {
		t.Errorf("Expected URI from file, got '%s'", cfg.MongoDB.URI)
	}

	if cfg.MongoDB.Database != "identity_test" {
		t.Errorf("Expected database from file, got '%s'", cfg.MongoDB.Database)
	}

	cs, err := cfg.ConnectionString("Legacy")
	if err != nil {
		t.Fatalf("ConnectionString failed: %v", err)
	}

	if cs != "Server=legacy.example.com:27017;Database=legacy" {
		t.Errorf("Expected legacy connection string from file, got '%s'", cs)
	}
}

func TestLoadFromFileOverridesEnvironment(t *testing.T) {
	t.Setenv("MONGODB_DATABASE", "from_env")

	content := `
[mongodb]
database = "from_file"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.MongoDB.Database != "from_file" {
		t.Errorf("Expected file value to win, got '%s'", cfg.MongoDB.Database)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
