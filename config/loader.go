package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TOMLConfig represents the TOML configuration file structure
type TOMLConfig struct {
	MongoDB           TOMLMongoDBConfig `toml:"mongodb"`
	ConnectionStrings map[string]string `toml:"connection_strings"`
}

// TOMLMongoDBConfig represents MongoDB configuration in TOML
type TOMLMongoDBConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// LoadFromFile loads configuration from a TOML file, layered over the
// environment defaults: file values win where set, named connection strings
// from both sources are merged with the file taking precedence.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var tomlCfg TOMLConfig
	if err := toml.Unmarshal(data, &tomlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyTOML(cfg, &tomlCfg)
	return cfg, nil
}

func applyTOML(cfg *Config, tomlCfg *TOMLConfig) {
	if tomlCfg.MongoDB.URI != "" {
		cfg.MongoDB.URI = tomlCfg.MongoDB.URI
	}
	if tomlCfg.MongoDB.Database != "" {
		cfg.MongoDB.Database = tomlCfg.MongoDB.Database
	}
	for name, cs := range tomlCfg.ConnectionStrings {
		cfg.ConnectionStrings[name] = cs
	}
}
