// Package config resolves generation settings from an optional .tsclean.yaml
// file, falling back to built-in defaults for anything unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the directory the CLI runs from.
const ConfigFileName = ".tsclean.yaml"

// Default values applied when no config file overrides them.
const (
	DefaultPort        = 3000
	DefaultNodeVersion = 18
)

// Config carries the settings generated projects are parameterized with.
type Config struct {
	// Port the generated server listens on.
	Port int `yaml:"port"`
	// MongoURI overrides the connection string. Empty means a local MongoDB
	// with a database named after the project.
	MongoURI string `yaml:"mongoUri"`
	// NodeVersion is the minimum Node.js major version required by preflight.
	NodeVersion int `yaml:"nodeVersion"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:        DefaultPort,
		NodeVersion: DefaultNodeVersion,
	}
}

// Load reads .tsclean.yaml from dir. A missing file yields the defaults; a
// present but unparsable file is an error. Unset fields fall back to their
// defaults.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", ConfigFileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", ConfigFileName, err)
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.NodeVersion <= 0 {
		cfg.NodeVersion = DefaultNodeVersion
	}
	return cfg, nil
}

// MongoURIFor returns the connection string for a project, applying the
// local-MongoDB default when no override is configured.
func (c Config) MongoURIFor(project string) string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return "mongodb://localhost:27017/" + project
}
