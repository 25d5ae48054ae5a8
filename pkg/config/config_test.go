package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsclean/tsclean/pkg/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, config.DefaultNodeVersion, cfg.NodeVersion)
	assert.Empty(t, cfg.MongoURI)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "port: 8080\nmongoUri: mongodb://db.internal:27017/shop\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "mongodb://db.internal:27017/shop", cfg.MongoURI)
	// unset field keeps its default
	assert.Equal(t, config.DefaultNodeVersion, cfg.NodeVersion)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("port: [not a number"), 0o644))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestMongoURIFor(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "mongodb://localhost:27017/shop", cfg.MongoURIFor("shop"))

	cfg.MongoURI = "mongodb://db.internal:27017/fixed"
	assert.Equal(t, "mongodb://db.internal:27017/fixed", cfg.MongoURIFor("shop"))
}
