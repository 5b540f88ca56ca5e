package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "s3", cfg.StorageBackend)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.NotEmpty(t, cfg.TaxonomyURL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("STORAGE_BACKEND", "fs")
	t.Setenv("STORAGE_LOCAL_DIR", "/tmp/blobs")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:3010")

	cfg := FromEnv()

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "fs", cfg.StorageBackend)
	assert.Equal(t, "/tmp/blobs", cfg.LocalDir)
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://localhost:3010"},
		cfg.CORSOrigins)
}
