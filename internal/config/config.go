package config

import (
	"os"
	"strings"
)

const defaultTaxonomyURL = "https://raw.githubusercontent.com/marl/jams/master/jams/" +
	"schemata/namespaces/tag/medleydb_instruments.json"

type Config struct {
	HTTPAddr string

	DBDriver       string // sqlite|postgres|valkey
	DBDSN          string
	ValkeyAddr     string
	ValkeyPassword string

	StorageBackend string // s3|fs
	StorageBucket  string
	ProjectID      string
	LocalDir       string // for fs

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string

	TaxonomyURL string
	CORSOrigins []string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DBDSN:          os.Getenv("DB_DSN"),
		ValkeyAddr:     envOr("VALKEY_ADDR", "127.0.0.1:6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		StorageBackend: envOr("STORAGE_BACKEND", "s3"),
		StorageBucket:  envOr("STORAGE_BUCKET", "openmic-audio"),
		ProjectID:      envOr("PROJECT_ID", "openmic-dev"),
		LocalDir:       os.Getenv("STORAGE_LOCAL_DIR"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3Region:       envOr("S3_REGION", "us-east-1"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		TaxonomyURL:    envOr("TAXONOMY_URL", defaultTaxonomyURL),
		CORSOrigins:    csvOr("CORS_ORIGINS", "*"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
