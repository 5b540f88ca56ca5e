// Package database stores one metadata record per uploaded audio file,
// keyed by the file's content identifier.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Record is the metadata kept for an uploaded file.
type Record struct {
	Filepath string    `json:"filepath"`
	Created  time.Time `json:"created"`
}

// Store is a key-value view over the metadata database. Put overwrites
// any existing record for the key.
type Store interface {
	Put(ctx context.Context, key string, rec Record) error
	Get(ctx context.Context, key string) (Record, error)
	Close() error
}

// ErrNoRecord is returned by Get when no record exists for the key.
var ErrNoRecord = errors.New("no record for key")

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverValkey   Driver = "valkey"
)

// Config selects and parameterizes the metadata store driver.
type Config struct {
	Driver Driver // sqlite|postgres|valkey, default sqlite
	DSN    string // sqlite/postgres only

	ValkeyAddr     string
	ValkeyPassword string
}

// Open opens a metadata store and, for SQL drivers, ensures the schema
// exists.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverSQLite, DriverPostgres, "":
		return openSQL(ctx, cfg.Driver, cfg.DSN)
	case DriverValkey:
		return NewValkeyStore(ctx, cfg.ValkeyAddr, cfg.ValkeyPassword)
	default:
		return nil, fmt.Errorf("database: unsupported driver: %q", cfg.Driver)
	}
}
