package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

// SQLStore keeps records in a single key-value table, on sqlite or
// postgres.
type SQLStore struct {
	db *sql.DB
}

func openSQL(ctx context.Context, driver Driver, dsn string) (*SQLStore, error) {
	var drvName string
	switch driver {
	case DriverSQLite, "":
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:openmic.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/openmic?sslmode=disable"
		}
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS audio_records (
  key TEXT PRIMARY KEY,
  filepath TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`

// $N placeholders are understood by both the pgx and modernc drivers.

func (s *SQLStore) Put(ctx context.Context, key string, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO audio_records (key, filepath, created_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET filepath = excluded.filepath, created_at = excluded.created_at`,
		key, rec.Filepath, rec.Created.Unix())
	if err != nil {
		return fmt.Errorf("database: put %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (Record, error) {
	var (
		filepath string
		created  int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT filepath, created_at FROM audio_records WHERE key = $1`, key).
		Scan(&filepath, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("database: %q: %w", key, ErrNoRecord)
	}
	if err != nil {
		return Record{}, fmt.Errorf("database: get %q: %w", key, err)
	}
	return Record{Filepath: filepath, Created: time.Unix(created, 0).UTC()}, nil
}

func (s *SQLStore) Close() error { return s.db.Close() }
