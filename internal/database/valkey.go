package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valkey-io/valkey-go"
)

// ValkeyStore keeps records as JSON values under their key.
type ValkeyStore struct {
	client valkey.Client
}

func NewValkeyStore(ctx context.Context, addr, password string) (*ValkeyStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
		Password:    password,
	})
	if err != nil {
		return nil, fmt.Errorf("database: create valkey client: %w", err)
	}
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("database: ping valkey: %w", err)
	}
	return &ValkeyStore{client: client}, nil
}

func (s *ValkeyStore) Put(ctx context.Context, key string, rec Record) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	cmd := s.client.B().Set().Key(key).Value(string(val)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("database: put %q: %w", key, err)
	}
	return nil
}

func (s *ValkeyStore) Get(ctx context.Context, key string) (Record, error) {
	cmd := s.client.B().Get().Key(key).Build()
	raw, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return Record{}, fmt.Errorf("database: %q: %w", key, ErrNoRecord)
		}
		return Record{}, fmt.Errorf("database: get %q: %w", key, err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, fmt.Errorf("database: decode %q: %w", key, err)
	}
	return rec, nil
}

func (s *ValkeyStore) Close() error {
	s.client.Close()
	return nil
}
