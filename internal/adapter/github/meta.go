package github

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/acikdeniz/credits/internal/app"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// MetaStore persists fetch bookkeeping data in a kv store, so consecutive
// fetch runs can issue conditional requests.
type MetaStore struct {
	store KVStore
	key   []byte
}

// NewMetaStore creates new MetaStore instance for given repository.
func NewMetaStore(store KVStore, owner string, repo string) *MetaStore {
	return &MetaStore{
		store: store,
		key:   []byte("meta/" + owner + "/" + repo),
	}
}

// Load returns meta of the last successful fetch. Returns nil if nothing was saved yet.
func (s *MetaStore) Load() (*app.FetchMeta, error) {
	data, err := s.store.ReadKey(s.key)
	if err != nil {
		return nil, fmt.Errorf("reading meta: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var entry metaDBEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshalling meta: %w", err)
	}

	return &app.FetchMeta{
		ETag:      entry.ETag,
		FetchedAt: time.Unix(entry.FetchedAt, 0),
	}, nil
}

// Save stores given fetch meta.
func (s *MetaStore) Save(meta app.FetchMeta) error {
	data, err := json.Marshal(metaDBEntry{
		ETag:      meta.ETag,
		FetchedAt: meta.FetchedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("marshalling meta: %w", err)
	}

	if err := s.store.UpdateKey(s.key, data); err != nil {
		return fmt.Errorf("writing meta: %w", err)
	}

	return nil
}

type metaDBEntry struct {
	ETag      string
	FetchedAt int64
}
