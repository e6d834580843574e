// Package localstore keeps small JSON values in named slots on the client
// machine, backed by an embedded badger database.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Store holds JSON values by slot name
type Store interface {
	// Get decodes the slot into v and reports whether it existed
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
	Delete(key string) error
	Close() error
}

// Badger is a Store on top of badger
type Badger struct {
	db *badger.DB
}

// Open opens or creates the store in dir
func Open(dir string) (*Badger, error) {
	if dir == "" {
		return nil, errors.New("store directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create store directory %s: %w", dir, err)
	}

	opts := badger.DefaultOptions(dir).
		WithSyncWrites(true).
		WithNumVersionsToKeep(1).
		WithLogger(nil)
	return open(opts)
}

// OpenInMemory opens a store that lives only as long as the process
func OpenInMemory() (*Badger, error) {
	return open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

func open(opts badger.Options) (*Badger, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Badger{db: db}, nil
}

func (s *Badger) Get(key string, v any) (bool, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read slot %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode slot %s: %w", key, err)
	}
	return true, nil
}

func (s *Badger) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	}); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// Delete removes the slot; deleting a missing slot is not an error
func (s *Badger) Delete(key string) error {
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	}); err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}

func (s *Badger) Close() error {
	return s.db.Close()
}
