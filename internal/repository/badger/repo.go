// Package badger persists small per-device preferences in an embedded
// badger database.
package badger

import (
	"errors"
	"fmt"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/s21platform/quickchat/internal/model"
)

type Repository struct {
	db *badgerdb.DB
}

// New opens (or creates) the database at path. An empty path keeps the data
// in memory only.
func New(path string) (*Repository, error) {
	opts := badgerdb.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %v", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Get returns a copy of the value stored under key, or model.ErrNotFound.
func (r *Repository) Get(key string) ([]byte, error) {
	var value []byte
	err := r.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %v", key, err)
	}

	return value, nil
}

func (r *Repository) Set(key string, value []byte) error {
	err := r.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to set %s: %v", key, err)
	}

	return nil
}
