// ABOUTME: Badger-backed implementation of the KV interface
// ABOUTME: Stores client-local state under the XDG data directory
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v3"
)

// AppName is the directory name for client-local data.
const AppName = "kindred"

// BadgerKV persists keys in a badger database on disk.
type BadgerKV struct {
	db *badger.DB
}

// DefaultDataDir returns the XDG-compliant location of the local store.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, AppName, "kv")
}

// OpenDefault opens the store at the default XDG location.
func OpenDefault() (*BadgerKV, error) {
	return Open(DefaultDataDir())
}

// Open opens (creating if necessary) a badger store at path.
func Open(path string) (*BadgerKV, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	return &BadgerKV{db: db}, nil
}

func (b *BadgerKV) Get(key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *BadgerKV) Put(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *BadgerKV) Delete(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}
