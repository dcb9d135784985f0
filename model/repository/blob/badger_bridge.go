package blob

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBridge keeps blobs in an embedded badger database.
type BadgerBridge struct {
	db *badger.DB
}

func NewBadgerBridge(db *badger.DB) *BadgerBridge {
	return &BadgerBridge{db: db}
}

func (b *BadgerBridge) Get(_ context.Context, key string) ([]byte, error) {
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
	return out, err
}

func (b *BadgerBridge) Set(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *BadgerBridge) Remove(_ context.Context, key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
