// Package blob stores named JSON documents. Each record domain keeps its whole
// sequence under one key (inboundData, inventoryData, ...).
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("blob: not found")

// Bridge is a get/set/remove key-value store of serialized blobs.
type Bridge interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
