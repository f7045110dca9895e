package storage

import "context"

// Store is durable key-value storage for the client-state documents
// (favorites, ad campaigns). Each document is saved whole under a fixed key.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

type StorageError string

func (e StorageError) Error() string {
	return string(e)
}

const ErrNotFound = StorageError("key not found in storage")
