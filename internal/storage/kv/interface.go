package kv

import "context"

// Repository is a flat key-value store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// TxRepository is a Repository that can group writes atomically.
type TxRepository interface {
	Repository

	// InTx calls fn with a repository bound to a single transaction. The
	// transaction commits if fn returns nil and rolls back otherwise. fn must
	// not use the outer repository.
	InTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
