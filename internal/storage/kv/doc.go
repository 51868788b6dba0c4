// Package kv is the on-device key-value persistence layer: string keys
// mapped to opaque byte values.
//
// # Contract
//
//   - Get returns (nil, nil) for a missing key.
//   - Set inserts or overwrites.
//   - Delete is idempotent.
//   - InTx (TxRepository) runs a function against a transactional view;
//     all of its writes become visible together or not at all.
//
// # Implementations
//
//   - SQLiteRepository: a single kv table in a SQLite file, schema applied by
//     embedded goose migrations (see Open and RunMigrations).
//   - MemoryRepository: a mutex-guarded map, for tests and throwaway sessions.
//
// Typical usage
//
//	repo, err := kv.Open(ctx, kv.Options{Path: "notes.db"})
//	if err != nil { ... }
//	defer repo.Close()
//	_ = repo.Set(ctx, "@nm_loggedin", []byte("alice@x.com"))
package kv
