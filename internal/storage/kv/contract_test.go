package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) TxRepository {
	t.Helper()
	repo, err := Open(context.Background(), Options{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func newMemory(t *testing.T) TxRepository {
	t.Helper()
	return NewMemoryRepository()
}

var implementations = map[string]func(t *testing.T) TxRepository{
	"sqlite": newSQLite,
	"memory": newMemory,
}

func TestRepository_SetAndGet(t *testing.T) {
	for name, newRepo := range implementations {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))

			v, err := r.Get(ctx, "k1")
			require.NoError(t, err)
			require.Equal(t, []byte{0x01, 0x02}, v)
		})
	}
}

func TestRepository_GetMissingReturnsNilNil(t *testing.T) {
	for name, newRepo := range implementations {
		t.Run(name, func(t *testing.T) {
			v, err := newRepo(t).Get(context.Background(), "absent")
			require.NoError(t, err)
			require.Nil(t, v)
		})
	}
}

func TestRepository_SetOverwrites(t *testing.T) {
	for name, newRepo := range implementations {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			require.NoError(t, r.Set(ctx, "k", []byte("old")))
			require.NoError(t, r.Set(ctx, "k", []byte("new")))

			v, err := r.Get(ctx, "k")
			require.NoError(t, err)
			require.Equal(t, []byte("new"), v)
		})
	}
}

func TestRepository_SetEmptyValueIsPresent(t *testing.T) {
	for name, newRepo := range implementations {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			require.NoError(t, r.Set(ctx, "empty", nil))

			v, err := r.Get(ctx, "empty")
			require.NoError(t, err)
			require.NotNil(t, v)
			require.Empty(t, v)
		})
	}
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	for name, newRepo := range implementations {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			require.NoError(t, r.Set(ctx, "k", []byte("v")))
			require.NoError(t, r.Delete(ctx, "k"))
			require.NoError(t, r.Delete(ctx, "k"))

			v, err := r.Get(ctx, "k")
			require.NoError(t, err)
			require.Nil(t, v)
		})
	}
}

func TestRepository_ListAndClear(t *testing.T) {
	for name, newRepo := range implementations {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
			require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

			m, err := r.List(ctx)
			require.NoError(t, err)
			assert.Len(t, m, 2)
			assert.Equal(t, []byte{0xAA}, m["a"])
			assert.Equal(t, []byte{0xBB, 0xCC}, m["b"])

			require.NoError(t, r.Clear(ctx))
			m, err = r.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, m)
		})
	}
}

func TestRepository_InTxCommits(t *testing.T) {
	for name, newRepo := range implementations {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			err := r.InTx(ctx, func(ctx context.Context, tx Repository) error {
				if err := tx.Set(ctx, "users", []byte("[]")); err != nil {
					return err
				}
				return tx.Set(ctx, "session", []byte("alice@x.com"))
			})
			require.NoError(t, err)

			m, err := r.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string][]byte{"users": []byte("[]"), "session": []byte("alice@x.com")}, m)
		})
	}
}

func TestRepository_InTxRollsBackOnError(t *testing.T) {
	for name, newRepo := range implementations {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()
			require.NoError(t, r.Set(ctx, "users", []byte("before")))

			boom := errors.New("boom")
			err := r.InTx(ctx, func(ctx context.Context, tx Repository) error {
				require.NoError(t, tx.Set(ctx, "users", []byte("after")))
				require.NoError(t, tx.Set(ctx, "session", []byte("x")))

				v, err := tx.Get(ctx, "users")
				require.NoError(t, err)
				require.Equal(t, []byte("after"), v, "writes are visible inside the transaction")
				return boom
			})
			require.ErrorIs(t, err, boom)

			v, err := r.Get(ctx, "users")
			require.NoError(t, err)
			assert.Equal(t, []byte("before"), v)

			v, err = r.Get(ctx, "session")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestOpen_FileDatabasePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.db")

	r1, err := Open(ctx, Options{Path: path})
	require.NoError(t, err)
	require.NoError(t, r1.Set(ctx, "@nm_users", []byte(`[{"id":"1"}]`)))
	require.NoError(t, r1.Close())

	r2, err := Open(ctx, Options{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r2.Close() })

	v, err := r2.Get(ctx, "@nm_users")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(v))
}
