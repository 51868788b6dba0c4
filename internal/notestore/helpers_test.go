package notestore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/storage/kv"
)

type fakeClock struct {
	mu sync.Mutex
	ms int64
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.UnixMilli(c.ms)
}

func (c *fakeClock) Set(ms int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ms = ms
}

type seqIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (g *seqIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s%d", g.prefix, g.n)
}

// failingRepo injects errors into an otherwise working repository.
// Errors set on it also apply to the transactional view handed to InTx.
type failingRepo struct {
	kv.TxRepository

	getErr     error
	setErr     error
	setErrKey  string
	deleteErr  error
	txErr      error
	setCounter int
}

func (f *failingRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.TxRepository.Get(ctx, key)
}

func (f *failingRepo) InTx(ctx context.Context, fn func(ctx context.Context, r kv.Repository) error) error {
	if f.txErr != nil {
		return f.txErr
	}
	return f.TxRepository.InTx(ctx, func(ctx context.Context, r kv.Repository) error {
		return fn(ctx, &failingView{Repository: r, f: f})
	})
}

type failingView struct {
	kv.Repository
	f *failingRepo
}

func (v *failingView) Get(ctx context.Context, key string) ([]byte, error) {
	if v.f.getErr != nil {
		return nil, v.f.getErr
	}
	return v.Repository.Get(ctx, key)
}

func (v *failingView) Set(ctx context.Context, key string, value []byte) error {
	v.f.setCounter++
	if v.f.setErr != nil && (v.f.setErrKey == "" || v.f.setErrKey == key) {
		return v.f.setErr
	}
	return v.Repository.Set(ctx, key, value)
}

func (v *failingView) Delete(ctx context.Context, key string) error {
	if v.f.deleteErr != nil {
		return v.f.deleteErr
	}
	return v.Repository.Delete(ctx, key)
}

type testEnv struct {
	repo  *kv.MemoryRepository
	clock *fakeClock
	store *Store
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:  kv.NewMemoryRepository(),
		clock: &fakeClock{ms: 1_000},
	}
	base := []Option{
		WithClock(env.clock.Now),
		WithUserIDs((&seqIDs{prefix: "u"}).Next),
		WithNoteIDs((&seqIDs{prefix: "n"}).Next),
	}
	env.store = New(env.repo, append(base, opts...)...)
	return env
}

func ptr(s string) *string { return &s }
