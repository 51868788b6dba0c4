package notestore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/storage/kv"
	"github.com/google/uuid"
	"github.com/rs/xid"
)

// Keys are the repository keys the store owns.
type Keys struct {
	Users   string
	Notes   string
	Session string
}

var DefaultKeys = Keys{
	Users:   "@nm_users",
	Notes:   "@nm_notes",
	Session: "@nm_loggedin",
}

// Store is the local note store. It is safe for concurrent use.
type Store struct {
	repo kv.TxRepository
	keys Keys
	log  logging.Logger

	now       func() time.Time
	newUserID func() string
	newNoteID func() string

	mu sync.Mutex
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithKeys(k Keys) Option {
	return func(s *Store) { s.keys = k }
}

func WithUserIDs(gen func() string) Option {
	return func(s *Store) { s.newUserID = gen }
}

func WithNoteIDs(gen func() string) Option {
	return func(s *Store) { s.newNoteID = gen }
}

// New returns a Store over repo. All state, the session included, lives in
// repo, so stores over different repositories are independent.
func New(repo kv.TxRepository, opts ...Option) *Store {
	s := &Store{
		repo:      repo,
		keys:      DefaultKeys,
		log:       logging.Discard(),
		now:       time.Now,
		newUserID: uuid.NewString,
		newNoteID: func() string { return xid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "notestore")
	return s
}

// mutate is the only path that writes. It serializes read-modify-write
// sequences of this Store and runs fn inside one backend transaction, so a
// failed fn leaves previously stored data untouched.
func (s *Store) mutate(ctx context.Context, fn func(ctx context.Context, r kv.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fnErr error
	err := s.repo.InTx(ctx, func(ctx context.Context, r kv.Repository) error {
		fnErr = fn(ctx, r)
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return storageError("transaction", err)
	}
	return nil
}

// view runs a read-only sequence under the same lock as mutate.
func (s *Store) view(ctx context.Context, fn func(ctx context.Context, r kv.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(ctx, s.repo)
}

func (s *Store) loadUsers(ctx context.Context, r kv.Repository) ([]models.User, error) {
	raw, err := r.Get(ctx, s.keys.Users)
	if err != nil {
		return nil, storageError("read users", err)
	}
	users, err := models.DecodeUsers(raw)
	if err != nil {
		return nil, corruptError(s.keys.Users, err)
	}
	return users, nil
}

func (s *Store) writeUsers(ctx context.Context, r kv.Repository, users []models.User) error {
	b, err := models.EncodeUsers(users)
	if err != nil {
		return storageError("encode users", err)
	}
	if err := r.Set(ctx, s.keys.Users, b); err != nil {
		return storageError("write users", err)
	}
	return nil
}

func (s *Store) loadNotes(ctx context.Context, r kv.Repository) (models.NotesByOwner, error) {
	raw, err := r.Get(ctx, s.keys.Notes)
	if err != nil {
		return nil, storageError("read notes", err)
	}
	notes, err := models.DecodeNotes(raw)
	if err != nil {
		return nil, corruptError(s.keys.Notes, err)
	}
	return notes, nil
}

func (s *Store) writeNotes(ctx context.Context, r kv.Repository, notes models.NotesByOwner) error {
	b, err := models.EncodeNotes(notes)
	if err != nil {
		return storageError("encode notes", err)
	}
	if err := r.Set(ctx, s.keys.Notes, b); err != nil {
		return storageError("write notes", err)
	}
	return nil
}

func findUser(users []models.User, email string) int {
	for i, u := range users {
		if u.HasEmail(email) {
			return i
		}
	}
	return -1
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
