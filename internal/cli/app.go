package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/config"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/notequery"
	"github.com/dmitrijs2005/notekeeper/internal/notestore"
	"github.com/dmitrijs2005/notekeeper/internal/storage/kv"
	"github.com/rs/xid"
)

// NoteStore is the part of notestore.Store the CLI drives.
type NoteStore interface {
	RegisterUser(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	Logout(ctx context.Context) error
	LoggedInUser(ctx context.Context) (models.User, bool, error)
	DeleteUser(ctx context.Context, email string) error

	ListNotes(ctx context.Context, owner string) ([]models.Note, error)
	GetNote(ctx context.Context, owner, id string) (models.Note, error)
	CreateNote(ctx context.Context, owner string, in models.NoteInput) (models.Note, error)
	UpdateNote(ctx context.Context, owner, id string, in models.NoteInput) (models.Note, error)
	DeleteNote(ctx context.Context, owner, id string) error
}

var _ NoteStore = (*notestore.Store)(nil)

type App struct {
	store    NoteStore
	sorter   *notequery.Sorter
	log      logging.Logger
	imageDir string
	reader   *bufio.Reader
	out      io.Writer
	closer   io.Closer

	user     *models.User
	sortMode notequery.SortMode
	query    string

	newImageName func() string
}

// NewApp opens the database named in c and builds an App reading from stdin
// and writing to stdout. The database is closed when Run returns.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	sorter, err := notequery.NewSorterFor(c.Locale)
	if err != nil {
		return nil, err
	}

	repo, err := kv.Open(ctx, kv.Options{Path: c.DatabasePath, BusyTimeout: c.BusyTimeout})
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	store := notestore.New(repo, notestore.WithLogger(log))
	a := newApp(store, sorter, log, c.ImageDir, os.Stdin, os.Stdout)
	a.closer = repo
	return a, nil
}

func newApp(store NoteStore, sorter *notequery.Sorter, log logging.Logger, imageDir string, in io.Reader, out io.Writer) *App {
	return &App{
		store:        store,
		sorter:       sorter,
		log:          log,
		imageDir:     imageDir,
		reader:       bufio.NewReader(in),
		out:          out,
		sortMode:     notequery.Newest,
		newImageName: func() string { return xid.New().String() },
	}
}

// Run restores a previous session, if any, and serves the REPL until exit.
func (a *App) Run(ctx context.Context) {
	if a.closer != nil {
		defer func() {
			if err := a.closer.Close(); err != nil {
				a.log.Error(ctx, "closing database", "error", err)
			}
		}()
	}

	fmt.Fprintln(a.out, "Welcome to NoteKeeper CLI (type 'help' for commands)")
	if err := a.restoreSession(ctx); err != nil {
		a.handleError(ctx, err)
	}
	if a.user != nil {
		fmt.Fprintf(a.out, "Logged in as %s\n", a.user.Name)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restoreSession(ctx context.Context) error {
	u, ok, err := a.store.LoggedInUser(ctx)
	if err != nil {
		return err
	}
	if ok {
		a.user = &u
	} else {
		a.user = nil
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) requireUser() (models.User, error) {
	if a.user == nil {
		return models.User{}, errNotLoggedIn
	}
	return *a.user, nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	s := a.user.Email + " " + string(a.sortMode)
	if a.query != "" {
		s += fmt.Sprintf(" %q", a.query)
	}
	return "(" + s + ")"
}
