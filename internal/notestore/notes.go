package notestore

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/storage/kv"
	"github.com/dmitrijs2005/notekeeper/internal/timex"
)

const maxIDAttempts = 5

var errIDCollision = errors.New("could not allocate a unique note id")

// ListNotes returns the owner's notes in insertion order. The slice is the
// caller's; re-read after a mutation to see changes.
func (s *Store) ListNotes(ctx context.Context, owner string) ([]models.Note, error) {
	if blank(owner) {
		return nil, required("owner")
	}

	var notes []models.Note
	err := s.view(ctx, func(ctx context.Context, r kv.Repository) error {
		all, err := s.loadNotes(ctx, r)
		if err != nil {
			return err
		}
		notes = slices.Clone(all[owner])
		return nil
	})
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// GetNote returns one note of the owner.
func (s *Store) GetNote(ctx context.Context, owner, id string) (models.Note, error) {
	notes, err := s.ListNotes(ctx, owner)
	if err != nil {
		return models.Note{}, err
	}
	i := indexOf(notes, id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	return notes[i], nil
}

// CreateNote appends a new note to the owner's collection. CreatedAt and
// UpdatedAt are both set to the current time.
func (s *Store) CreateNote(ctx context.Context, owner string, in models.NoteInput) (models.Note, error) {
	if blank(owner) {
		return models.Note{}, required("owner")
	}
	if err := in.Validate(); err != nil {
		return models.Note{}, fromFieldError(err)
	}

	var note models.Note
	err := s.mutate(ctx, func(ctx context.Context, r kv.Repository) error {
		all, err := s.loadNotes(ctx, r)
		if err != nil {
			return err
		}

		id, err := s.uniqueNoteID(all[owner])
		if err != nil {
			return err
		}
		now := timex.FromTime(s.now())
		note = models.Note{
			ID:        id,
			Title:     in.Title,
			Body:      in.Body,
			ImageURI:  in.NormalizedImage(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		all[owner] = append(all[owner], note)
		return s.writeNotes(ctx, r, all)
	})
	if err != nil {
		return models.Note{}, err
	}

	s.log.Debug(ctx, "note created", "note_id", note.ID)
	return note, nil
}

// UpdateNote replaces title, body and image of an existing note. ID and
// CreatedAt are kept; UpdatedAt moves to now, never backwards.
func (s *Store) UpdateNote(ctx context.Context, owner, id string, in models.NoteInput) (models.Note, error) {
	if blank(owner) {
		return models.Note{}, required("owner")
	}
	if err := in.Validate(); err != nil {
		return models.Note{}, fromFieldError(err)
	}

	var note models.Note
	err := s.mutate(ctx, func(ctx context.Context, r kv.Repository) error {
		all, err := s.loadNotes(ctx, r)
		if err != nil {
			return err
		}
		notes := all[owner]
		i := indexOf(notes, id)
		if i < 0 {
			return fmt.Errorf("%w: note %s", ErrNotFound, id)
		}

		note = notes[i]
		note.Title = in.Title
		note.Body = in.Body
		note.ImageURI = in.NormalizedImage()
		note.UpdatedAt = max(timex.FromTime(s.now()), note.UpdatedAt)

		notes[i] = note
		return s.writeNotes(ctx, r, all)
	})
	if err != nil {
		return models.Note{}, err
	}

	s.log.Debug(ctx, "note updated", "note_id", note.ID)
	return note, nil
}

// DeleteNote removes a note by id. A missing id is not an error and
// writes nothing.
func (s *Store) DeleteNote(ctx context.Context, owner, id string) error {
	if blank(owner) {
		return required("owner")
	}

	removed := false
	err := s.mutate(ctx, func(ctx context.Context, r kv.Repository) error {
		all, err := s.loadNotes(ctx, r)
		if err != nil {
			return err
		}
		notes := all[owner]
		i := indexOf(notes, id)
		if i < 0 {
			return nil
		}
		all[owner] = slices.Delete(notes, i, i+1)
		removed = true
		return s.writeNotes(ctx, r, all)
	})
	if err != nil {
		return err
	}

	if removed {
		s.log.Debug(ctx, "note deleted", "note_id", id)
	}
	return nil
}

func (s *Store) uniqueNoteID(existing []models.Note) (string, error) {
	for range maxIDAttempts {
		id := s.newNoteID()
		if id != "" && indexOf(existing, id) < 0 {
			return id, nil
		}
	}
	return "", errIDCollision
}

func indexOf(notes []models.Note, id string) int {
	return slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
}
