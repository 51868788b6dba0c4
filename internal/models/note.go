package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/timex"
)

// Note is a text note, optionally pointing at a photo stored on the device.
type Note struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	ImageURI  *string      `json:"imageUri"`
	CreatedAt timex.Millis `json:"createdAt"`
	UpdatedAt timex.Millis `json:"updatedAt"`
}

// Validate checks a stored note.
func (n Note) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return required("id")
	}
	if err := (NoteInput{Title: n.Title, Body: n.Body}).Validate(); err != nil {
		return err
	}
	if n.CreatedAt <= 0 {
		return &FieldError{Field: "createdAt", Message: "must be a positive timestamp"}
	}
	if n.UpdatedAt < n.CreatedAt {
		return &FieldError{Field: "updatedAt", Message: "must not precede createdAt"}
	}
	return nil
}

// HasImage reports whether a photo is attached.
func (n Note) HasImage() bool {
	return n.ImageURI != nil && *n.ImageURI != ""
}

// NoteInput carries the user-editable fields of a note.
type NoteInput struct {
	Title    string
	Body     string
	ImageURI *string
}

// Validate requires a title and a body that are not blank.
func (in NoteInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return required("title")
	}
	if strings.TrimSpace(in.Body) == "" {
		return required("body")
	}
	return nil
}

// NormalizedImage returns the image reference, or nil when it is blank.
func (in NoteInput) NormalizedImage() *string {
	if in.ImageURI == nil {
		return nil
	}
	uri := strings.TrimSpace(*in.ImageURI)
	if uri == "" {
		return nil
	}
	return &uri
}

// NotesByOwner is the stored notes collection: owner key to notes in
// insertion order.
type NotesByOwner map[string][]Note

// DecodeNotes parses a stored notes collection. Empty input is an empty
// collection.
func DecodeNotes(data []byte) (NotesByOwner, error) {
	if len(data) == 0 {
		return NotesByOwner{}, nil
	}

	var store NotesByOwner
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: notes: %w", ErrMalformed, err)
	}
	if store == nil {
		return NotesByOwner{}, nil
	}
	for owner, notes := range store {
		for i, n := range notes {
			if err := n.Validate(); err != nil {
				return nil, fmt.Errorf("%w: notes[%s][%d]: %w", ErrMalformed, owner, i, err)
			}
		}
	}
	return store, nil
}

// EncodeNotes serializes a notes collection.
func EncodeNotes(store NotesByOwner) ([]byte, error) {
	if store == nil {
		store = NotesByOwner{}
	}
	return json.Marshal(store)
}
