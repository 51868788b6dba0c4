// Package models defines the persisted record types of NoteKeeper and the
// rules a record must satisfy to be stored or loaded.
//
// Records are exchanged as JSON. Decoding is strict about shape: a value of
// the wrong JSON type, or a record that fails Validate, is reported as
// ErrMalformed instead of being patched up.
package models
