// Package cli provides the interactive NoteKeeper command-line client.
//
// It wires configuration, the SQLite-backed key-value store, the note store
// and an interactive REPL. The REPL stands in for the app's screens: sign-up
// and login, the note list with search and sort, the note editor with an
// optional photo, and the confirmation dialog shown before edits and deletes.
//
// A session that was left open by a previous run is picked up on start.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See App and runREPL for details.
package cli
