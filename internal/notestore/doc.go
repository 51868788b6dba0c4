// Package notestore is the per-user local note store: user accounts, the
// session marker, and one note collection per user, all kept in a kv
// repository as JSON values.
//
// # Layout
//
// Three keys are used (see Keys and DefaultKeys):
//
//	@nm_users     JSON array of users
//	@nm_notes     JSON object, owner email -> array of notes
//	@nm_loggedin  email of the logged-in user, absent when logged out
//
// Notes are partitioned by the owner's email. Nothing links a partition to
// its user beyond that key, so removing a user leaves the partition behind.
//
// # Concurrency
//
// Every operation reads whole collections, changes them in memory and writes
// them back. Within one Store these sequences are serialized by a mutex and
// each mutation runs in a single backend transaction. Two Stores sharing a
// database (two processes) are not coordinated: the last write wins.
//
// # Errors
//
// Failures are classified by sentinel errors matched with errors.Is:
// ErrValidation, ErrDuplicateEmail, ErrInvalidCredentials, ErrNotFound,
// ErrStorage and ErrCorruptData. Nothing is retried.
//
// Passwords are stored and compared in plaintext. Do not reuse this pattern
// for anything that leaves the device.
package notestore
