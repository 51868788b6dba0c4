// Package config loads runtime configuration for the NoteKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-i string   directory for attached photos
//	-l string   log level (debug, info, warn, error)
//	-L string   locale for title ordering, e.g. "en" or "sv-SE"
//	-b int      SQLite busy timeout (milliseconds)
//
// # JSON schema
//
// Empty or missing keys leave the earlier value in place. busy_timeout uses
// timex.Duration, so it can be a string like "2s" or integer nanoseconds:
//
//	{
//	  "database_path": "/var/lib/notekeeper/notes.db",
//	  "image_dir": "/var/lib/notekeeper/images",
//	  "log_level": "info",
//	  "locale": "sv-SE",
//	  "busy_timeout": "2s"
//	}
//
// This package does not read environment variables.
package config
