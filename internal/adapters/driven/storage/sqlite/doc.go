// Package sqlite provides a SQLite-backed place store. It is the
// backend of choice when the corpus outgrows the flat-file layout:
// records are imported once and served from a single database file.
package sqlite
