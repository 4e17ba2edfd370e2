// Package migrations holds the SQLite schema for the character roster.
package migrations

import "embed"

// FS contains embedded SQLite migrations for character storage.
//
//go:embed *.sql
var FS embed.FS
