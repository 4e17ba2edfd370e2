// Package migrations holds the SQLite schema for alignment records.
package migrations

import "embed"

// FS contains embedded SQLite migrations for alignment storage.
//
//go:embed *.sql
var FS embed.FS
