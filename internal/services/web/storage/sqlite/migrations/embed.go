package migrations

import "embed"

// FS contains embedded SQLite migrations for widget failure storage.
//
//go:embed *.sql
var FS embed.FS
