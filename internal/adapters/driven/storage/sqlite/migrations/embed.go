// Package migrations holds the outline schema as numbered SQL scripts.
// Only *.up.sql files are applied; the down scripts document rollback.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
