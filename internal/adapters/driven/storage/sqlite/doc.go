// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements the store interfaces
// through a single database connection:
//
//   - NodeStore: Outline files, nodes and payloads
//   - IndexStore: Index document vocabulary (file aliases, todo keywords,
//     priorities, tags)
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Transactions
//
// Every parse runs inside one transaction opened by NodeStore.BeginParse.
// Readers see either the file's previous nodes or the complete new set.
//
// # Data Location
//
// By default, the database is stored at ~/.orgsync/data/outline.db
package sqlite
