// Package records is the persistence layer of the site admin: a key/value
// table holding exactly two named records (site content and admin users),
// each stored as one JSON value.
//
// # Backends
//
//   - SQLite (modernc.org/sqlite), the default: a local file, the analogue of
//     the browser storage the panel was designed around.
//   - PostgreSQL (pgx stdlib driver), selected by a postgres:// DSN.
//   - An in-process map (MemoryRepository) for tests and throwaway sessions.
//
// The schema is created by goose migrations embedded in the migrations
// subpackage.
//
// # Concurrency
//
// A single administrator is assumed. Writes are last-writer-wins; there is
// no versioning across processes. Atomic groups writes so an import either
// replaces both records or neither.
//
// Typical Usage
//
//	db, err := records.Open(ctx, "siteadmin.db")
//	defer db.Close()
//	store := db.Store()
//	raw, _ := store.Get(ctx, common.SiteContentKey)
package records
