// Package credentials persists the bearer token and its remember deadline.
//
// Two implementations exist:
//
//   - SQLiteRepository: durable, survives restarts ("remember me").
//   - MemoryRepository: volatile, lives as long as the process.
//
// The SQLite schema is created by the embedded goose migrations, see
// OpenDatabase and RunMigrations.
package credentials
