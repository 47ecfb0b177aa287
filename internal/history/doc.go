// Package history provides SQLite-based storage for past analysis runs.
//
// This package implements the HistoryDB, which stores:
//   - Run records with the search keyword and collection counts
//   - The ranked keyword table of each run
//   - The collected article list of each run
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package history
