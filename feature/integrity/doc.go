// Package integrity provides health checks for the movie manager's backing services.
//
// # Checks Provided
//
//   - Database: Validates that the connected database has the movie tables with the
//     columns and types declared on their GORM models (SQLite, MySQL or Postgres).
//   - Storage: Checks that the backup bucket exists and counts the backups in it.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/database : Runs the schema check.
//   - GET /integrity/storage : Runs the bucket check (supports ?fix=true).
package integrity
