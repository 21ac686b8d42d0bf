// Package backup exports and restores the movie store through object storage.
//
// An export writes every movie as a JSON array of representations to
// <prefix>movies-<UTC timestamp>.json in the configured bucket. An import reads such a
// document back and runs it through the movie reconciler, so restoring over an existing
// store updates matched movies and creates the rest.
//
// # HTTP Endpoints
//
//   - POST   /backups                               : write a new backup
//   - GET    /backups                               : list backups, newest first
//   - POST   /backups/import?object=...&dry_run=... : restore a backup
//   - DELETE /backups?object=...                    : remove a backup
package backup
