// Package movies is the movie-tracking feature.
//
// Movies live in a local GORM store guarded by a serial Perform context. Creating,
// toggling and deleting a movie changes the store first and mirrors the change to the
// remote key-value backend in the background through a remote.Dispatcher; a remote
// failure is logged and reported to the completion callback but never undone locally.
//
// Batches of remote representations are merged with Service.Reconcile, which runs the
// core reconcile engine with the adapter from feature/movies/reconcile inside one
// transaction.
//
// Routes:
//
//	GET    /movies
//	POST   /movies
//	GET    /movies/search?query=
//	POST   /movies/reconcile?dry_run=
//	POST   /movies/sync?dry_run=
//	GET    /movies/:identifier
//	PATCH  /movies/:identifier
//	DELETE /movies/:identifier
package movies
