// Package reconcile merges batches of remote representations into the local store.
//
// # Architecture
//
// The engine is model agnostic. It keys every incoming representation, loads the
// matching local records with one membership query and plans one action per key:
//
//   - update_local: a record with this key exists and is overwritten
//   - create_local: no record has this key, a new one is inserted
//   - skip: a record exists but the adapter rejected the representation
//
// Representations without a key are ignored; among duplicates the last one wins.
//
// The model-specific pieces (key extraction, local lookup, validation and the
// mutations themselves) live in an Adapter, optionally a Mutator and BatchCreator.
// See feature/movies/reconcile for the movie adapter.
//
// # Transactions
//
// Reconcile plans and applies in one transaction: either every action of a batch is
// written or none is. Dry runs only plan.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Adapter: moviesReconcile.NewAdapter(logger)}
//	plan, written, err := reconcile.Reconcile(ctx, spec, db, items, reconcile.Options{})
package reconcile
