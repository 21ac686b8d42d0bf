package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Adapter defines the model-specific half of a reconciliation: how to key incoming
// representations and how to find the records they correspond to.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g. "movies").
	Name() string

	// ExtractKey returns the join key of a representation.
	// ok is false when the representation carries no key; such items are ignored.
	ExtractKey(item RemoteItem) (key string, ok bool)

	// LoadLocalIndex returns the persisted records whose key is in keys, indexed by key.
	// Implementations should use a single membership query.
	LoadLocalIndex(ctx context.Context, db *gorm.DB, keys []string) (map[string]LocalItem, error)

	// CheckUpdate validates that remote may overwrite local.
	// A non-nil error rejects the representation; the record is left unchanged.
	CheckUpdate(local LocalItem, remote RemoteItem) error
}

// Mutator is implemented by adapters that can apply a plan.
// Both methods run inside the transaction handed to them as tx.
type Mutator interface {
	Adapter

	// UpdateLocal overwrites local from remote.
	UpdateLocal(ctx context.Context, tx *gorm.DB, local LocalItem, remote RemoteItem) error

	// CreateLocal inserts a new record built from remote.
	CreateLocal(ctx context.Context, tx *gorm.DB, remote RemoteItem) error
}

// BatchCreator is optionally implemented by mutators that can insert many records at once.
type BatchCreator interface {
	CreateLocalBatch(ctx context.Context, tx *gorm.DB, remotes []RemoteItem) error
}
