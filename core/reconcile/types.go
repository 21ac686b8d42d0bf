package reconcile

// RemoteItem is one incoming representation. Adapters define the concrete type.
type RemoteItem any

// LocalItem is one persisted record loaded from the local store. Adapters define the concrete type.
type LocalItem any

// ActionType represents the type of planned mutation.
type ActionType string

const (
	// ActionUpdateLocal overwrites a persisted record from its remote representation.
	ActionUpdateLocal ActionType = "update_local"
	// ActionCreateLocal inserts a new record for a representation with no local match.
	ActionCreateLocal ActionType = "create_local"
	// ActionSkip leaves a matched record untouched because its representation was rejected.
	ActionSkip ActionType = "skip"
)

// Action represents a planned mutation for a single key.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the identifier joining the representation to the local record.
	Key string `json:"key"`

	// Reason explains why a representation was skipped.
	Reason string `json:"reason,omitempty"`

	// Remote is the representation the action applies. Always set.
	Remote RemoteItem `json:"-"`

	// Local is the matched record. Only set for update and skip actions.
	Local LocalItem `json:"-"`
}

// Plan contains the planned actions for one batch, ordered by key.
type Plan struct {
	// Actions contains one action per distinct key.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a plan.
type Summary struct {
	// TotalItems is the number of representations in the batch.
	TotalItems int `json:"total_items"`

	// Unkeyed counts representations ignored because they carry no key.
	Unkeyed int `json:"unkeyed"`

	// Duplicates counts representations replaced by a later one with the same key.
	Duplicates int `json:"duplicates"`

	// Updates counts matched records that will be overwritten.
	Updates int `json:"updates"`

	// Creates counts new records that will be inserted.
	Creates int `json:"creates"`

	// Skipped counts matched records left untouched because the representation was rejected.
	Skipped int `json:"skipped"`
}

// Options controls how a plan is applied.
type Options struct {
	// DryRun builds the plan without mutating the store.
	DryRun bool
}

// Spec bundles the adapter used for a reconciliation.
type Spec struct {
	// Adapter provides model-specific reconciliation logic.
	Adapter Adapter
}
