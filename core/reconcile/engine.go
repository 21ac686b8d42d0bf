package reconcile

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// BuildPlan decides, for every keyed representation in items, whether it updates an
// existing record, creates a new one or is skipped. It does not mutate the store.
//
// Representations without a key are ignored. When several representations share a
// key the last one in items wins.
func BuildPlan(ctx context.Context, spec *Spec, db *gorm.DB, items []RemoteItem) (*Plan, error) {
	adapter := spec.Adapter

	byKey, summary := indexByKey(items, adapter)

	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	local := map[string]LocalItem{}
	if len(keys) > 0 {
		loaded, err := adapter.LoadLocalIndex(ctx, db, keys)
		if err != nil {
			return nil, fmt.Errorf("load local %s: %w", adapter.Name(), err)
		}
		if loaded != nil {
			local = loaded
		}
	}

	actions := make([]Action, 0, len(keys))
	for _, key := range keys {
		remote := byKey[key]

		existing, found := local[key]
		if !found {
			actions = append(actions, Action{Type: ActionCreateLocal, Key: key, Remote: remote})
			summary.Creates++
			continue
		}

		if err := adapter.CheckUpdate(existing, remote); err != nil {
			actions = append(actions, Action{
				Type:   ActionSkip,
				Key:    key,
				Reason: err.Error(),
				Remote: remote,
				Local:  existing,
			})
			summary.Skipped++
			continue
		}

		actions = append(actions, Action{Type: ActionUpdateLocal, Key: key, Remote: remote, Local: existing})
		summary.Updates++
	}

	return &Plan{Actions: actions, Summary: summary}, nil
}

// indexByKey maps keyed representations by key, last occurrence winning.
func indexByKey(items []RemoteItem, adapter Adapter) (map[string]RemoteItem, Summary) {
	summary := Summary{TotalItems: len(items)}
	byKey := make(map[string]RemoteItem, len(items))

	for _, item := range items {
		key, ok := adapter.ExtractKey(item)
		if !ok {
			summary.Unkeyed++
			continue
		}
		if _, seen := byKey[key]; seen {
			summary.Duplicates++
		}
		byKey[key] = item
	}

	return byKey, summary
}
