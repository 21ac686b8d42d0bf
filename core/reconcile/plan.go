package reconcile

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ApplyPlan executes the actions of plan in a single transaction.
// Returns the number of records written. Nothing is written on a dry run, and a failure
// rolls back the whole batch.
func ApplyPlan(ctx context.Context, spec *Spec, db *gorm.DB, plan *Plan, opts Options) (int, error) {
	if opts.DryRun {
		return 0, nil
	}

	mutator, ok := spec.Adapter.(Mutator)
	if !ok {
		return 0, fmt.Errorf("adapter %s does not implement Mutator interface", spec.Adapter.Name())
	}

	var executed int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := applyActions(ctx, mutator, tx, plan.Actions)
		executed = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return executed, nil
}

// Reconcile plans and applies a batch inside one transaction, so the records read
// while planning are the ones written.
func Reconcile(ctx context.Context, spec *Spec, db *gorm.DB, items []RemoteItem, opts Options) (*Plan, int, error) {
	if opts.DryRun {
		plan, err := BuildPlan(ctx, spec, db.WithContext(ctx), items)
		return plan, 0, err
	}

	mutator, ok := spec.Adapter.(Mutator)
	if !ok {
		return nil, 0, fmt.Errorf("adapter %s does not implement Mutator interface", spec.Adapter.Name())
	}

	var (
		plan     *Plan
		executed int
	)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = BuildPlan(ctx, spec, tx, items)
		if err != nil {
			return err
		}
		executed, err = applyActions(ctx, mutator, tx, plan.Actions)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return plan, executed, nil
}

func applyActions(ctx context.Context, mutator Mutator, tx *gorm.DB, actions []Action) (int, error) {
	executed := 0
	var creates []RemoteItem

	for _, action := range actions {
		switch action.Type {
		case ActionUpdateLocal:
			if err := mutator.UpdateLocal(ctx, tx, action.Local, action.Remote); err != nil {
				return executed, fmt.Errorf("failed to update %s: %w", action.Key, err)
			}
			executed++
		case ActionCreateLocal:
			creates = append(creates, action.Remote)
		}
	}

	if len(creates) == 0 {
		return executed, nil
	}

	if batcher, ok := mutator.(BatchCreator); ok {
		if err := batcher.CreateLocalBatch(ctx, tx, creates); err != nil {
			return executed, fmt.Errorf("failed to batch create: %w", err)
		}
		return executed + len(creates), nil
	}

	for _, remote := range creates {
		if err := mutator.CreateLocal(ctx, tx, remote); err != nil {
			key, _ := mutator.ExtractKey(remote)
			return executed, fmt.Errorf("failed to create %s: %w", key, err)
		}
		executed++
	}
	return executed, nil
}
