package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"movie-manager/core/reconcile"
	"movie-manager/feature/movies/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile movies command
	reconcileFile string
	dryRunMovies  bool
	yesConfirm    bool

	confirmationIn io.Reader = os.Stdin
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile remote representations into the local store",
}

// moviesReconcileCmd merges a batch of representations into the local movies.
var moviesReconcileCmd = &cobra.Command{
	Use:   "movies",
	Short: "Reconcile movies (report + optionally apply)",
	Long: `Merge a batch of movie representations into the local store by identifier.
Matched movies are overwritten, unmatched ones are created. Representations without
an identifier are ignored, and matched ones without a watched flag are skipped.

The batch is read from --file (use "-" for stdin) or, by default, fetched from the
remote store.

Examples:
  # Report only
  reconcile movies --dry-run

  # Apply the remote collection with auto-confirm
  reconcile movies --yes

  # Apply a local file
  reconcile movies --file movies.json --yes`,
	RunE: runMoviesReconcile,
}

func init() {
	reconcileCmd.AddCommand(moviesReconcileCmd)

	moviesReconcileCmd.Flags().StringVar(&reconcileFile, "file", "", "Read representations from a JSON file instead of the remote store")
	moviesReconcileCmd.Flags().BoolVar(&dryRunMovies, "dry-run", false, "Only print the plan")
	moviesReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runMoviesReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	reps, err := readRepresentations(cmd, a)
	if err != nil {
		return err
	}

	a.logger.Info("Planning reconciliation...", zap.Int("representations", len(reps)))
	planned, err := a.movies.Reconcile(ctx, reps, true)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}
	printReconcileReport(a.logger, planned.Plan)

	if dryRunMovies {
		a.logger.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if planned.Plan.Summary.Updates+planned.Plan.Summary.Creates == 0 {
		a.logger.Info("No actions required.")
		return nil
	}
	if !confirmAction(cmd.OutOrStdout()) {
		a.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	a.logger.Info("Applying actions...")
	result, err := a.movies.Reconcile(ctx, reps, false)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	a.logger.Info("Successfully executed actions", zap.Int("count", result.Executed))
	return nil
}

func readRepresentations(cmd *cobra.Command, a *application) ([]models.MovieRepresentation, error) {
	if reconcileFile == "" {
		return a.movies.FetchRemote(cmd.Context())
	}

	var r io.Reader
	if reconcileFile == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(reconcileFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", reconcileFile, err)
		}
		defer f.Close()
		r = f
	}

	var reps []models.MovieRepresentation
	if err := json.NewDecoder(r).Decode(&reps); err != nil {
		return nil, fmt.Errorf("failed to decode representations: %w", err)
	}
	return reps, nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("total_items", s.TotalItems),
		zap.Int("unkeyed", s.Unkeyed),
		zap.Int("duplicates", s.Duplicates),
		zap.Int("updates", s.Updates),
		zap.Int("creates", s.Creates),
		zap.Int("skipped", s.Skipped),
	)

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmAction prompts the user for confirmation or uses --yes flag.
func confirmAction(w io.Writer) bool {
	if yesConfirm {
		fmt.Fprintln(w, "Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(w, "Type 'yes' to apply these changes: ")
	response, err := bufio.NewReader(confirmationIn).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
