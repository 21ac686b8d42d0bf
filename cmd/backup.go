package cmd

import (
	"fmt"

	"movie-manager/feature/backup"

	"github.com/spf13/cobra"
)

var dryRunImport bool

// backupCmd is the parent command for backup operations.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and restore movie backups in object storage",
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all movies to a new backup",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackup(func(a *application, svc *backup.Service) error {
			info, err := svc.Export(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info)
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackup(func(a *application, svc *backup.Service) error {
			backups, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), backups)
		})
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import [object]",
	Short: "Restore a backup through the reconciler",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackup(func(a *application, svc *backup.Service) error {
			result, err := svc.Import(cmd.Context(), args[0], dryRunImport)
			if err != nil {
				return err
			}
			printReconcileReport(a.logger, result.Plan)
			return printJSON(cmd.OutOrStdout(), result)
		})
	},
}

func withBackup(fn func(a *application, svc *backup.Service) error) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.storage == nil {
		return fmt.Errorf("storage is not configured")
	}
	return fn(a, backup.NewService(a.storage, a.cfg.Storage, a.movies, a.logger))
}

func init() {
	backupImportCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Only print the plan")

	backupCmd.AddCommand(backupExportCmd, backupListCmd, backupImportCmd)
	RootCmd.AddCommand(backupCmd)
}
