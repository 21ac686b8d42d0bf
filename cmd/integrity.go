package cmd

import (
	"fmt"

	"movie-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and the backup bucket",
	Long: `Checks that the movie tables match their models and that the backup bucket exists.
With --fix a missing bucket is created.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.Close()

		svc := integrity.NewService(a.storage, a.cfg.Storage, a.db, a.logger)
		report := svc.CheckAll(ctx)

		if fixFlag && report.Storage != nil && !report.Storage.Exists {
			a.logger.Info("Attempting to create missing bucket", zap.String("bucket", report.Storage.Bucket))
			if err := svc.FixStorage(ctx); err != nil {
				return err
			}
			report = svc.CheckAll(ctx)
		}

		if err := printJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
		if !report.Healthy {
			return fmt.Errorf("integrity checks failed")
		}
		a.logger.Info("All integrity checks passed")
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the backup bucket when it is missing")
	RootCmd.AddCommand(integrityCmd)
}
