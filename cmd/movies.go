package cmd

import (
	"fmt"
	"strings"

	"movie-manager/core/remote"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// moviesCmd is the parent command for local movie operations.
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Manage the local movie list",
	Long: `Add, list, toggle and delete movies. Every change is written locally first and
then mirrored to the remote store; the command waits for the remote call before exiting.`,
}

var moviesAddCmd = &cobra.Command{
	Use:   "add [title...]",
	Short: "Add a movie",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.Close()

		movie, err := a.movies.CreateMovie(cmd.Context(), strings.Join(args, " "), remoteResult(a.logger, "put"))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), movie)
	},
}

var moviesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.Close()

		list, err := a.movies.ListMovies(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), list)
	},
}

var unwatched bool

var moviesWatchedCmd = &cobra.Command{
	Use:   "watched [identifier]",
	Short: "Mark a movie as watched (or unwatched with --unset)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.Close()

		movie, err := a.movies.SetWatched(cmd.Context(), args[0], !unwatched, remoteResult(a.logger, "put"))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), movie)
	},
}

var moviesDeleteCmd = &cobra.Command{
	Use:   "delete [identifier]",
	Short: "Delete a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.movies.DeleteMovie(cmd.Context(), args[0], remoteResult(a.logger, "delete")); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return err
	},
}

// remoteResult logs the outcome of a background remote call.
func remoteResult(l *zap.Logger, op string) remote.Completion {
	return func(err error) {
		if err != nil {
			l.Warn("Remote "+op+" failed; local change kept", zap.Error(err))
			return
		}
		l.Info("Remote " + op + " succeeded")
	}
}

func init() {
	moviesWatchedCmd.Flags().BoolVar(&unwatched, "unset", false, "Mark the movie as not watched")

	moviesCmd.AddCommand(moviesAddCmd, moviesListCmd, moviesWatchedCmd, moviesDeleteCmd)
	RootCmd.AddCommand(moviesCmd)
}
