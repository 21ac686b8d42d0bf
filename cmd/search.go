package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd queries the catalog.
var searchCmd = &cobra.Command{
	Use:   "search [term...]",
	Short: "Search the movie catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.Close()

		results, err := a.movies.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), results)
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
}
