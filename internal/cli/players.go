package cli

import (
	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List the tracked roster with anchor counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []PlayerRow

			if err := client.Get("/api/players", &rows); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(rows)
			return nil
		},
	}
}
