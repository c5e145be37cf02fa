package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Anchor count adjustment commands",
	}

	cmd.AddCommand(newCountBumpCmd())
	cmd.AddCommand(newCountDropCmd())
	cmd.AddCommand(newCountAdjustCmd())

	return cmd
}

func newCountBumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bump <player-id>",
		Short: "Increment a player's anchor count by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CountRow

			if err := client.Post("/api/anchor-count/"+args[0], nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCountDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop <player-id>",
		Short: "Decrement a player's anchor count by one (floors at zero)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CountRow

			if err := client.Post("/api/anchor-count/"+args[0]+"/decrement", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCountAdjustCmd() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "adjust <player-id>",
		Short: "Apply a signed delta to a player's anchor count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("amount") {
				return fmt.Errorf("--amount is required")
			}

			req := map[string]int{"amount": amount}
			var result CountRow

			if err := client.Post("/api/anchor-count/"+args[0]+"/update", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "Signed delta to apply (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
