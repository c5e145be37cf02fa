package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/scoring"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session selection and scoring commands",
		Long: `Session commands keep their state in a local file (see --session-file).

A session starts in selecting mode: toggle players in and out, then start it
once at least four are selected. Scored events apply count deltas to the
active roster through the API.`,
	}

	cmd.AddCommand(newSessionToggleCmd())
	cmd.AddCommand(newSessionAllCmd())
	cmd.AddCommand(newSessionClearCmd())
	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionNewCmd())
	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionAnchorsCmd())
	cmd.AddCommand(newSessionEventCmd())

	return cmd
}

// fetchRoster loads the tracked roster from the API
func fetchRoster() ([]PlayerRow, error) {
	var rows []PlayerRow
	if err := client.Get("/api/players", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func nicknameIndex(rows []PlayerRow) map[string]string {
	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.PlayerID] = row.Nickname
	}
	return names
}

// resolvePlayer matches an argument against roster IDs and nicknames
func resolvePlayer(rows []PlayerRow, arg string) (string, error) {
	for _, row := range rows {
		if row.PlayerID == arg || strings.EqualFold(row.Nickname, arg) {
			return row.PlayerID, nil
		}
	}
	return "", fmt.Errorf("unknown player %q", arg)
}

func newSessionToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <player>",
		Short: "Toggle a player in or out of the selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := cfg.LoadSession()
			if err != nil {
				return err
			}

			rows, err := fetchRoster()
			if err != nil {
				return err
			}
			id, err := resolvePlayer(rows, args[0])
			if err != nil {
				return err
			}

			if !state.Toggle(model.PlayerID(id)) {
				return fmt.Errorf("selection is locked while a session is active")
			}
			if err := cfg.SaveSession(state); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(SessionView{State: state, Nicknames: nicknameIndex(rows)})
			return nil
		},
	}
}

func newSessionAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Select the entire tracked roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := cfg.LoadSession()
			if err != nil {
				return err
			}

			rows, err := fetchRoster()
			if err != nil {
				return err
			}
			ids := make([]model.PlayerID, len(rows))
			for i, row := range rows {
				ids[i] = model.PlayerID(row.PlayerID)
			}

			if !state.SelectAll(ids) {
				return fmt.Errorf("selection is locked while a session is active")
			}
			if err := cfg.SaveSession(state); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(SessionView{State: state, Nicknames: nicknameIndex(rows)})
			return nil
		},
	}
}

func newSessionClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := cfg.LoadSession()
			if err != nil {
				return err
			}

			if !state.Clear() {
				return fmt.Errorf("selection is locked while a session is active")
			}
			if err := cfg.SaveSession(state); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Selection cleared")
			return nil
		},
	}
}

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a session from the current selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := cfg.LoadSession()
			if err != nil {
				return err
			}

			if !state.Start() {
				return fmt.Errorf("need at least %d selected players to start", model.MinActivePlayers)
			}
			if err := cfg.SaveSession(state); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(SessionView{State: state})
			return nil
		},
	}
}

func newSessionNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Discard the session and return to selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := cfg.LoadSession()
			if err != nil {
				return err
			}

			state.NewRoster()
			if err := cfg.SaveSession(state); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session reset; selection is empty")
			return nil
		},
	}
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := cfg.LoadSession()
			if err != nil {
				return err
			}

			rows, err := fetchRoster()
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(SessionView{State: state, Nicknames: nicknameIndex(rows)})
			return nil
		},
	}
}

func newSessionAnchorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anchors",
		Short: "Show who currently holds the anchor",
		Long: `Shows the players with the lowest anchor count. While a session is
active only the active roster is considered; otherwise the whole tracked
roster is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := cfg.LoadSession()
			if err != nil {
				return err
			}

			rows, err := fetchRoster()
			if err != nil {
				return err
			}

			pool := make([]model.PlayerID, 0, len(rows))
			counts := make(map[model.PlayerID]int, len(rows))
			byID := make(map[string]PlayerRow, len(rows))
			for _, row := range rows {
				byID[row.PlayerID] = row
				counts[model.PlayerID(row.PlayerID)] = row.AnchorCount
			}

			if state.Mode == model.SessionModeActive {
				pool = append(pool, state.ActiveRoster...)
			} else {
				for _, row := range rows {
					pool = append(pool, model.PlayerID(row.PlayerID))
				}
			}

			view := AnchorsView{}
			for _, id := range model.Anchors(pool, counts) {
				view.Anchors = append(view.Anchors, byID[string(id)])
			}

			out := NewOutput(cfg.Output)
			out.Print(view)
			return nil
		},
	}
}

func newSessionEventCmd() *cobra.Command {
	kinds := make([]string, 0)
	for _, k := range scoring.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:   "event <player> <kind>",
		Short: "Record a scored event for an active-roster player",
		Long:  "Record a scored event. Kinds: " + strings.Join(kinds, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := cfg.LoadSession()
			if err != nil {
				return err
			}
			if state.Mode != model.SessionModeActive {
				return fmt.Errorf("no active session; run 'anchorctl session start' first")
			}

			rows, err := fetchRoster()
			if err != nil {
				return err
			}
			id, err := resolvePlayer(rows, args[0])
			if err != nil {
				return err
			}
			if !state.InActiveRoster(model.PlayerID(id)) {
				return fmt.Errorf("player %q is not in the active roster", args[0])
			}

			delta, err := scoring.Delta(scoring.EventKind(args[1]))
			if err != nil {
				return err
			}

			req := map[string]int{"amount": delta}
			var result CountRow

			if err := client.Post("/api/anchor-count/"+id+"/update", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}
