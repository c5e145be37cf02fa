package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []PlayerRow:
		o.printPlayerRows(v)
	case CountRow:
		o.printCountRow(v)
	case SessionView:
		o.printSessionView(v)
	case AnchorsView:
		o.printAnchorsView(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayerRow response type (matches API)
type PlayerRow struct {
	PlayerID    string `json:"playerId"`
	Nickname    string `json:"nickname"`
	Avatar      string `json:"avatar"`
	Country     string `json:"country"`
	AnchorCount int    `json:"anchorCount"`
}

// CountRow response type
type CountRow struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// SessionView pairs the local session state with resolved nicknames
type SessionView struct {
	State     model.SessionSelection `json:"state"`
	Nicknames map[string]string      `json:"nicknames,omitempty"`
}

// AnchorsView lists the players currently holding the anchor
type AnchorsView struct {
	Anchors []PlayerRow `json:"anchors"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayerRows(rows []PlayerRow) {
	for _, row := range rows {
		country := row.Country
		if country == "" {
			country = "??"
		}
		fmt.Printf("%-20s [%s] count=%d (%s)\n", row.Nickname, strings.ToUpper(country), row.AnchorCount, row.PlayerID)
	}
}

func (o *Output) printCountRow(c CountRow) {
	fmt.Printf("%s: %d\n", c.PlayerID, c.Count)
}

func (o *Output) printSessionView(v SessionView) {
	fmt.Printf("Mode: %s\n", v.State.Mode)

	name := func(id model.PlayerID) string {
		if n, ok := v.Nicknames[string(id)]; ok {
			return fmt.Sprintf("%s (%s)", n, id)
		}
		return string(id)
	}

	fmt.Printf("Selected (%d):\n", len(v.State.Selected))
	for _, id := range v.State.Selected {
		fmt.Printf("  - %s\n", name(id))
	}

	if len(v.State.ActiveRoster) > 0 {
		fmt.Printf("Active roster (%d):\n", len(v.State.ActiveRoster))
		for _, id := range v.State.ActiveRoster {
			fmt.Printf("  - %s\n", name(id))
		}
	}
}

func (o *Output) printAnchorsView(v AnchorsView) {
	if len(v.Anchors) == 0 {
		fmt.Println("No anchors")
		return
	}
	fmt.Printf("Anchors (%d):\n", len(v.Anchors))
	for _, row := range v.Anchors {
		fmt.Printf("  - %s count=%d\n", row.Nickname, row.AnchorCount)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
