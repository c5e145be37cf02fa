package response

import (
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// PlayerRow is a roster entry in API responses.
// Field casing is what the frontend expects.
type PlayerRow struct {
	PlayerID    string `json:"playerId"`
	Nickname    string `json:"nickname"`
	Avatar      string `json:"avatar"`
	Country     string `json:"country"`
	AnchorCount int    `json:"anchorCount"`
}

// PlayerRowFromModel converts a model.PlayerRow to a response PlayerRow
func PlayerRowFromModel(row model.PlayerRow) PlayerRow {
	return PlayerRow{
		PlayerID:    string(row.ID),
		Nickname:    row.Nickname,
		Avatar:      row.Avatar,
		Country:     row.Country,
		AnchorCount: row.AnchorCount,
	}
}

// PlayersFromModel converts a roster listing
func PlayersFromModel(rows []model.PlayerRow) []PlayerRow {
	out := make([]PlayerRow, len(rows))
	for i, row := range rows {
		out[i] = PlayerRowFromModel(row)
	}
	return out
}

// CountRow is an updated ledger row returned by mutation endpoints.
type CountRow struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// CountRowFor builds the mutation response for a player
func CountRowFor(id model.PlayerID, count int) CountRow {
	return CountRow{
		PlayerID: string(id),
		Count:    count,
	}
}
