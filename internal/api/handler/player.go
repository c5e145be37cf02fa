package handler

import (
	"net/http"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/api/apierr"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/api/response"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/roster"
)

// PlayerHandler handles roster listing
type PlayerHandler struct {
	rosterService *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/players.
// Listing lazily creates zero ledger rows for first-seen players.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.rosterService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(rows))
}
