package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/api/apierr"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/api/request"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/api/response"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/ledger"
)

// LedgerHandler handles anchor-count mutation endpoints
type LedgerHandler struct {
	ledgerService *ledger.Service
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *ledger.Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// Increment handles POST /api/anchor-count/{player_id}
func (h *LedgerHandler) Increment(w http.ResponseWriter, r *http.Request) {
	id := playerID(r)

	count, err := h.ledgerService.Increment(r.Context(), id, 1)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CountRowFor(id, count))
}

// Decrement handles POST /api/anchor-count/{player_id}/decrement.
// A count already at 0 stays at 0.
func (h *LedgerHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	id := playerID(r)

	count, err := h.ledgerService.DecrementByOne(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CountRowFor(id, count))
}

// Update handles POST /api/anchor-count/{player_id}/update.
// The body must carry an integer amount; anything else is rejected
// rather than coerced.
func (h *LedgerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := playerID(r)

	var req request.UpdateCountRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			apierr.WriteError(w, apierr.NewValidationError("request body is required"))
			return
		}
		apierr.WriteError(w, apierr.NewValidationError("amount must be an integer"))
		return
	}

	if req.Amount == nil {
		apierr.WriteError(w, apierr.NewValidationError("amount is required"))
		return
	}

	count, err := h.ledgerService.ApplyDelta(r.Context(), id, *req.Amount)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CountRowFor(id, count))
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["player_id"])
}
