package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/api/handler"
	apimiddleware "github.com/preakznuffsaid/faceit-anchor-tracker/internal/api/middleware"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/middleware"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/ledger"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	RosterService *roster.Service
	LedgerService *ledger.Service

	// AdminPasswordHash gates the mutating routes when set (bcrypt)
	AdminPasswordHash string
}

// NewRouter creates a new API router with all routes configured.
// Paths are fixed; the frontend hardcodes them.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.RosterService)
	ledgerHandler := handler.NewLedgerHandler(cfg.LedgerService)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(apimiddleware.CORS)

	api.HandleFunc("/players", playerHandler.List).
		Methods(http.MethodGet, http.MethodOptions)

	// Mutations sit behind the admin gate; CORS runs first so
	// preflight requests never reach the gate
	counts := api.PathPrefix("/anchor-count").Subrouter()
	counts.Use(apimiddleware.AdminGate(cfg.AdminPasswordHash))
	counts.HandleFunc("/{player_id}", ledgerHandler.Increment).
		Methods(http.MethodPost, http.MethodOptions)
	counts.HandleFunc("/{player_id}/decrement", ledgerHandler.Decrement).
		Methods(http.MethodPost, http.MethodOptions)
	counts.HandleFunc("/{player_id}/update", ledgerHandler.Update).
		Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
