package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"winterserver/internal/domain"
)

// App bundles the repositories and logger behind the HTTP handlers.
type App struct {
	Campaigns domain.CampaignRepository
	Donations domain.DonationRepository
	Log       zerolog.Logger
}

func NewApp(campaigns domain.CampaignRepository, donations domain.DonationRepository, log zerolog.Logger) *App {
	return &App{Campaigns: campaigns, Donations: donations, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, msg string) {
	a.json(w, code, map[string]string{"error": kind, "message": msg})
}

// storeError maps repository failures onto the error envelope: malformed ids
// are the client's fault, missing records are 404, everything else is the
// store misbehaving.
func (a *App) storeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		a.error(w, http.StatusBadRequest, "invalid_id", "malformed id")
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "record not found")
	default:
		a.Log.Error().Err(err).Msg(msg)
		a.error(w, http.StatusInternalServerError, "internal", msg)
	}
}
