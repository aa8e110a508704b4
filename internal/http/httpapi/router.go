package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"winterserver/internal/http/handlers"
	"winterserver/internal/middleware"
)

// NewRouter binds the HTTP surface. Paths are the ones the deployed frontend
// already calls and are kept verbatim, donar spelling included.
func NewRouter(app *handlers.App, logger zerolog.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(allowedOrigins),
	)

	r.Get("/", app.Root)
	r.Get("/healthz", app.Health)

	r.Get("/allCampaign", app.ListCampaigns)
	r.Get("/search", app.SearchCampaigns)
	r.Get("/sort", app.SortCampaigns)
	r.Get("/campaign/{id}", app.GetCampaign)
	r.Post("/addCampaign", app.CreateCampaign)
	r.Put("/itemUpdate/{id}", app.UpdateCampaign)
	r.Delete("/item/delete/{id}", app.DeleteCampaign)

	r.Post("/donation", app.RecordDonation)
	r.Get("/allDonations", app.ListDonations)
	r.Get("/donar/{id}", app.ListDonationsByCampaign)
	r.Patch("/historyDelete/{id}", app.FlagDonationDeleted)

	return r
}
