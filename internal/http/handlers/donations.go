package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"winterserver/internal/domain"
)

// RecordDonation is the donation workflow: stamp the payload with the server
// clock, check the referenced campaign exists, bump its donor counter, then
// insert the donation. The existence check runs before any write, so a bad
// or missing campaign id fails the whole operation with nothing persisted.
func (a *App) RecordDonation(w http.ResponseWriter, r *http.Request) {
	var d domain.Donation
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	d.ID = primitive.NilObjectID
	d.DonationDate = time.Now().UTC().Format(time.RFC3339)
	// Enrichment fields belong to the listing path, never the stored record.
	d.CampaignName, d.District, d.Upazila = "", "", ""

	ctx := r.Context()
	if _, err := a.Campaigns.GetByID(ctx, d.ItemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "campaign_not_found", "campaign does not exist")
			return
		}
		a.storeError(w, err, "failed to load campaign for donation")
		return
	}

	// The counter moves with $inc at the store, so concurrent donations to
	// the same campaign both land. A campaign hard-deleted between the check
	// and here surfaces as campaign_not_found before the donation is written.
	if err := a.Campaigns.IncrementDonarCount(ctx, d.ItemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "campaign_not_found", "campaign does not exist")
			return
		}
		a.storeError(w, err, "failed to increment donar count")
		return
	}

	id, err := a.Donations.Create(ctx, &d)
	if err != nil {
		// No compensation for the counter bump: the increment and the insert
		// are separate store operations and this path drifts the counter
		// high by one. Accepted; see DESIGN.md.
		a.storeError(w, err, "failed to record donation")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"acknowledged": true, "insertedId": id})
}

// ListDonations returns every donation, each enriched with the name,
// district, and upazila of its campaign when that campaign still exists.
// Orphans are returned as stored, with the three fields absent.
func (a *App) ListDonations(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.ListAll(r.Context())
	if err != nil {
		a.storeError(w, err, "failed to list donations")
		return
	}
	for i := range items {
		c, err := a.Campaigns.GetByID(r.Context(), items[i].ItemID)
		if err != nil {
			continue
		}
		items[i].CampaignName = c.CampaignName
		items[i].District = c.District
		items[i].Upazila = c.Upazila
	}
	if items == nil {
		items = []domain.Donation{}
	}
	a.json(w, http.StatusOK, items)
}

// ListDonationsByCampaign returns the donations for one campaign, without
// enrichment. Soft-deleted records are included.
func (a *App) ListDonationsByCampaign(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.ListByCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err, "failed to list donations for campaign")
		return
	}
	if items == nil {
		items = []domain.Donation{}
	}
	a.json(w, http.StatusOK, items)
}

// FlagDonationDeleted sets the soft-delete flag on one donation. The record
// stays in the collection and keeps showing up in listings.
func (a *App) FlagDonationDeleted(w http.ResponseWriter, r *http.Request) {
	matched, modified, err := a.Donations.FlagDeleted(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err, "failed to flag donation")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"acknowledged":  true,
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}
