package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"winterserver/internal/domain"
)

// ListCampaigns returns every campaign in store order.
func (a *App) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	items, err := a.Campaigns.ListAll(r.Context())
	if err != nil {
		a.storeError(w, err, "failed to list campaigns")
		return
	}
	if items == nil {
		items = []domain.Campaign{}
	}
	a.json(w, http.StatusOK, items)
}

// SearchCampaigns does a case-insensitive substring match over four fields.
// An empty query matches every campaign.
func (a *App) SearchCampaigns(w http.ResponseWriter, r *http.Request) {
	items, err := a.Campaigns.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		a.storeError(w, err, "failed to search campaigns")
		return
	}
	if items == nil {
		items = []domain.Campaign{}
	}
	a.json(w, http.StatusOK, items)
}

// SortCampaigns loads the whole table and sorts it in memory. Fine at the
// scale this app runs at; revisit with a store-side sort if the collection
// ever grows past a few thousand documents.
func (a *App) SortCampaigns(w http.ResponseWriter, r *http.Request) {
	items, err := a.Campaigns.ListAll(r.Context())
	if err != nil {
		a.storeError(w, err, "failed to sort campaigns")
		return
	}
	sortCampaigns(items, r.URL.Query().Get("donationAmount"))
	if items == nil {
		items = []domain.Campaign{}
	}
	a.json(w, http.StatusOK, items)
}

// sortCampaigns orders ascending by numeric minDonation when mode is
// "amount", otherwise descending by end date. Both sorts are stable so ties
// keep store order.
func sortCampaigns(items []domain.Campaign, mode string) {
	if mode == "amount" {
		sort.SliceStable(items, func(i, j int) bool {
			return parseMinDonation(items[i].MinDonation) < parseMinDonation(items[j].MinDonation)
		})
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return parseEndDate(items[i].EndDate).After(parseEndDate(items[j].EndDate))
	})
}

// parseMinDonation maps unparseable amounts to math.MinInt so they group at
// the front of an ascending sort.
func parseMinDonation(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return math.MinInt
	}
	return n
}

// parseEndDate accepts the two formats the frontend has produced over time.
// Unparseable dates come back as the zero time and sink to the end of the
// descending sort.
func parseEndDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// GetCampaign is a point lookup by hex id.
func (a *App) GetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := a.Campaigns.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err, "failed to load campaign")
		return
	}
	a.json(w, http.StatusOK, c)
}

// CreateCampaign inserts a campaign from the request body.
func (a *App) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var c domain.Campaign
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	id, err := a.Campaigns.Create(r.Context(), &c)
	if err != nil {
		a.storeError(w, err, "failed to create campaign")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"acknowledged": true, "insertedId": id})
}

// UpdateCampaign overwrites the fixed field set. Fields missing from the
// payload are written as zero values; callers send the complete document.
func (a *App) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var u domain.CampaignUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	matched, modified, err := a.Campaigns.Update(r.Context(), chi.URLParam(r, "id"), &u)
	if err != nil {
		a.storeError(w, err, "failed to update campaign")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"acknowledged":  true,
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}

// DeleteCampaign hard-deletes one campaign. Its donations stay behind as
// orphans and list unenriched.
func (a *App) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.Campaigns.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err, "failed to delete campaign")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"acknowledged": true, "deletedCount": deleted})
}
