package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"winterserver/internal/domain"
)

// fakeCampaigns is an in-memory CampaignRepository. It keeps insertion order
// so store-order expectations hold, and guards state with a mutex so the
// concurrency test can hammer it.
type fakeCampaigns struct {
	mu    sync.Mutex
	items map[string]*domain.Campaign
	order []string
	err   error
}

func newFakeCampaigns() *fakeCampaigns {
	return &fakeCampaigns{items: map[string]*domain.Campaign{}}
}

func (f *fakeCampaigns) add(c domain.Campaign) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	id := c.ID.Hex()
	f.items[id] = &c
	f.order = append(f.order, id)
	return id
}

func (f *fakeCampaigns) get(id string) (domain.Campaign, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return domain.Campaign{}, false
	}
	return *c, true
}

func (f *fakeCampaigns) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Campaign
	for _, id := range f.order {
		out = append(out, *f.items[id])
	}
	return out, nil
}

func (f *fakeCampaigns) Search(ctx context.Context, term string) ([]domain.Campaign, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	term = strings.ToLower(term)
	var out []domain.Campaign
	for _, id := range f.order {
		c := f.items[id]
		haystack := strings.ToLower(c.CampaignName + " " + c.CampaignDescription + " " + c.Upazila + " " + c.Village)
		if term == "" || strings.Contains(haystack, term) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCampaigns) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	if f.err != nil {
		return nil, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[oid.Hex()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (f *fakeCampaigns) Create(ctx context.Context, c *domain.Campaign) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.add(*c), nil
}

func (f *fakeCampaigns) Update(ctx context.Context, id string, u *domain.CampaignUpdate) (int64, int64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[oid.Hex()]
	if !ok {
		return 0, 0, nil
	}
	c.CampaignName = u.CampaignName
	c.CampaignImg = u.CampaignImg
	c.CampaignDescription = u.CampaignDescription
	c.Division = u.Division
	c.District = u.District
	c.Upazila = u.Upazila
	c.Village = u.Village
	c.MinDonation = u.MinDonation
	c.Clothes = u.Clothes
	c.Target = u.Target
	c.StartDate = u.StartDate
	c.EndDate = u.EndDate
	c.DonarCount = u.DonarCount
	return 1, 1, nil
}

func (f *fakeCampaigns) Delete(ctx context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[oid.Hex()]; !ok {
		return 0, nil
	}
	delete(f.items, oid.Hex())
	for i, existing := range f.order {
		if existing == oid.Hex() {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (f *fakeCampaigns) IncrementDonarCount(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[oid.Hex()]
	if !ok {
		return domain.ErrNotFound
	}
	c.DonarCount++
	return nil
}

// fakeDonations is an in-memory DonationRepository.
type fakeDonations struct {
	mu    sync.Mutex
	items []domain.Donation
	err   error
}

func (f *fakeDonations) Create(ctx context.Context, d *domain.Donation) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *d
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	f.items = append(f.items, stored)
	return stored.ID.Hex(), nil
}

func (f *fakeDonations) ListAll(ctx context.Context) ([]domain.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Donation(nil), f.items...), nil
}

func (f *fakeDonations) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Donation
	for _, d := range f.items {
		if d.ItemID == campaignID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDonations) FlagDeleted(ctx context.Context, id string) (int64, int64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == oid {
			if f.items[i].IsDelete {
				return 1, 0, nil
			}
			f.items[i].IsDelete = true
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

// withURLParam injects a chi route parameter for handlers called outside the
// router.
func withURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
