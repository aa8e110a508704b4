package domain

import "context"

// CampaignRepository defines access methods for campaign documents.
type CampaignRepository interface {
	ListAll(ctx context.Context) ([]Campaign, error)
	Search(ctx context.Context, term string) ([]Campaign, error)
	GetByID(ctx context.Context, id string) (*Campaign, error)
	Create(ctx context.Context, c *Campaign) (string, error)
	Update(ctx context.Context, id string, u *CampaignUpdate) (matched, modified int64, err error)
	Delete(ctx context.Context, id string) (deleted int64, err error)
	// IncrementDonarCount bumps the denormalized counter atomically at the
	// store so concurrent donations cannot lose an update.
	IncrementDonarCount(ctx context.Context, id string) error
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Create(ctx context.Context, d *Donation) (string, error)
	ListAll(ctx context.Context) ([]Donation, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]Donation, error)
	FlagDeleted(ctx context.Context, id string) (matched, modified int64, err error)
}
