package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"winterserver/internal/domain"
)

// DonationRepositoryMongo implements DonationRepository on the donations
// collection.
type DonationRepositoryMongo struct {
	coll *mongo.Collection
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(db *mongo.Database) *DonationRepositoryMongo {
	return &DonationRepositoryMongo{coll: db.Collection("donations")}
}

// Create inserts a new donation record and returns its hex id.
func (r *DonationRepositoryMongo) Create(ctx context.Context, d *domain.Donation) (string, error) {
	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return "", fmt.Errorf("insert donation: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListAll returns every donation, flagged ones included.
func (r *DonationRepositoryMongo) ListAll(ctx context.Context) ([]domain.Donation, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find donations: %w", err)
	}
	var items []domain.Donation
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode donations: %w", err)
	}
	return items, nil
}

// ListByCampaign returns donations whose itemId equals the given campaign id.
// The reference is stored as a plain string, so this is string equality and
// no id validation happens here.
func (r *DonationRepositoryMongo) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	cur, err := r.coll.Find(ctx, bson.M{"itemId": campaignID})
	if err != nil {
		return nil, fmt.Errorf("find donations for campaign %s: %w", campaignID, err)
	}
	var items []domain.Donation
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode donations: %w", err)
	}
	return items, nil
}

// FlagDeleted sets the soft-delete flag on one donation. Setting it twice is
// a no-op; the record is never removed and listings do not filter on it.
func (r *DonationRepositoryMongo) FlagDeleted(ctx context.Context, id string) (int64, int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, 0, err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"isDelete": true}})
	if err != nil {
		return 0, 0, fmt.Errorf("flag donation %s: %w", id, err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}
