package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"winterserver/internal/domain"
)

// CampaignRepositoryMongo implements CampaignRepository on the campaigns
// collection.
type CampaignRepositoryMongo struct {
	coll *mongo.Collection
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(db *mongo.Database) *CampaignRepositoryMongo {
	return &CampaignRepositoryMongo{coll: db.Collection("campaigns")}
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// ListAll returns every campaign in store-native order.
func (r *CampaignRepositoryMongo) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find campaigns: %w", err)
	}
	var items []domain.Campaign
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}
	return items, nil
}

// Search returns campaigns where any of the four display fields contains the
// term, case-insensitively. An empty term matches everything, which is how
// the search box clears itself.
func (r *CampaignRepositoryMongo) Search(ctx context.Context, term string) ([]domain.Campaign, error) {
	pattern := primitive.Regex{Pattern: term, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"campaignName": pattern},
		{"campaignDescription": pattern},
		{"upazila": pattern},
		{"village": pattern},
	}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search campaigns: %w", err)
	}
	var items []domain.Campaign
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}
	return items, nil
}

// GetByID returns one campaign or domain.ErrNotFound.
func (r *CampaignRepositoryMongo) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var c domain.Campaign
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find campaign %s: %w", id, err)
	}
	return &c, nil
}

// Create inserts a new campaign and returns its hex id.
func (r *CampaignRepositoryMongo) Create(ctx context.Context, c *domain.Campaign) (string, error) {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return "", fmt.Errorf("insert campaign: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update overwrites the full fixed field set unconditionally. Omitted payload
// fields arrive as zero values and are written as such.
func (r *CampaignRepositoryMongo) Update(ctx context.Context, id string, u *domain.CampaignUpdate) (int64, int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, 0, err
	}
	update := bson.M{"$set": bson.M{
		"campaignName":        u.CampaignName,
		"campaignImg":         u.CampaignImg,
		"campaignDescription": u.CampaignDescription,
		"division":            u.Division,
		"district":            u.District,
		"upazila":             u.Upazila,
		"village":             u.Village,
		"minDonation":         u.MinDonation,
		"clothes":             u.Clothes,
		"target":              u.Target,
		"startDate":           u.StartDate,
		"endDate":             u.EndDate,
		"donarCount":          u.DonarCount,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return 0, 0, fmt.Errorf("update campaign %s: %w", id, err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Delete hard-deletes one campaign. Donations referencing it are left in
// place; the listing path tolerates the orphans.
func (r *CampaignRepositoryMongo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete campaign %s: %w", id, err)
	}
	return res.DeletedCount, nil
}

// IncrementDonarCount bumps donarCount by one with $inc so two concurrent
// donations cannot lose an update.
func (r *CampaignRepositoryMongo) IncrementDonarCount(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"donarCount": 1}})
	if err != nil {
		return fmt.Errorf("increment donar count %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
