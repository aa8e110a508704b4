package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Donation is a single contribution against one campaign. ItemID holds the
// campaign id as a plain hex string; donar listings match on string equality.
type Donation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ItemID       string             `bson:"itemId" json:"itemId"`
	DonationDate string             `bson:"donationDate" json:"donationDate"`
	DonarName    string             `bson:"donarName,omitempty" json:"donarName,omitempty"`
	DonarEmail   string             `bson:"donarEmail,omitempty" json:"donarEmail,omitempty"`
	Amount       string             `bson:"amount,omitempty" json:"amount,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	IsDelete     bool               `bson:"isDelete,omitempty" json:"isDelete,omitempty"`

	// Denormalized campaign fields, filled in by the listing path when the
	// referenced campaign still exists. Never persisted.
	CampaignName string `bson:"campaignName,omitempty" json:"campaignName,omitempty"`
	District     string `bson:"district,omitempty" json:"district,omitempty"`
	Upazila      string `bson:"upazila,omitempty" json:"upazila,omitempty"`
}
