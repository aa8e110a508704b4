package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Campaign is a winter clothing/fundraising drive. Field names follow the
// collection documents one-to-one, including the historical "donar" spelling,
// because the frontend reads them verbatim.
type Campaign struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CampaignName        string             `bson:"campaignName" json:"campaignName"`
	CampaignImg         string             `bson:"campaignImg" json:"campaignImg"`
	CampaignDescription string             `bson:"campaignDescription" json:"campaignDescription"`
	Division            string             `bson:"division" json:"division"`
	District            string             `bson:"district" json:"district"`
	Upazila             string             `bson:"upazila" json:"upazila"`
	Village             string             `bson:"village" json:"village"`
	MinDonation         string             `bson:"minDonation" json:"minDonation"`
	Clothes             string             `bson:"clothes" json:"clothes"`
	Target              string             `bson:"target" json:"target"`
	StartDate           string             `bson:"startDate" json:"startDate"`
	EndDate             string             `bson:"endDate" json:"endDate"`
	DonarCount          int64              `bson:"donarCount,omitempty" json:"donarCount,omitempty"`
}

// CampaignUpdate carries the fixed field set overwritten by an update. Every
// field is written unconditionally: a partial payload zeroes whatever it
// omits, donarCount included. That matches the deployed behavior and clients
// rely on sending complete documents.
type CampaignUpdate struct {
	CampaignName        string `json:"campaignName"`
	CampaignImg         string `json:"campaignImg"`
	CampaignDescription string `json:"campaignDescription"`
	Division            string `json:"division"`
	District            string `json:"district"`
	Upazila             string `json:"upazila"`
	Village             string `json:"village"`
	MinDonation         string `json:"minDonation"`
	Clothes             string `json:"clothes"`
	Target              string `json:"target"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	DonarCount          int64  `json:"donarCount"`
}
