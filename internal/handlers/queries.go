package handlers

import (
	"strings"
	"time"

	"github.com/innofund/innofund-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// runningCampaignLimit caps /running-campaigns.
const runningCampaignLimit = 6

// campaignListQuery filters campaigns by owner email when one is given and
// sorts them by minimum donation, highest first unless order is "asc".
func campaignListQuery(email, order string) (bson.M, *options.FindOptions) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	direction := -1
	if strings.EqualFold(order, "asc") {
		direction = 1
	}

	return filter, options.Find().SetSort(bson.D{{Key: "minDonation", Value: direction}})
}

// runningCampaignsQuery matches campaigns whose deadline is today or later.
func runningCampaignsQuery(now time.Time) (bson.M, *options.FindOptions) {
	filter := bson.M{"deadline": bson.M{"$gte": now.Format(models.DeadlineLayout)}}
	return filter, options.Find().SetLimit(runningCampaignLimit)
}

func donationFilter(email string) bson.M {
	if email == "" {
		return bson.M{}
	}
	return bson.M{"donorEmail": email}
}

// campaignUpdate keeps only the allow-listed fields present in body. ok is
// false when nothing is left to set.
func campaignUpdate(body bson.M) (update bson.M, ok bool) {
	set := bson.M{}
	for _, field := range models.CampaignPatchFields {
		if v, present := body[field]; present {
			set[field] = v
		}
	}
	if len(set) == 0 {
		return nil, false
	}
	return bson.M{"$set": set}, true
}

// nullFields lists the allow-listed fields body explicitly sets to null.
func nullFields(body bson.M) []string {
	var nulls []string
	for _, field := range models.CampaignPatchFields {
		if v, present := body[field]; present && v == nil {
			nulls = append(nulls, field)
		}
	}
	return nulls
}

func upsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
