package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeadlineLayout is the calendar-date format campaign deadlines are stored in.
const DeadlineLayout = "2006-01-02"

type Campaign struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty" validate:"omitempty,url"`
	Deadline    string             `bson:"deadline" json:"deadline" validate:"required,datetime=2006-01-02"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	MinDonation float64            `bson:"minDonation" json:"minDonation" validate:"required,gt=0"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	Username    string             `bson:"username,omitempty" json:"username,omitempty"`
}

// CampaignPatch is the partial shape accepted by PATCH /campaigns/:id. Every
// field is optional but must be well formed when sent.
type CampaignPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Image       *string  `json:"image" validate:"omitempty,url"`
	Deadline    *string  `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Category    *string  `json:"category"`
	MinDonation *float64 `json:"minDonation" validate:"omitempty,gt=0"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Username    *string  `json:"username"`
}

// CampaignPatchFields is the allow-list of fields a campaign update may overwrite.
var CampaignPatchFields = []string{
	"title",
	"description",
	"image",
	"deadline",
	"category",
	"minDonation",
	"email",
	"username",
}
