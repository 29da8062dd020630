package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation only declares the fields the gateway checks. Anything else the
// client sends is stored as is.
type Donation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	DonorEmail string             `bson:"donorEmail" json:"donorEmail" validate:"required,email"`
	Amount     *float64           `bson:"amount,omitempty" json:"amount,omitempty" validate:"omitempty,gte=0"`
}
