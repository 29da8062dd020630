package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Password       string             `bson:"password,omitempty" json:"password,omitempty"`
	LastSigninTime string             `bson:"lastSigninTime,omitempty" json:"lastSigninTime,omitempty"`
}

// UserReplace is the body of PUT /users/:id.
type UserReplace struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSignin is the body of PATCH /users.
type UserSignin struct {
	Email          string `json:"email" validate:"required,email"`
	LastSigninTime string `json:"lastSigninTime" validate:"required"`
}
