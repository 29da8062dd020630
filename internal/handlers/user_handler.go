package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/innofund/innofund-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ListUsers returns every user.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	return h.findAll(c, h.users, bson.M{})
}

// GetUser returns one user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	return h.findByID(c, h.users, "User not found")
}

// CreateUser stores the request body as a new user.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	doc, ok, err := bindDocument(c, &models.User{})
	if !ok {
		return err
	}
	return h.insert(c, h.users, doc)
}

// RecordSignin sets lastSigninTime on the user matching the body's email.
func (h *Handler) RecordSignin(c *fiber.Ctx) error {
	var req models.UserSignin
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	filter := bson.M{"email": req.Email}
	update := bson.M{"$set": bson.M{"lastSigninTime": req.LastSigninTime}}
	return h.updateOne(c, h.users, filter, update)
}

// ReplaceUser overwrites name, email and password, creating the user if the
// id is unknown.
func (h *Handler) ReplaceUser(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	var req models.UserReplace
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}}
	return h.updateOne(c, h.users, bson.M{"_id": id}, update, upsert())
}
