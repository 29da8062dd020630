package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/innofund/innofund-server/internal/models"
)

// ListDonations returns all donations, or only those whose donorEmail equals ?email.
func (h *Handler) ListDonations(c *fiber.Ctx) error {
	return h.findAll(c, h.donations, donationFilter(c.Query("email")))
}

// CreateDonation stores the request body as a new donation. Only donorEmail
// is required; any other field is kept as sent.
func (h *Handler) CreateDonation(c *fiber.Ctx) error {
	doc, ok, err := bindDocument(c, &models.Donation{})
	if !ok {
		return err
	}
	return h.insert(c, h.donations, doc)
}
