package handlers

import "github.com/gofiber/fiber/v2"

// Register mounts every route on r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	// Campaign Routes
	r.Get("/campaigns", h.ListCampaigns)
	r.Post("/campaigns", h.CreateCampaign)
	r.Get("/running-campaigns", h.RunningCampaigns)
	r.Get("/campaigns/:id", h.GetCampaign)
	r.Patch("/campaigns/:id", h.UpdateCampaign)
	r.Delete("/campaigns/:id", h.DeleteCampaign)

	// Donation Routes
	r.Get("/donations", h.ListDonations)
	r.Post("/donations", h.CreateDonation)

	// User Routes, PATCH matches on the body's email rather than an id
	r.Get("/users", h.ListUsers)
	r.Post("/users", h.CreateUser)
	r.Patch("/users", h.RecordSignin)
	r.Get("/users/:id", h.GetUser)
	r.Put("/users/:id", h.ReplaceUser)

	r.Post("/images", h.UploadImage)
}
