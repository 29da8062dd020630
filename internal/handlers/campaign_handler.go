package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/innofund/innofund-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ListCampaigns returns every campaign, optionally only those owned by ?email,
// ordered by minDonation (?sort=asc|desc, desc by default).
func (h *Handler) ListCampaigns(c *fiber.Ctx) error {
	filter, opts := campaignListQuery(c.Query("email"), c.Query("sort"))
	return h.findAll(c, h.campaigns, filter, opts)
}

// RunningCampaigns returns up to six campaigns that have not passed their deadline.
func (h *Handler) RunningCampaigns(c *fiber.Ctx) error {
	filter, opts := runningCampaignsQuery(h.now())
	return h.findAll(c, h.campaigns, filter, opts)
}

// GetCampaign returns one campaign by id.
func (h *Handler) GetCampaign(c *fiber.Ctx) error {
	return h.findByID(c, h.campaigns, "Campaign not found")
}

// CreateCampaign stores the request body as a new campaign.
func (h *Handler) CreateCampaign(c *fiber.Ctx) error {
	doc, ok, err := bindDocument(c, &models.Campaign{})
	if !ok {
		return err
	}
	return h.insert(c, h.campaigns, doc)
}

// UpdateCampaign overwrites the allow-listed fields sent in the body, creating
// the campaign if the id is unknown.
func (h *Handler) UpdateCampaign(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	doc, ok, err := bindDocument(c, &models.CampaignPatch{})
	if !ok {
		return err
	}

	// A null would bypass the pointer-based rules on CampaignPatch.
	if nulls := nullFields(doc); len(nulls) > 0 {
		fields := fiber.Map{}
		for _, field := range nulls {
			fields[field] = "notnull"
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	update, ok := campaignUpdate(doc)
	if !ok {
		return respondError(c, fiber.StatusBadRequest, "No updatable fields in request body")
	}

	return h.updateOne(c, h.campaigns, bson.M{"_id": id}, update, upsert())
}

// DeleteCampaign removes one campaign. Deleting an unknown id is not an error,
// the response just reports zero deletions.
func (h *Handler) DeleteCampaign(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.campaigns.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeError(c, err, "Failed to delete campaign")
	}

	return c.JSON(fiber.Map{
		"acknowledged": true,
		"deletedCount": res.DeletedCount,
	})
}
