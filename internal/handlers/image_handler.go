package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UploadImage stores a campaign image and returns its URL, which the client
// then sends as the campaign's image field.
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	if h.images == nil {
		return respondError(c, fiber.StatusServiceUnavailable, "Image storage is not configured")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to retrieve image")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return respondError(c, fiber.StatusBadRequest, "Only image uploads are accepted")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Failed to open image")
	}
	defer file.Close()

	ctx, cancel := h.requestContext(c)
	defer cancel()

	url, err := h.images.Upload(ctx, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		log.Printf("image upload %q: %v", fileHeader.Filename, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to upload image")
	}

	return c.JSON(fiber.Map{"url": url})
}
