package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/innofund/innofund-server/internal/db"
	"github.com/innofund/innofund-server/internal/utils"
)

// Root is the liveness probe. It never touches the store.
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.SendString("InnoFund is running...")
}

// Health pings every backing service concurrently.
func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	tasks := []utils.ParallelTask{
		{Name: "mongo", Run: func() error { return db.Ping(ctx, h.db.Client()) }},
	}
	if h.images != nil {
		tasks = append(tasks, utils.ParallelTask{
			Name: "images",
			Run:  func() error { return h.images.Ping(ctx) },
		})
	}

	checks := fiber.Map{}
	status, code := "ok", fiber.StatusOK
	for name, err := range utils.RunParallelTasks(tasks) {
		if err != nil {
			checks[name] = err.Error()
			status, code = "degraded", fiber.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{"status": status, "checks": checks})
}
