package archive

import (
	"lb-status/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the report archive.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Get("/", h.HandleList)
	group.Get("/bucket", h.HandleBucketCheck)
}

// HandleList lists archived reports.
// @Summary List Archived Reports
// @Description Lists report files uploaded to the archive bucket, optionally for one day.
// @Tags archive
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Success 200 {array} archive.Object
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects, err := h.service.List(c.Context(), c.Query("date"))
	if err != nil {
		if c.Query("date") != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Archive listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(objects)
}

// HandleBucketCheck checks and optionally creates the archive bucket.
// @Summary Check Archive Bucket
// @Description Checks that the archive bucket exists. Optionally creates it.
// @Tags archive
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} map[string]interface{} "Bucket Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if c.Query("fix") == "true" {
		created, err := h.service.EnsureBucket(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create bucket",
				"details": err.Error(),
			})
		}
		status := "checked"
		if created {
			status = "fixed"
		}
		return c.JSON(fiber.Map{"status": status, "bucket": h.service.bucket, "exists": true})
	}

	exists, err := h.service.CheckBucket(c.Context())
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !exists {
		l.Warn("Archive bucket missing", zap.String("bucket", h.service.bucket))
	}
	return c.JSON(fiber.Map{"status": "checked", "bucket": h.service.bucket, "exists": exists})
}
