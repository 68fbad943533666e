package report

import (
	"context"
	"errors"
	"time"

	"lb-status/core/icontrol"
	"lb-status/core/inventory"
	"lb-status/core/logger"
	"lb-status/core/reconcile"
	"lb-status/feature/report/export"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reports.
type Handler struct {
	service *Service
	timeout time.Duration
}

// NewHandler creates a new HTTP handler. Each request is bounded by timeout.
func NewHandler(service *Service, timeout time.Duration) *Handler {
	return &Handler{service: service, timeout: timeout}
}

// Response is the JSON body of a device report.
type Response struct {
	Device      string                `json:"device"`
	DataCenter  string                `json:"data_center"`
	Tier        string                `json:"tier"`
	Rows        []reconcile.ReportRow `json:"rows"`
	Summary     reconcile.Summary     `json:"summary"`
	Diagnostics reconcile.Diagnostics `json:"diagnostics"`
}

// SummaryResponse is the JSON body of a device statistics tally.
type SummaryResponse struct {
	Device     string            `json:"device"`
	DataCenter string            `json:"data_center"`
	Tallies    []reconcile.Tally `json:"tallies"`
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/report")
	group.Get("/", h.HandleDevices)
	group.Get("/:device", h.HandleReport)
	group.Get("/:device/summary", h.HandleSummary)
}

// HandleDevices lists the inventory.
// @Summary List Devices
// @Description Lists the load balancers known to the inventory.
// @Tags report
// @Produce json
// @Success 200 {array} inventory.Device
// @Router /report [get]
func (h *Handler) HandleDevices(c *fiber.Ctx) error {
	devices := h.service.Devices()
	if devices == nil {
		devices = inventory.Inventory{}
	}
	return c.JSON(devices)
}

// HandleReport reconciles one device.
// @Summary Device Report
// @Description Fetches virtual servers, pools and nodes of a device, joins them with their statistics and returns the report rows with per-class counters.
// @Tags report
// @Produce json
// @Param device path string true "Device name or management address"
// @Success 200 {object} report.Response
// @Failure 404 {object} map[string]string "Unknown device"
// @Failure 502 {object} map[string]string "Collection could not be fetched"
// @Router /report/{device} [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	device, err := h.service.Device(c.Params("device"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := h.context(c)
	defer cancel()

	result, err := h.service.Run(ctx, device)
	if err != nil {
		l.Error("Report failed", zap.String("device", device.Label()), zap.Error(err))
		return failure(c, err)
	}

	return c.JSON(Response{
		Device:      device.Label(),
		DataCenter:  device.DataCenter,
		Tier:        device.Tier,
		Rows:        result.Rows,
		Summary:     result.Summary,
		Diagnostics: result.Diagnostics,
	})
}

// HandleSummary tallies the statistics of one device.
// @Summary Device Statistics Summary
// @Description Counts statistics entries per availability state, with the number of disabled entries, for each class.
// @Tags report
// @Produce json
// @Param device path string true "Device name or management address"
// @Success 200 {object} report.SummaryResponse
// @Failure 404 {object} map[string]string "Unknown device"
// @Failure 502 {object} map[string]string "Statistics could not be fetched"
// @Router /report/{device}/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	device, err := h.service.Device(c.Params("device"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := h.context(c)
	defer cancel()

	rows, err := h.service.Summarize(ctx, device)
	if err != nil {
		l.Error("Summary failed", zap.String("device", device.Label()), zap.Error(err))
		return failure(c, err)
	}

	tallies := make([]reconcile.Tally, 0, len(rows))
	for _, r := range rows {
		tallies = append(tallies, r.Tally)
	}
	return c.JSON(SummaryResponse{Device: device.Label(), DataCenter: device.DataCenter, Tallies: tallies})
}

func (h *Handler) context(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// failure maps upstream errors to 502 and everything else to 500.
func failure(c *fiber.Ctx, err error) error {
	var fetchErr *reconcile.CollectionFetchError
	if errors.As(err, &fetchErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":      err.Error(),
			"class":      export.ClassLabel(fetchErr.Class),
			"collection": fetchErr.Collection,
		})
	}
	var statusErr *icontrol.StatusError
	if errors.As(err, &statusErr) || errors.Is(err, icontrol.ErrNoToken) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
