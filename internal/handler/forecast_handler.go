package handler

import (
	"github.com/gofiber/fiber/v2"

	"hotel-ai-service/internal/models"
	"hotel-ai-service/internal/service"
)

// ForecastHandler serves every endpoint that consults the forecast oracle.
// The oracle may be nil when the model file failed to load; those endpoints
// then answer 500, matching the advisory nature of the service.
type ForecastHandler struct {
	oracle service.ForecastOracle
}

// NewForecastHandler returns a handler instance.
func NewForecastHandler(oracle service.ForecastOracle) *ForecastHandler {
	return &ForecastHandler{oracle: oracle}
}

// Register mounts the oracle-backed endpoints.
func (h *ForecastHandler) Register(r fiber.Router) {
	r.Post("/predict", h.predict)
	r.Post("/dashboard-stats", h.dashboardStats)
	r.Post("/demand-level", h.demandLevel)
}

// predict handles POST /predict  { "month_to_predict": 1..12 }
func (h *ForecastHandler) predict(c *fiber.Ctx) error {
	if h.oracle == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Prediction model is not loaded"})
	}

	var req models.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if req.MonthToPredict < 1 || req.MonthToPredict > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month_to_predict must be between 1 and 12"})
	}

	return c.JSON(fiber.Map{
		"predicted_bookings": h.oracle.Predict(req.MonthToPredict),
	})
}

// dashboardStats handles POST /dashboard-stats, composing the forecast with
// the price suggestion for the admin dashboard.
func (h *ForecastHandler) dashboardStats(c *fiber.Ctx) error {
	if h.oracle == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Prediction model is not loaded"})
	}

	var req models.DashboardStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if req.MonthToPredict < 1 || req.MonthToPredict > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month_to_predict must be between 1 and 12"})
	}

	predicted := h.oracle.Predict(req.MonthToPredict)

	return c.JSON(models.DashboardStats{
		PredictedBookings: predicted,
		PriceSuggestion:   service.SuggestPrice(predicted, req.ActiveBookings, req.TotalRooms),
	})
}

// demandLevel handles POST /demand-level  { "month_to_predict", "total_rooms" }
func (h *ForecastHandler) demandLevel(c *fiber.Ctx) error {
	if h.oracle == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Prediction model is not loaded"})
	}

	var req models.DemandLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if req.MonthToPredict < 1 || req.MonthToPredict > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month_to_predict must be between 1 and 12"})
	}

	return c.JSON(service.ClassifyDemand(h.oracle.Predict(req.MonthToPredict), req.TotalRooms))
}
