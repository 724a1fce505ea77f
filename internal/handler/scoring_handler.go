package handler

import (
	"github.com/gofiber/fiber/v2"

	"hotel-ai-service/internal/models"
	"hotel-ai-service/internal/service"
)

// ScoringHandler serves the pure heuristic engines: room assignment, room
// type recommendation and dynamic pricing. The engines are side-effect-free
// functions, so this handler holds no dependencies.
type ScoringHandler struct{}

// NewScoringHandler returns a handler instance.
func NewScoringHandler() *ScoringHandler {
	return &ScoringHandler{}
}

// Register mounts the scoring endpoints.
func (h *ScoringHandler) Register(r fiber.Router) {
	r.Post("/recommend", h.recommend)
	r.Post("/smart-assign", h.smartAssign)
	r.Post("/dynamic-price-suggestion", h.priceSuggestion)
}

// recommend handles POST /recommend  { "guests": n, "trip_type": "..." }
func (h *ScoringHandler) recommend(c *fiber.Ctx) error {
	req := models.RecommendRequest{Guests: 1, TripType: "solo"}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}

	recommendation, reason := service.RecommendRoomType(req.Guests, req.TripType)

	return c.JSON(fiber.Map{
		"recommended_type": recommendation,
		"reason":           reason,
	})
}

// smartAssign handles POST /smart-assign.
func (h *ScoringHandler) smartAssign(c *fiber.Ctx) error {
	var req models.SmartAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if len(req.AvailableRooms) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No available rooms to choose from."})
	}

	bestID, err := service.SmartAssign(req.AvailableRooms, req.AllRooms, req.UserPreferences)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"best_room_id": bestID})
}

// priceSuggestion handles POST /dynamic-price-suggestion. Missing fields are
// a 400; zero rooms is a valid input that yields the zero-adjustment result.
func (h *ScoringHandler) priceSuggestion(c *fiber.Ctx) error {
	var req models.PriceSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if req.PredictedBookings == nil || req.ActiveBookings == nil || req.TotalRooms == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing or invalid required data."})
	}

	return c.JSON(service.SuggestPrice(*req.PredictedBookings, *req.ActiveBookings, *req.TotalRooms))
}
