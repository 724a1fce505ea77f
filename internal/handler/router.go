package handler

import (
	"github.com/gofiber/fiber/v2"

	"hotel-ai-service/internal/service"
)

// RegisterRoutes mounts every capability endpoint on the app root. The
// booking subsystem calls these paths directly, so they are not versioned.
func RegisterRoutes(app *fiber.App,
	chatSvc service.ChatService,
	oracle service.ForecastOracle,
) {
	NewChatHandler(chatSvc).Register(app)
	NewForecastHandler(oracle).Register(app)
	NewScoringHandler().Register(app)
}
