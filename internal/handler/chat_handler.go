package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"hotel-ai-service/internal/models"
	"hotel-ai-service/internal/service"
)

// chatApology is the fixed user-facing reply for any internal chat failure.
const chatApology = "Sorry, I'm having trouble answering right now. Please try again in a moment."

// ChatHandler wires HTTP → ChatService.
type ChatHandler struct {
	svc service.ChatService
}

// NewChatHandler returns a struct pointer so you can call Register on it.
func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Register mounts the /chat endpoint on the supplied router.
func (h *ChatHandler) Register(r fiber.Router) {
	r.Post("/chat", h.chat)
}

// chat handles POST /chat  { "message": "...", "token": "...", "history": [...] }
func (h *ChatHandler) chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required."})
	}
	if req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token is required."})
	}

	reply, err := h.svc.Chat(c.UserContext(), req.Token, req.Message, req.History)
	if err != nil {
		log.Printf("[Chat Handler] turn failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": chatApology})
	}

	return c.JSON(models.ChatResponse{Reply: reply})
}
