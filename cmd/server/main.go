package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"hotel-ai-service/internal/config"
	"hotel-ai-service/internal/database"
	"hotel-ai-service/internal/handler"
	"hotel-ai-service/internal/repository"
	"hotel-ai-service/internal/service"
)

// main is the single entry-point for the hotel AI service.
func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Configuration loaded:")
	log.Printf("  - Database: %s", cfg.DBName)
	log.Printf("  - LLM provider: %s (%s)", cfg.LLMProvider, cfg.LLMModel)

	// Connect to the inventory & ledger store
	client, err := database.NewMongo(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	log.Printf("Connected to MongoDB")

	db := client.Database(cfg.DBName)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Pick the generative completion provider
	var llm service.CompletionClient
	switch cfg.LLMProvider {
	case "vertex":
		vertex, err := service.NewVertexLLM(cfg.ProjectID, cfg.Location, cfg.LLMModel)
		if err != nil {
			log.Fatalf("Failed to initialize Vertex AI client: %v", err)
		}
		defer vertex.Close()
		llm = vertex
	default:
		llm = service.NewOpenAILLM(cfg.LLMBaseURL, cfg.LLMModel)
	}

	// Load the forecast oracle. A missing model keeps the service up;
	// only the forecast endpoints answer 500 until the file appears.
	oracle, err := service.LoadForecastModel(cfg.ModelPath)
	if err != nil {
		log.Printf("WARNING: forecast model unavailable: %v", err)
	} else {
		log.Printf("Forecast model loaded from %s", cfg.ModelPath)
	}

	// Assemble the chat pipeline
	classifier := service.NewIntentClassifier(llm)
	dispatcher := service.NewToolDispatcher(roomRepo, bookingRepo, service.DefaultHotelFacts())
	synthesizer := service.NewAnswerSynthesizer(llm)
	logger := service.NewInteractionLogger(cfg.ChatLogURL, cfg.ChatLogTimeout)
	chatSvc := service.NewChatService(classifier, dispatcher, synthesizer, logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Register routes
	handler.RegisterRoutes(app, chatSvc, oracle)
	handler.NewHealthHandler(client).Register(app)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
