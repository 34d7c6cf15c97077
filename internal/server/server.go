// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"valorhub/internal/agents"
	"valorhub/internal/config"
	"valorhub/internal/credential"
	"valorhub/internal/database"
	"valorhub/internal/middleware"
	"valorhub/internal/models"
	"valorhub/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	client         *mongo.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	patchRepo      repository.PatchRepository
	catalog        *agents.Client
	// adminPassword is the encoded form of the fixed admin credential,
	// computed once at startup and compared before any store access.
	adminPassword string
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	client, db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	patchRepo := repository.NewPatchRepository(db)

	// One-time seeding: an empty patches collection gets the default entry.
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.SeedPatches(seedCtx, patchRepo); err != nil {
		return nil, fmt.Errorf("patch seeding failed: %w", err)
	}

	prom := fiberprometheus.New("valorhub-api")

	return &Server{
		config:         cfg,
		client:         client,
		promMiddleware: prom,
		userRepo:       userRepo,
		postRepo:       postRepo,
		patchRepo:      patchRepo,
		catalog:        agents.NewClient(cfg.AgentsAPIURL),
		adminPassword:  credential.Encode(cfg.AdminPassword),
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into the logger
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	// Character catalog proxy
	api.Get("/agents", s.GetAgents)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", s.Register)
	auth.Post("/login", s.Login)

	// Discussion routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.CreatePost)
	posts.Post("/:id/reply", s.CreateReply)
	posts.Delete("/:postId/reply/:replyId", s.DeleteReply)
	posts.Delete("/:id", s.DeletePost)

	// Patch note routes
	patches := api.Group("/patches")
	patches.Get("/", s.GetPatches)
	patches.Post("/", s.CreatePatch)
	patches.Put("/:id", s.UpdatePatch)
	patches.Delete("/:id", s.DeletePatch)

	// Front-end assets
	if s.config.StaticDir != "" {
		app.Static("/", s.config.StaticDir)
	}
}

// HealthCheck reports process and store health.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if s.client != nil {
		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			dbStatus = "unhealthy"
		}
	} else {
		dbStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "ValorHub API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.client != nil {
		if err := s.client.Disconnect(ctx); err != nil {
			log.Printf("error closing mongo client: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
