package server

import (
	"log/slog"

	"valorhub/internal/middleware"
	"valorhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAgents handles GET /api/agents. It proxies the upstream character
// catalog and re-shapes the payload; any upstream or transport failure maps
// to a generic 500.
func (s *Server) GetAgents(c *fiber.Ctx) error {
	list, err := s.catalog.PlayableAgents(c.Context())
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "agent catalog fetch failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewUpstreamError(err))
	}

	return c.JSON(fiber.Map{
		"status": 200,
		"data":   list,
	})
}
