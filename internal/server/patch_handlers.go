package server

import (
	"log/slog"

	"valorhub/internal/middleware"
	"valorhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPatches handles GET /api/patches
func (s *Server) GetPatches(c *fiber.Ctx) error {
	patches, err := s.patchRepo.List(c.Context())
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "list patches failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(patches)
}

// CreatePatch handles POST /api/patches
func (s *Server) CreatePatch(c *fiber.Ctx) error {
	if err := s.adminGate(c); err != nil {
		return nil
	}

	var req struct {
		Version string `json:"version"`
		Date    string `json:"date"`
		Text    string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Version == "" || req.Date == "" || req.Text == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Version, date, and text are required"))
	}

	patch := &models.Patch{
		ID:      newID(),
		Version: req.Version,
		Date:    req.Date,
		Text:    req.Text,
	}

	if err := s.patchRepo.Create(c.Context(), patch); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "create patch failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(patch)
}

// UpdatePatch handles PUT /api/patches/:id
func (s *Server) UpdatePatch(c *fiber.Ctx) error {
	if err := s.adminGate(c); err != nil {
		return nil
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Version string `json:"version"`
		Date    string `json:"date"`
		Text    string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Only supplied fields are overwritten; absent fields keep their value.
	updated, err := s.patchRepo.Update(c.Context(), id, models.PatchUpdate{
		Version: req.Version,
		Date:    req.Date,
		Text:    req.Text,
	})
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "update patch failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if updated == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Patch", id))
	}

	return c.JSON(updated)
}

// DeletePatch handles DELETE /api/patches/:id
func (s *Server) DeletePatch(c *fiber.Ctx) error {
	if err := s.adminGate(c); err != nil {
		return nil
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	deleted, err := s.patchRepo.Delete(c.Context(), id)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "delete patch failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if deleted == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Patch", id))
	}

	return c.JSON(fiber.Map{"message": "Patch deleted"})
}
