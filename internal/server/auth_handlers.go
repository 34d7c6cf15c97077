package server

import (
	"log/slog"

	"valorhub/internal/credential"
	"valorhub/internal/middleware"
	"valorhub/internal/models"
	"valorhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Confirm  string `json:"confirm"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Validation order matters: the first failing check wins and nothing is
	// persisted on any failure.
	if req.Username == "" || req.Email == "" || req.Password == "" || req.Confirm == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please fill in all fields"))
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if req.Password != req.Confirm {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Passwords do not match"))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	existing, err := s.userRepo.GetByEmailOrUsername(c.Context(), req.Email, req.Username)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "user lookup failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A user with that email or username is already registered"))
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: credential.Encode(req.Password),
		IsAdmin:  false,
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "user create failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// The password is never echoed back, encoded or otherwise.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created",
		"user": fiber.Map{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please fill in all fields"))
	}

	// Fixed admin account, checked before the store so admin login works
	// even with an empty users collection.
	if req.Email == s.config.AdminEmail && credential.Encode(req.Password) == s.adminPassword {
		return c.JSON(fiber.Map{
			"message": "Logged in",
			"user": models.PublicUser{
				Username: "Admin",
				Email:    s.config.AdminEmail,
				IsAdmin:  true,
			},
		})
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "user lookup failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if user != nil {
		stored, decErr := credential.Decode(user.Password)
		if decErr == nil && stored == req.Password {
			return c.JSON(fiber.Map{
				"message": "Logged in",
				"user":    user.Public(),
			})
		}
	}

	// Deliberately the same message for unknown email and wrong password.
	return models.RespondWithError(c, fiber.StatusUnauthorized,
		models.NewUnauthorizedError("Invalid email or password"))
}
