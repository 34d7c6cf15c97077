package server

import (
	"log/slog"

	"valorhub/internal/middleware"
	"valorhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "list posts failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(posts)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Author  string `json:"author"`
		Content string `json:"content"`
		Image   string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	author := req.Author
	if author == "" {
		author = defaultAuthor
	}

	post := &models.Post{
		ID:        newID(),
		Author:    author,
		Content:   req.Content,
		Image:     req.Image,
		Timestamp: isoTimestamp(),
		Replies:   []models.Reply{},
	}

	if err := s.postRepo.Create(c.Context(), post); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "create post failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	if err := s.adminGate(c); err != nil {
		return nil
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	deleted, err := s.postRepo.Delete(c.Context(), id)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "delete post failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if deleted == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", id))
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// CreateReply handles POST /api/posts/:id/reply
func (s *Server) CreateReply(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Author  string `json:"author"`
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	author := req.Author
	if author == "" {
		author = defaultAuthor
	}

	reply := &models.Reply{
		ID:        newID(),
		Author:    author,
		Content:   req.Content,
		Timestamp: isoTimestamp(),
	}

	matched, err := s.postRepo.AppendReply(c.Context(), postID, reply)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "append reply failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if matched == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", postID))
	}

	return c.Status(fiber.StatusCreated).JSON(reply)
}

// DeleteReply handles DELETE /api/posts/:postId/reply/:replyId
func (s *Server) DeleteReply(c *fiber.Ctx) error {
	if err := s.adminGate(c); err != nil {
		return nil
	}

	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	replyID, err := s.parseID(c, "replyId")
	if err != nil {
		return nil
	}

	// Not-found only fires when the post lookup fails. Pulling a reply id
	// that is absent from an existing post succeeds with nothing removed.
	matched, err := s.postRepo.RemoveReply(c.Context(), postID, replyID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "remove reply failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if matched == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", postID))
	}

	return c.JSON(fiber.Map{"message": "Reply deleted"})
}
