package server

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"valorhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// defaultAuthor is substituted when a post or reply arrives without one.
const defaultAuthor = "Anonymous"

// newID returns a creation-timestamp-derived identifier in milliseconds.
// Uniqueness is assumed, not enforced; collisions under rapid concurrent
// creation are treated as negligible.
func newID() int64 {
	return time.Now().UnixMilli()
}

// isoTimestamp returns the current time formatted the way the front-end
// expects (ISO-8601 with millisecond precision, UTC).
func isoTimestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// parseID extracts a route parameter by name as a positive integer id.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return int64(id), nil
}

// adminGate enforces the body-carried isAdmin flag on mutating operations.
// The flag is self-declared by the caller; there is no session or token to
// derive it from. On a missing or false flag it writes the 403 response and
// returns errResponseWritten.
func (s *Server) adminGate(c *fiber.Ctx) error {
	var req struct {
		IsAdmin bool `json:"isAdmin"`
	}
	// A missing or malformed body simply carries no admin claim.
	_ = c.BodyParser(&req)

	if !req.IsAdmin {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Admin access required"))
		return errResponseWritten
	}
	return nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "postId" -> "post ID", "replyId" -> "reply ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	// Split on camelCase boundary before the trailing "Id" suffix.
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}
