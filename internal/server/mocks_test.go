package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"valorhub/internal/config"
	"valorhub/internal/credential"
	"valorhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	args := m.Called(ctx, email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) AppendReply(ctx context.Context, postID int64, reply *models.Reply) (int64, error) {
	args := m.Called(ctx, postID, reply)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) RemoveReply(ctx context.Context, postID, replyID int64) (int64, error) {
	args := m.Called(ctx, postID, replyID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPatchRepository is a mock of the PatchRepository interface
type MockPatchRepository struct {
	mock.Mock
}

func (m *MockPatchRepository) List(ctx context.Context) ([]models.Patch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patch), args.Error(1)
}

func (m *MockPatchRepository) Create(ctx context.Context, patch *models.Patch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

func (m *MockPatchRepository) Update(ctx context.Context, id int64, upd models.PatchUpdate) (*models.Patch, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patch), args.Error(1)
}

func (m *MockPatchRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatchRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// testConfig returns a config suitable for handler tests.
func testConfig() *config.Config {
	return &config.Config{
		Port:          "5000",
		AdminEmail:    "admin@valorhub.gg",
		AdminPassword: "access",
	}
}

// doJSON performs a request with a JSON body against the test app.
func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()

	var req *http.Request
	if payload == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		body, err := json.Marshal(payload)
		assert.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	return doJSON(t, app, http.MethodPost, path, payload)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// newTestApp wires a Server around the given mocks and registers all routes.
func newTestApp(users *MockUserRepository, posts *MockPostRepository, patches *MockPatchRepository) *fiber.App {
	cfg := testConfig()
	s := &Server{
		config:        cfg,
		userRepo:      users,
		postRepo:      posts,
		patchRepo:     patches,
		adminPassword: credential.Encode(cfg.AdminPassword),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return app
}
