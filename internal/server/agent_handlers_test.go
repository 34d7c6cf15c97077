package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"valorhub/internal/agents"
	"valorhub/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newAgentsTestApp(upstreamURL string) *fiber.App {
	s := &Server{
		config:  &config.Config{},
		catalog: agents.NewClient(upstreamURL),
	}

	app := fiber.New()
	app.Get("/api/agents", s.GetAgents)
	return app
}

func TestGetAgents(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": 200,
			"data": [
				{"uuid": "a1", "displayName": "Jett", "isPlayableCharacter": true},
				{"uuid": "a2", "displayName": "Hidden", "isPlayableCharacter": false}
			]
		}`))
	}))
	defer upstream.Close()

	app := newAgentsTestApp(upstream.URL)
	req := httptest.NewRequest(http.MethodGet, "/api/agents", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(200), body["status"])
	data := body["data"].([]any)
	assert.Len(t, data, 1)
}

func TestGetAgents_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer upstream.Close()

	app := newAgentsTestApp(upstream.URL)
	req := httptest.NewRequest(http.MethodGet, "/api/agents", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	// Upstream detail stays server-side.
	assert.Equal(t, "Upstream service unavailable", body["error"])
}
