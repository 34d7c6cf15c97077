package agents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayableAgents_FiltersNonPlayable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agents", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("isPlayableCharacter"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": 200,
			"data": [
				{"uuid": "a1", "displayName": "Jett", "isPlayableCharacter": true},
				{"uuid": "a2", "displayName": "NPC Sova", "isPlayableCharacter": false},
				{"uuid": "a3", "displayName": "Brimstone", "isPlayableCharacter": true}
			]
		}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL)
	got, err := client.PlayableAgents(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Jett", got[0].DisplayName)
	assert.Equal(t, "Brimstone", got[1].DisplayName)
}

func TestPlayableAgents_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL)
	_, err := client.PlayableAgents(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestPlayableAgents_MalformedBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": 200, "data": [`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL)
	_, err := client.PlayableAgents(context.Background())
	assert.Error(t, err)
}

func TestPlayableAgents_NetworkError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	client := NewClient(upstream.URL)
	_, err := client.PlayableAgents(context.Background())
	assert.Error(t, err)
}
