package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ansdud923/fairytale-app/internal/config"
	"github.com/ansdud923/fairytale-app/internal/dto"
	"github.com/ansdud923/fairytale-app/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLullabyApp(backendURL string) *fiber.App {
	svc := services.NewLullabyService(&config.Config{
		PythonAPIURL:     backendURL,
		PythonAPITimeout: 2 * time.Second,
	})
	h := NewLullabyHandler(svc)

	app := fiber.New()
	app.Get("/lullaby/music", h.SearchMusic)
	app.Get("/lullaby/video", h.SearchVideos)
	app.Get("/lullaby/health", h.Health)
	return app
}

func TestSearchMusicRequiresTheme(t *testing.T) {
	app := newLullabyApp("http://localhost:0")

	req := httptest.NewRequest(http.MethodGet, "/lullaby/music", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchMusicReturnsTracks(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"music_results": [{"id": "t1", "name": "Moonlight", "duration": 180}]}`))
	}))
	defer backend.Close()

	app := newLullabyApp(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/lullaby/music?theme=sleep", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var tracks []dto.Track
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &tracks))
	require.Len(t, tracks, 1)
	assert.Equal(t, "Moonlight", tracks[0].Name)
}

func TestSearchMusicBackendDownStill200(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	app := newLullabyApp(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/lullaby/music?theme=sleep", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(body))
}

func TestLullabyHealth(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "healthy"}`))
	}))
	defer backend.Close()

	app := newLullabyApp(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/lullaby/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"healthy": true}`, string(body))
}
