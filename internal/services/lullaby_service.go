package services

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ansdud923/fairytale-app/internal/config"
	"github.com/ansdud923/fairytale-app/internal/dto"
)

// LullabyService proxies theme-based music/video search to the external
// Python API. Search is best-effort: any transport, status, or decode
// failure degrades to an empty result instead of an error, so a flaky
// search backend never blocks the caller's flow.
type LullabyService struct {
	baseURL string
	client  *http.Client
}

func NewLullabyService(cfg *config.Config) *LullabyService {
	return &LullabyService{
		baseURL: cfg.PythonAPIURL,
		client:  &http.Client{Timeout: cfg.PythonAPITimeout},
	}
}

type searchRequest struct {
	Theme string `json:"theme"`
}

func (s *LullabyService) SearchMusicByTheme(theme string) []dto.Track {
	body, ok := s.post("/search/url", theme)
	if !ok {
		return []dto.Track{}
	}

	elements := extractResults(body, "music_results")
	tracks := make([]dto.Track, 0, len(elements))
	for i, raw := range elements {
		var track dto.Track
		if err := json.Unmarshal(raw, &track); err != nil {
			slog.Warn("skipping malformed music result", "index", i, "error", err)
			continue
		}
		tracks = append(tracks, track)
	}
	return tracks
}

func (s *LullabyService) SearchVideosByTheme(theme string) []dto.Video {
	body, ok := s.post("/search/video", theme)
	if !ok {
		return []dto.Video{}
	}

	elements := extractResults(body, "video_results")
	videos := make([]dto.Video, 0, len(elements))
	for i, raw := range elements {
		var video dto.Video
		if err := json.Unmarshal(raw, &video); err != nil {
			slog.Warn("skipping malformed video result", "index", i, "error", err)
			continue
		}
		videos = append(videos, video)
	}
	return videos
}

// IsHealthy probes the external API's health endpoint. Advisory only; it
// never gates the search operations.
func (s *LullabyService) IsHealthy() bool {
	resp, err := s.client.Get(s.baseURL + "/health")
	if err != nil {
		slog.Error("python api health check failed", "error", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (s *LullabyService) post(path, theme string) ([]byte, bool) {
	payload, err := json.Marshal(searchRequest{Theme: theme})
	if err != nil {
		return nil, false
	}

	resp, err := s.client.Post(s.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		slog.Error("python api call failed", "path", path, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("python api returned non-OK status", "path", path, "status", resp.StatusCode)
		return nil, false
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		slog.Error("failed to read python api response", "path", path, "error", err)
		return nil, false
	}
	return buf.Bytes(), true
}

// extractResults pulls the named array out of the loosely-typed response
// envelope, leaving each element undecoded so a bad one can be skipped
// without losing the rest.
func extractResults(body []byte, key string) []json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		slog.Error("failed to parse python api response", "key", key, "error", err)
		return nil
	}

	raw, ok := envelope[key]
	if !ok {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		slog.Error("search results field is not an array", "key", key, "error", err)
		return nil
	}
	return elements
}
