package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/ports"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/services"
)

// --- Stubs ---

type stubClassifier struct {
	mood domain.Mood
	err  error
}

func (s *stubClassifier) Classify(ctx context.Context, message string) (domain.Mood, error) {
	return s.mood, s.err
}

type stubProvider struct {
	mu      sync.Mutex
	queries []string
	tracks  []domain.Track
	err     error
}

func (s *stubProvider) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.tracks, nil
}

func (s *stubProvider) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

type stubJournal struct {
	mu      sync.Mutex
	entries []ports.JournalEntry
}

func (s *stubJournal) Record(ctx context.Context, entry ports.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func newTestHandler(clf *stubClassifier, prov *stubProvider, journal ports.Journal) *Handler {
	return NewHandler(services.NewRecommender(clf, prov), journal)
}

func postPredict(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/predict", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// --- Tests ---

func TestPredictHappyPath(t *testing.T) {
	preview := "https://audio.example/p.mp3"
	prov := &stubProvider{tracks: []domain.Track{
		{
			ID:         "t1",
			SongName:   "Happy Song",
			Artist:     "Some Artist",
			ImageURL:   "https://img.example/a.jpg",
			PreviewURL: &preview,
			SpotifyURL: "https://open.spotify.com/track/t1",
		},
	}}
	h := newTestHandler(&stubClassifier{mood: domain.MoodJoy}, prov, nil)

	rr := postPredict(t, h, `{"message": "I feel so happy today", "language": "en", "preference": "match"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Mood  string                   `json:"mood"`
		Songs []map[string]interface{} `json:"songs"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "joy", resp.Mood)
	require.Len(t, resp.Songs, 1)
	assert.Equal(t, "t1", resp.Songs[0]["id"])
	assert.Equal(t, "Happy Song", resp.Songs[0]["song_name"])
	assert.Equal(t, "Some Artist", resp.Songs[0]["artist"])
	assert.Equal(t, "https://img.example/a.jpg", resp.Songs[0]["image_url"])
	assert.Equal(t, preview, resp.Songs[0]["preview_url"])
	assert.Equal(t, "https://open.spotify.com/track/t1", resp.Songs[0]["spotify_url"])

	require.Equal(t, 1, prov.calls())
	assert.Equal(t, "happy english", prov.queries[0])
}

func TestPredictUpliftOverride(t *testing.T) {
	prov := &stubProvider{tracks: []domain.Track{}}
	h := newTestHandler(&stubClassifier{mood: domain.MoodSadness}, prov, nil)

	rr := postPredict(t, h, `{"message": "everything is terrible", "language": "hi", "preference": "uplift"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Mood string `json:"mood"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "uplift", resp.Mood)

	require.Equal(t, 1, prov.calls())
	assert.Equal(t, "uplifting hindi", prov.queries[0])
}

func TestPredictDefaultsAndFallbacks(t *testing.T) {
	t.Run("omitted language and preference default to en/match", func(t *testing.T) {
		prov := &stubProvider{tracks: []domain.Track{}}
		h := newTestHandler(&stubClassifier{mood: domain.MoodLove}, prov, nil)

		rr := postPredict(t, h, `{"message": "thinking of you"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "love english", prov.queries[0])
	})

	t.Run("unrecognized language falls back to english", func(t *testing.T) {
		prov := &stubProvider{tracks: []domain.Track{}}
		h := newTestHandler(&stubClassifier{mood: domain.MoodJoy}, prov, nil)

		rr := postPredict(t, h, `{"message": "quelle joie", "language": "fr"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "happy english", prov.queries[0])
	})
}

func TestPredictValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing message field", `{"language": "en"}`},
		{"empty message", `{"message": ""}`},
		{"blank message", `{"message": "   "}`},
		{"invalid json", `{"message": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prov := &stubProvider{}
			h := newTestHandler(&stubClassifier{mood: domain.MoodJoy}, prov, nil)

			rr := postPredict(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])

			// validation failures must not reach the provider
			assert.Zero(t, prov.calls())
		})
	}
}

func TestPredictProviderFailure(t *testing.T) {
	prov := &stubProvider{err: errors.New("spotify down")}
	h := newTestHandler(&stubClassifier{mood: domain.MoodJoy}, prov, nil)

	rr := postPredict(t, h, `{"message": "hello there"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "spotify down")
}

func TestPredictRecordsJournalEntry(t *testing.T) {
	journal := &stubJournal{}
	prov := &stubProvider{tracks: []domain.Track{{ID: "t1", SongName: "x", Artist: "y"}}}
	h := newTestHandler(&stubClassifier{mood: domain.MoodFear}, prov, journal)

	rr := postPredict(t, h, `{"message": "I am scared", "preference": "uplift"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	journal.mu.Lock()
	defer journal.mu.Unlock()
	require.Len(t, journal.entries, 1)
	entry := journal.entries[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, domain.MoodFear, entry.DetectedMood)
	assert.Equal(t, domain.SearchMoodUplift, entry.SearchMood)
	assert.Equal(t, "uplifting english", entry.Query)
	assert.Equal(t, 1, entry.SongCount)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(&stubClassifier{mood: domain.MoodJoy}, &stubProvider{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}
