package rest

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/ports"
)

// predictRequest defines what the client sends us.
type predictRequest struct {
	Message    string `json:"message"`
	Language   string `json:"language"`
	Preference string `json:"preference"`
}

// Predict handles POST /api/predict.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	// 1. Decode the Request Body
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request. 'message' is required.")
		return
	}

	// 2. Validate Input
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Invalid request. 'message' is required.")
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}
	pref := domain.ParsePreference(req.Preference)

	// 3. Call the Service (The Core Logic)
	rec, err := h.svc.Recommend(r.Context(), req.Message, language, pref)
	if err != nil {
		log.Printf("ERROR rest: predict failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// 4. Journal the outcome without holding up the response
	if h.journal != nil {
		entry := ports.JournalEntry{
			ID:           uuid.NewString(),
			RequestID:    middleware.GetReqID(r.Context()),
			DetectedMood: rec.DetectedMood,
			SearchMood:   rec.Mood,
			Query:        rec.Query,
			SongCount:    len(rec.Songs),
			CreatedAt:    time.Now().UTC(),
		}
		if err := h.journal.Record(r.Context(), entry); err != nil {
			log.Printf("WARN rest: journal record failed: %v", err)
		}
	}

	// 5. Return the Response
	writeJSON(w, http.StatusOK, rec)
}
