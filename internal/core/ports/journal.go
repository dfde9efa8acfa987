package ports

import (
	"context"
	"time"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
)

// JournalEntry is the operator-facing record of one completed prediction.
// It carries no user text, only the pipeline outcome.
type JournalEntry struct {
	ID           string
	RequestID    string
	DetectedMood domain.Mood
	SearchMood   domain.SearchMood
	Query        string
	SongCount    int
	CreatedAt    time.Time
}

// Journal records completed predictions for later inspection. Recording is
// best-effort: a journal failure must never fail the request that produced
// the entry.
type Journal interface {
	Record(ctx context.Context, entry JournalEntry) error
}
