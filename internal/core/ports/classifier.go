package ports

import (
	"context"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
)

// MoodClassifier turns a raw user message into one of the six moods.
// Implementations must be safe for concurrent use: the service calls
// Classify from every in-flight request.
type MoodClassifier interface {
	Classify(ctx context.Context, message string) (domain.Mood, error)
}
