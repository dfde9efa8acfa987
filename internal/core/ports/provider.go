package ports

import (
	"context"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
)

// TrackProvider searches an external music catalog for tracks matching a
// keyword query. Results are returned in the provider's relevance order;
// the core never re-ranks them.
type TrackProvider interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error)
}
