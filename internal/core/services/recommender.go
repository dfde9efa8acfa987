package services

import (
	"context"
	"fmt"
	"log"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/ports"
)

// searchLimit is the maximum number of tracks requested per provider call.
const searchLimit = 12

// Recommender runs the mood inference pipeline: classify the message,
// resolve the effective search mood, build the query, and fetch tracks.
// It is stateless; every call is independent.
type Recommender struct {
	classifier ports.MoodClassifier
	provider   ports.TrackProvider
}

// NewRecommender constructs a Recommender from its two collaborators.
func NewRecommender(classifier ports.MoodClassifier, provider ports.TrackProvider) *Recommender {
	return &Recommender{
		classifier: classifier,
		provider:   provider,
	}
}

// Recommend classifies message and returns tracks for the effective mood.
// The returned Recommendation carries the effective search mood, which is
// the predicted mood unless the uplift preference overrode it.
func (r *Recommender) Recommend(ctx context.Context, message, language string, pref domain.Preference) (domain.Recommendation, error) {
	mood, err := r.classifier.Classify(ctx, message)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("service: classify message: %w", err)
	}

	searchMood := domain.ResolveSearchMood(mood, pref)
	query := domain.BuildSearchQuery(searchMood, language)
	log.Printf("DEBUG service: detected mood %q, search query %q", mood, query)

	tracks, err := r.provider.SearchTracks(ctx, query, searchLimit)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("service: track search: %w", err)
	}

	return domain.Recommendation{
		Mood:         searchMood,
		DetectedMood: mood,
		Query:        query,
		Songs:        tracks,
	}, nil
}
