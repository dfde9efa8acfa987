package domain

// Track represents a recommended track in the domain layer.
// PreviewURL is a pointer because the provider reports it as null for many
// tracks and the API passes that null through to the caller unchanged.
type Track struct {
	ID         string  `json:"id"`
	SongName   string  `json:"song_name"`
	Artist     string  `json:"artist"`
	ImageURL   string  `json:"image_url"`
	PreviewURL *string `json:"preview_url"`
	SpotifyURL string  `json:"spotify_url"`
}

// Recommendation is the result of one pass through the pipeline: the
// effective search mood and the tracks found for it, in provider order.
// DetectedMood and Query are kept for the prediction journal and stay out
// of the API response.
type Recommendation struct {
	Mood         SearchMood `json:"mood"`
	DetectedMood Mood       `json:"-"`
	Query        string     `json:"-"`
	Songs        []Track    `json:"songs"`
}
