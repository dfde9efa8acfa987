package spotify

import (
	"fmt"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
)

// placeholderImageURL stands in for tracks whose album has no artwork, so
// ImageURL is never empty in a shaped track.
const placeholderImageURL = "https://placehold.co/100x100/222/fff?text=No+Art"

// mapTrackToDomain shapes a raw provider track into the caller-facing record.
// Optional fields (artwork, preview) get per-field defaults; a track missing
// id, name, or any artist violates the provider data contract.
func mapTrackToDomain(wt wireTrack) (domain.Track, error) {
	if wt.ID == "" || wt.Name == "" || len(wt.Artists) == 0 {
		return domain.Track{}, fmt.Errorf("spotify adapter: track %q missing required fields", wt.ID)
	}

	imageURL := placeholderImageURL
	if len(wt.Album.Images) > 0 && wt.Album.Images[0].URL != "" {
		imageURL = wt.Album.Images[0].URL
	}

	return domain.Track{
		ID:         wt.ID,
		SongName:   wt.Name,
		Artist:     wt.Artists[0].Name,
		ImageURL:   imageURL,
		PreviewURL: wt.PreviewURL,
		SpotifyURL: wt.ExternalURLs.Spotify,
	}, nil
}

// mapSearchToDomain shapes a full result page, preserving provider order.
func mapSearchToDomain(items []wireTrack) ([]domain.Track, error) {
	tracks := make([]domain.Track, 0, len(items))
	for _, item := range items {
		track, err := mapTrackToDomain(item)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}
