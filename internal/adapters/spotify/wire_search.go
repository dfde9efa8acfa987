package spotify

// Wire types mirror the subset of the Spotify search response the adapter
// reads. Everything else in the payload is ignored.

type searchResponse struct {
	Tracks struct {
		Items []wireTrack `json:"items"`
	} `json:"tracks"`
}

type wireTrack struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Artists      []wireArtist `json:"artists"`
	Album        wireAlbum    `json:"album"`
	PreviewURL   *string      `json:"preview_url"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type wireArtist struct {
	Name string `json:"name"`
}

type wireAlbum struct {
	Images []wireImage `json:"images"`
}

type wireImage struct {
	URL string `json:"url"`
}
