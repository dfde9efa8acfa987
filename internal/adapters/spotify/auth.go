package spotify

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// tokenURL is Spotify's client-credentials token endpoint.
const tokenURL = "https://accounts.spotify.com/api/token"

// requestTimeout bounds every provider call so a stalled upstream cannot
// hold a request slot forever.
const requestTimeout = 10 * time.Second

// ClientCredentials returns an *http.Client that transparently obtains and
// refreshes an app token via the OAuth2 client-credentials flow. Credential
// problems surface on the first request, not here.
func ClientCredentials(clientID, clientSecret string) *http.Client {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	httpClient := config.Client(context.Background())
	httpClient.Timeout = requestTimeout
	return httpClient
}
