package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/charanteja2729/mood-based-song-recommender/internal/adapters/emotion"
	"github.com/charanteja2729/mood-based-song-recommender/internal/adapters/rest"
	"github.com/charanteja2729/mood-based-song-recommender/internal/adapters/spotify"
	"github.com/charanteja2729/mood-based-song-recommender/internal/adapters/sqlite"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/ports"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/services"
	"github.com/charanteja2729/mood-based-song-recommender/internal/worker"
)

const cacheTTL = 5 * time.Minute

func main() {
	// 1. Configuration (Environment Variables)
	// Crash early if required config is missing.
	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatal("FATAL: SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables are required")
	}

	modelDir := getenv("MODEL_DIR", "models")
	port := getenv("PORT", "8080")

	// 2. Load the frozen model artifacts. Serving without them is pointless,
	// so a load failure aborts startup.
	classifier, err := emotion.Load(modelDir)
	if err != nil {
		log.Fatalf("FATAL: failed to load model artifacts from %s: %v", modelDir, err)
	}
	log.Printf("loaded model artifacts from %s", modelDir)

	// 3. Initialize "Driven" Adapters (The Tools)
	provider := spotify.NewClient(spotify.ClientCredentials(clientID, clientSecret), spotify.DefaultBaseURL)

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("FATAL: invalid REDIS_URL: %v", err)
		}
		rdb := redis.NewClient(opt)
		defer rdb.Close()
		provider = provider.WithCache(spotify.NewQueryCache(rdb, cacheTTL))
		log.Println("search result cache enabled")
	}

	var journal ports.Journal
	if journalPath := os.Getenv("JOURNAL_PATH"); journalPath != "" {
		journalDB, err := sqlite.NewAdapter(journalPath)
		if err != nil {
			log.Fatalf("FATAL: failed to initialize journal: %v", err)
		}
		defer journalDB.Close()

		pool := worker.NewPool(journalDB, 100)
		pool.Start(2)
		defer pool.Stop()
		journal = pool
		log.Printf("prediction journal enabled at %s", journalPath)
	}

	// 4. Initialize Core Logic and the HTTP adapter
	svc := services.NewRecommender(classifier, provider)
	handler := rest.NewHandler(svc, journal)

	// 5. Start the Server
	log.Printf("mood recommender API is running on http://localhost:%s", port)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
