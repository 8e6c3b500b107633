package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wavelength-labs/tastemaker/internal/adapters/catalog"
	"github.com/wavelength-labs/tastemaker/internal/adapters/spotify"
	"github.com/wavelength-labs/tastemaker/internal/adapters/trackcache"
	"github.com/wavelength-labs/tastemaker/internal/config"
	"github.com/wavelength-labs/tastemaker/internal/core/domain"
	"github.com/wavelength-labs/tastemaker/internal/core/ports"
	"github.com/wavelength-labs/tastemaker/internal/core/services"
	"github.com/wavelength-labs/tastemaker/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tastemaker",
	Short: "Tastemaker - content-based music recommendation service",
	Long:  "Tastemaker recommends catalog tracks by cosine similarity between standardized audio feature vectors and a taste profile built from seed songs.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recommendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it). Missing
// catalog or credentials fail here, before any request is served.
func loadConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return nil
}

// buildEngine wires the adapters into a Recommender. The returned closer
// releases the track cache, when one is configured.
func buildEngine() (*services.Recommender, func() error, error) {
	store, err := catalog.Load(cfg.Catalog.Path, logger)
	if err != nil {
		return nil, nil, err
	}

	// Fitted once per process; every recommendation call shares it read-only.
	scaler, err := domain.FitScaler(store.Tracks())
	if err != nil {
		return nil, nil, fmt.Errorf("fit scaler: %w", err)
	}
	logger.Info().Int("rows", scaler.Rows()).Msg("normalization model fitted")

	provider, err := spotify.NewClient(spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		BaseURL:      cfg.Spotify.BaseURL,
		TokenURL:     cfg.Spotify.TokenURL,
		Timeout:      cfg.Spotify.Timeout,
		MaxRetries:   cfg.Spotify.MaxRetries,
		RetryBackoff: cfg.Spotify.RetryBackoff,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	var cache ports.TrackCache
	closer := func() error { return nil }
	if cfg.Cache.Path != "" {
		cacheStore, err := trackcache.Open(cfg.Cache.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		cache = cacheStore
		closer = cacheStore.Close
	}

	return services.NewRecommender(store, provider, cache, scaler, logger), closer, nil
}
