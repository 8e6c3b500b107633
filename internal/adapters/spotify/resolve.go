package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
	"github.com/wavelength-labs/tastemaker/internal/core/ports"
	"github.com/wavelength-labs/tastemaker/internal/telemetry"
)

// ResolveTrack searches for the single best match on title and year, then
// fetches its audio feature vector. No match, or a match without retrievable
// features, resolves to ports.ErrTrackNotFound; transport and service
// failures surface as ordinary errors so the caller can tell them apart.
func (c *Client) ResolveTrack(ctx context.Context, title string, year int) (domain.Track, error) {
	hit, err := c.searchTrack(ctx, title, year)
	if err != nil {
		telemetry.ExternalResolutions.WithLabelValues(resolutionOutcome(err)).Inc()
		return domain.Track{}, err
	}

	features, err := c.audioFeatures(ctx, hit.ID)
	if err != nil {
		telemetry.ExternalResolutions.WithLabelValues("error").Inc()
		return domain.Track{}, err
	}
	if features == nil {
		c.logger.Debug().Str("track_id", hit.ID).Msg("no audio features for matched track")
		telemetry.ExternalResolutions.WithLabelValues("not_found").Inc()
		return domain.Track{}, fmt.Errorf("spotify: %w", ports.TrackNotFoundError{Title: title, Year: year})
	}

	telemetry.ExternalResolutions.WithLabelValues("resolved").Inc()
	return mapTrackToDomain(hit, *features, year), nil
}

func resolutionOutcome(err error) string {
	if errors.Is(err, ports.ErrTrackNotFound) {
		return "not_found"
	}
	return "error"
}

func (c *Client) searchTrack(ctx context.Context, title string, year int) (trackResult, error) {
	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return trackResult{}, fmt.Errorf("spotify: invalid search url: %w", err)
	}

	query := searchURL.Query()
	query.Set("q", fmt.Sprintf("track:%s year:%d", title, year))
	query.Set("type", "track")
	query.Set("limit", "1")
	searchURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return trackResult{}, fmt.Errorf("spotify: create search request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return trackResult{}, fmt.Errorf("spotify: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return trackResult{}, fmt.Errorf("spotify: search status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return trackResult{}, fmt.Errorf("spotify: search decode error: %w", err)
	}

	if len(body.Tracks.Items) == 0 {
		return trackResult{}, fmt.Errorf("spotify: %w", ports.TrackNotFoundError{Title: title, Year: year})
	}
	return body.Tracks.Items[0], nil
}

// audioFeatures returns nil without error when the service has no feature
// vector for the track. That is missing data, not a failure.
func (c *Client) audioFeatures(ctx context.Context, trackID string) (*audioFeatures, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/audio-features/"+trackID, nil)
	if err != nil {
		return nil, fmt.Errorf("spotify: create features request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, fmt.Errorf("spotify: features request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("spotify: features status %d", resp.StatusCode)
	}

	var features *audioFeatures
	if err := json.NewDecoder(resp.Body).Decode(&features); err != nil {
		return nil, fmt.Errorf("spotify: features decode error: %w", err)
	}
	return features, nil
}
