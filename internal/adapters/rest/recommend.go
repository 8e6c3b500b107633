package rest

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
	"github.com/wavelength-labs/tastemaker/internal/telemetry"
)

// recommendRequest is what the presentation layer sends us. An empty seed
// list is valid input: the engine answers it with the no-input status rather
// than a validation error.
type recommendRequest struct {
	Seeds []seedPayload `json:"seeds" validate:"dive"`
	Limit int           `json:"limit" validate:"gte=0"`
}

type seedPayload struct {
	Title string `json:"title" validate:"required"`
	Year  int    `json:"year" validate:"required,gte=1000,lte=2100"`
}

type recommendResponse struct {
	Status  domain.RecommendationStatus `json:"status"`
	Results []trackPayload              `json:"results,omitempty"`
}

type trackPayload struct {
	Title      string `json:"title"`
	Year       int    `json:"year"`
	Popularity int    `json:"popularity"`
	Artists    string `json:"artists"`
}

// Recommend handles POST /v1/recommendations.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.opts.DefaultLimit
	}
	if limit > h.opts.MaxLimit {
		limit = h.opts.MaxLimit
	}

	seeds := make([]domain.SeedSong, 0, len(req.Seeds))
	for _, s := range req.Seeds {
		seeds = append(seeds, domain.SeedSong{Title: s.Title, Year: s.Year})
	}

	start := time.Now()
	result, err := h.svc.Recommend(r.Context(), seeds, limit)
	if err != nil {
		logger.Error().Err(err).Msg("recommendation failed")
		writeError(w, http.StatusInternalServerError, "recommendation failed")
		return
	}
	telemetry.ObserveRecommendation(string(result.Status), time.Since(start))

	resp := recommendResponse{
		Status:  result.Status,
		Results: make([]trackPayload, 0, len(result.Tracks)),
	}
	for _, t := range result.Tracks {
		resp.Results = append(resp.Results, trackPayload{
			Title:      t.Title,
			Year:       t.Year,
			Popularity: t.Popularity,
			Artists:    t.Artists,
		})
	}

	logger.Info().
		Int("seeds", len(seeds)).
		Int("limit", limit).
		Str("status", string(result.Status)).
		Int("results", len(resp.Results)).
		Msg("recommendation served")

	writeJSON(w, http.StatusOK, resp)
}
