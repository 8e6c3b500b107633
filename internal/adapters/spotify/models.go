package spotify

// trackResult is the wire shape of one search hit.
type trackResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Explicit   bool   `json:"explicit"`
	DurationMs int    `json:"duration_ms"`
	Popularity int    `json:"popularity"`
	Album      struct {
		ReleaseDate string `json:"release_date"`
	} `json:"album"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
}

// searchResponse is the wire shape of GET /search.
type searchResponse struct {
	Tracks struct {
		Items []trackResult `json:"items"`
	} `json:"tracks"`
}

// audioFeatures is the wire shape of GET /audio-features/{id}. The endpoint
// returns a literal null body for tracks without an analysis.
type audioFeatures struct {
	Valence          float64 `json:"valence"`
	Acousticness     float64 `json:"acousticness"`
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Instrumentalness float64 `json:"instrumentalness"`
	Key              float64 `json:"key"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"`
	Mode             float64 `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
}
