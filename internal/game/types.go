// Package game holds the recommendation domain model: results returned by
// the API, multi-term queries, filters, classification and display formatting.
package game

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// NoiseFloor is the similarity at or below which a result is never shown.
const NoiseFloor = 0.1

// SimilarCutoff splits "similar" from "other" results, in percent.
const SimilarCutoff = 50

// Breakdown is the five-axis score vector drawn as a radar chart.
// Each axis is in [0, 100].
type Breakdown struct {
	Visual     float64 `json:"visual"`
	Genre      float64 `json:"genre"`
	Gameplay   float64 `json:"gameplay"`
	Price      float64 `json:"price"`
	Popularity float64 `json:"popularity"`
}

// Axes returns the breakdown in chart order.
func (b Breakdown) Axes() []float64 {
	return []float64{b.Visual, b.Genre, b.Gameplay, b.Price, b.Popularity}
}

// MatchReason is one server-side explanation for a recommendation.
type MatchReason struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// SearchResult is one recommended game as returned by the API.
type SearchResult struct {
	ID              int           `json:"AppID"`
	Name            string        `json:"Name"`
	Price           float64       `json:"price"`
	ImageURL        string        `json:"ImageURL"`
	SteamURL        string        `json:"SteamURL"`
	Year            int           `json:"-"`
	PlaytimeMinutes int           `json:"playtime,omitempty"`
	Genres          []string      `json:"genres"`
	Similarity      float64       `json:"similarity"`
	Breakdown       Breakdown     `json:"breakdown"`
	Explanation     string        `json:"explanation,omitempty"`
	MatchReasons    []MatchReason `json:"match_reasons,omitempty"`
}

// UnmarshalJSON accepts the API's "year" field as either a four-digit
// string (possibly empty) or a number.
func (r *SearchResult) UnmarshalJSON(data []byte) error {
	type plain SearchResult
	aux := struct {
		*plain
		Year json.RawMessage `json:"year"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Year = parseYear(aux.Year)
	return nil
}

// MarshalJSON writes Year back in the API's string form.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	type plain SearchResult
	year := ""
	if r.Year > 0 {
		year = strconv.Itoa(r.Year)
	}
	return json.Marshal(struct {
		plain
		Year string `json:"year,omitempty"`
	}{plain: plain(r), Year: year})
}

func parseYear(raw json.RawMessage) int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if len(s) > 4 {
		s = s[:4]
	}
	y, err := strconv.Atoi(s)
	if err != nil || y <= 0 {
		return 0
	}
	return y
}

// Key returns the id as used for favorites and chart handles.
func (r SearchResult) Key() string {
	return strconv.Itoa(r.ID)
}

// Snapshot captures the favorite-able subset of the result.
func (r SearchResult) Snapshot() Snapshot {
	return Snapshot{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		SteamURL: r.SteamURL,
		ImageURL: r.ImageURL,
	}
}

// Snapshot is a denormalized copy of a game taken when it was favorited.
// It is never refreshed, so it can drift from the live catalog.
type Snapshot struct {
	ID       int     `json:"appid"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	SteamURL string  `json:"steamUrl"`
	ImageURL string  `json:"header_image"`
}

// Key returns the favorites map key for the snapshot.
func (s Snapshot) Key() string {
	return strconv.Itoa(s.ID)
}

// Anchor is the randomly picked game a surprise response is built around.
type Anchor struct {
	ID   int    `json:"AppID"`
	Name string `json:"Name"`
}
