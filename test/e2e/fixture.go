package e2e

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/locale"
	"github.com/abelbrown/horizon/internal/prefs"
	"github.com/abelbrown/horizon/internal/store"
)

// seedFixtureDB writes preferences so the program starts in English, dark
// theme, with the info card dismissed and one history entry.
func seedFixtureDB(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	st, err := store.Open(filepath.Join(dataDir, "horizon.db"))
	if err != nil {
		return err
	}
	defer st.Close()

	p := prefs.New(st)
	if err := p.SetLanguage(locale.EN); err != nil {
		return err
	}
	if err := p.SetTheme(prefs.Dark); err != nil {
		return err
	}
	if err := p.DismissInfo(); err != nil {
		return err
	}
	return p.SaveHistory([]string{"Half-Life"})
}

// fixtureAPI serves a fixed recommendation set for any query.
func fixtureAPI() *httptest.Server {
	results := []game.SearchResult{
		{
			ID:         620,
			Name:       "Portal 2",
			Price:      9.99,
			SteamURL:   "https://store.steampowered.com/app/620",
			Genres:     []string{"Puzzle", "Action"},
			Similarity: 0.92,
			Breakdown:  game.Breakdown{Visual: 80, Genre: 90, Gameplay: 85, Price: 60, Popularity: 95},
		},
		{
			ID:         257510,
			Name:       "The Talos Principle",
			Price:      0,
			Genres:     []string{"Puzzle"},
			Similarity: 0.41,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ready"})
	})
	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"results": results, "query": r.URL.Query().Get("q"), "count": len(results)})
	})
	mux.HandleFunc("/api/autocomplete", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []string{"Portal", "Portal 2"})
	})
	mux.HandleFunc("/api/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]string{{
			"content":    "fixture comment",
			"created_at": time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Format("2006-01-02 15:04:05"),
		}})
	})
	return httptest.NewServer(mux)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
