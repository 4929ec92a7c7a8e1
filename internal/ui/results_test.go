package ui

import (
	"strings"
	"testing"

	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/locale"
)

func TestNewCardView(t *testing.T) {
	r := result(620, "Portal 2", 0.876)
	r.Price = 0
	r.Year = 2011
	r.PlaytimeMinutes = 510
	r.Explanation = "Puzzle heavy"
	r.MatchReasons = []game.MatchReason{{Description: "same studio"}}

	v := NewCardView(game.Card{Result: r}, func(id string) bool { return id == "620" }, locale.EN)

	if v.Percent != 88 || v.Tier != game.TierGreat {
		t.Errorf("expected 88%% great, got %d %v", v.Percent, v.Tier)
	}
	if v.Price != locale.T(locale.EN, locale.Free) {
		t.Errorf("zero price should be free, got %q", v.Price)
	}
	if len(v.Genres) != game.MaxCardGenres {
		t.Errorf("expected %d genres, got %v", game.MaxCardGenres, v.Genres)
	}
	if v.Year != "2011" || v.Playtime != "9h" {
		t.Errorf("unexpected year/playtime %q %q", v.Year, v.Playtime)
	}
	if !v.Favorite {
		t.Error("expected favorite flag")
	}
	if len(v.Reasons) != 1 || v.Reasons[0] != "same studio" {
		t.Errorf("unexpected reasons %v", v.Reasons)
	}
}

func TestNewCardViewUnknownValues(t *testing.T) {
	r := game.SearchResult{ID: 1, Name: "Mystery", Price: 19.999, Similarity: 0.35}
	v := NewCardView(game.Card{Result: r}, nil, locale.TR)

	if v.Price != "$20.00" {
		t.Errorf("expected $20.00, got %q", v.Price)
	}
	if v.Year != "N/A" || v.Playtime != "N/A" {
		t.Errorf("unknown year and playtime should be N/A, got %q %q", v.Year, v.Playtime)
	}
	if v.Tier != game.TierLow || v.Favorite {
		t.Errorf("unexpected tier/favorite %v %v", v.Tier, v.Favorite)
	}
}

func TestStaleChartsDueIgnored(t *testing.T) {
	h := newHarness(&fakeBackend{results: portalResults()})
	a := searchFor(t, h.app(), "Portal")
	seq := a.renderSeq
	rendered := len(h.renderer.rendered)

	a.invalidateCharts()
	a, _ = update(a, ChartsDue{Seq: seq})
	if len(h.renderer.rendered) != rendered || a.charts.Live() != 0 {
		t.Error("a superseded mount should not create charts")
	}

	a, _ = update(a, ChartsDue{Seq: a.renderSeq})
	if a.charts.Live() != 2 {
		t.Errorf("current mount should create charts, got %d", a.charts.Live())
	}
}

func TestNewSearchDestroysCharts(t *testing.T) {
	h := newHarness(&fakeBackend{results: portalResults()})
	a := searchFor(t, h.app(), "Portal")

	a.input.SetValue("Halo")
	a, _ = update(a, keyEnter)
	if a.charts.Live() != 0 {
		t.Error("submitting should tear down charts at once")
	}
	for _, c := range h.renderer.rendered {
		if !c.destroyed {
			t.Error("every previous chart should be destroyed")
		}
	}
	if !strings.Contains(a.View(), locale.T(locale.EN, locale.Loading)) {
		t.Error("pending search should show loading")
	}
}

func TestChartPlaceholderBeforeMount(t *testing.T) {
	a := newHarness(&fakeBackend{}).app()
	c := game.Card{Result: result(1, "Portal 2", 0.9)}
	out := a.renderCard(c, false, 80)
	if !strings.Contains(out, "· · ·") || strings.Contains(out, "[chart]") {
		t.Errorf("unmounted card should show a placeholder:\n%s", out)
	}
}

func TestWindow(t *testing.T) {
	content := "0\n1\n2\n3\n4\n5"
	tests := []struct {
		anchor, height int
		want           string
	}{
		{0, 0, content},
		{0, 10, content},
		{2, 3, "2\n3\n4"},
		{5, 3, "3\n4\n5"},
	}
	for _, tt := range tests {
		if got := window(content, tt.anchor, tt.height); got != tt.want {
			t.Errorf("window(%d, %d) = %q, want %q", tt.anchor, tt.height, got, tt.want)
		}
	}
}
