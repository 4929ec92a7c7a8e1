package game

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
)

func TestLiveTerm(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"Halo":             "Halo",
		"  Halo  ":         "Halo",
		"Halo + Do":        "Do",
		"Halo + Doom +":    "",
		"Halo+Doom+  Qu ":  "Qu",
		"a + b + c + Port": "Port",
	}
	for in, want := range tests {
		if got := LiveTerm(in); got != want {
			t.Errorf("LiveTerm(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLiveTermMatchesLastTerm(t *testing.T) {
	for _, in := range []string{"Halo", "Halo + Doom", "x+y+ z ", "+", "a++b"} {
		terms := Terms(in)
		if got := LiveTerm(in); got != terms[len(terms)-1] {
			t.Errorf("LiveTerm(%q) = %q, last of Terms = %q", in, got, terms[len(terms)-1])
		}
	}
}

func TestWantsSuggestions(t *testing.T) {
	if WantsSuggestions("Halo + D") {
		t.Error("one-rune live term should not trigger suggestions")
	}
	if !WantsSuggestions("Halo + Do") {
		t.Error("two-rune live term should trigger suggestions")
	}
	if !WantsSuggestions("Öz") {
		t.Error("length is counted in runes, not bytes")
	}
}

func TestCommit(t *testing.T) {
	tests := []struct {
		raw, value, want string
	}{
		{"Hal", "Halo", "Halo"},
		{"Halo + Do", "Doom", "Halo + Doom"},
		{"Halo+Doom+Por", "Portal 2", "Halo + Doom + Portal 2"},
		{"Halo +", "Doom", "Halo + Doom"},
		{"", "Doom", "Doom"},
	}
	for _, tt := range tests {
		if got := Commit(tt.raw, tt.value); got != tt.want {
			t.Errorf("Commit(%q, %q) = %q, want %q", tt.raw, tt.value, got, tt.want)
		}
	}
}

func TestCommitOnlyReplacesLastTerm(t *testing.T) {
	raw := "Half-Life + Portal + Do"
	got := Terms(Commit(raw, "Doom"))
	want := []string{"Half-Life", "Portal", "Doom"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("terms after commit = %v, want %v", got, want)
	}
}

func TestNormalizeQuery(t *testing.T) {
	if _, err := NormalizeQuery("   "); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("blank query should be ErrEmptyQuery, got %v", err)
	}
	q, err := NormalizeQuery("  Halo + Doom ")
	if err != nil || q != "Halo + Doom" {
		t.Errorf("NormalizeQuery = %q, %v", q, err)
	}
}

func intp(n int) *int { return &n }

func TestFilterSetClampAndEncode(t *testing.T) {
	f := FilterSet{
		GenreInclude: []string{" Action", "", "RPG "},
		GenreExclude: []string{"Sports"},
		YearMin:      intp(-5),
		YearMax:      intp(2020),
		PlaytimeMin:  intp(-1),
	}
	c := f.Clamped()
	if *c.YearMin != 0 || *c.PlaytimeMin != 0 {
		t.Errorf("negative bounds should clamp to zero: %d %d", *c.YearMin, *c.PlaytimeMin)
	}
	if *f.YearMin != -5 {
		t.Error("Clamped must not mutate the receiver")
	}

	v := url.Values{}
	c.Encode(v)
	want := url.Values{
		"genres":       {"Action,RPG"},
		"exclude":      {"Sports"},
		"year_min":     {"0"},
		"year_max":     {"2020"},
		"playtime_min": {"0"},
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Encode = %v, want %v", v, want)
	}
}

func TestFilterSetIsZero(t *testing.T) {
	if !(FilterSet{}).IsZero() {
		t.Error("empty filter set should be zero")
	}
	if (FilterSet{YearMax: intp(1)}).IsZero() {
		t.Error("set bound should not be zero")
	}
}

func TestParseHelpers(t *testing.T) {
	if got := ParseList(" Action , ,RPG"); !reflect.DeepEqual(got, []string{"Action", "RPG"}) {
		t.Errorf("ParseList = %v", got)
	}
	if ParseList("  ") != nil {
		t.Error("blank list should be nil")
	}
	if ParseBound("") != nil || ParseBound("abc") != nil {
		t.Error("blank or junk bound should be nil")
	}
	if b := ParseBound(" -3 "); b == nil || *b != -3 {
		t.Errorf("ParseBound(-3) = %v", b)
	}
}

func results(sims ...float64) []SearchResult {
	out := make([]SearchResult, len(sims))
	for i, s := range sims {
		out[i] = SearchResult{ID: i + 1, Name: "g", Similarity: s}
	}
	return out
}

func ids(cards []Card) []int {
	var out []int
	for _, c := range cards {
		out = append(out, c.Result.ID)
	}
	return out
}

func TestClassify(t *testing.T) {
	c := Classify(results(0.05, 0.5, 0.49, 0.9))

	if got := ids(c.Similar); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("similar = %v, want [2 4]", got)
	}
	if got := ids(c.Other); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("other = %v, want [3]", got)
	}
	var idx []int
	for _, card := range c.Cards() {
		idx = append(idx, card.Index)
	}
	if !reflect.DeepEqual(idx, []int{0, 1, 2}) {
		t.Errorf("display indices = %v, want concatenated [0 1 2]", idx)
	}
}

func TestClassifyNoiseFloor(t *testing.T) {
	rs := []SearchResult{
		{ID: 1, Name: "edge", Similarity: 0.1},
		{ID: 2, Name: "", Similarity: 0.9},
		{ID: 3, Name: "ok", Similarity: 0.11},
	}
	c := Classify(rs)
	if got := ids(c.Cards()); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("cards = %v, want only [3]", got)
	}
	if !Classify(results(0.01, 0.1)).Empty() {
		t.Error("all-noise list should classify as empty")
	}
	if !Classify(nil).Empty() {
		t.Error("nil list should classify as empty")
	}
}

func TestShelf(t *testing.T) {
	got := Shelf(results(0.9, 0.05, 0.8, 0.7, 0.6, 0.5), 4)
	if !reflect.DeepEqual(ids(got), []int{1, 3, 4, 5}) {
		t.Errorf("shelf = %v", ids(got))
	}
	if got[3].Index != 3 {
		t.Errorf("shelf index = %d", got[3].Index)
	}
}

func TestPriceLabel(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{0, "Free"},
		{19.999, "$20.00"},
		{19.995, "$19.99"},
		{19.99, "$19.99"},
		{5, "$5.00"},
		{0.001, "$0.00"},
	}
	for _, tt := range tests {
		if got := PriceLabel(tt.price, "Free"); got != tt.want {
			t.Errorf("PriceLabel(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := map[int]Tier{100: TierGreat, 80: TierGreat, 79: TierGood, 60: TierGood, 59: TierFair, 40: TierFair, 39: TierLow, 0: TierLow}
	for pct, want := range tests {
		if got := TierFor(pct); got != want {
			t.Errorf("TierFor(%d) = %v, want %v", pct, got, want)
		}
	}
}

func TestLabels(t *testing.T) {
	if PlaytimeLabel(0) != "N/A" || PlaytimeLabel(90) != "2h" || PlaytimeLabel(600) != "10h" {
		t.Error("PlaytimeLabel rounding")
	}
	if YearLabel(0) != "N/A" || YearLabel(2007) != "2007" {
		t.Error("YearLabel")
	}
	if Percent(0.555) != 56 || Percent(0.5) != 50 {
		t.Errorf("Percent rounding: %d %d", Percent(0.555), Percent(0.5))
	}
	if got := TopGenres([]string{"a", "b", "c", "d"}); len(got) != 3 {
		t.Errorf("TopGenres = %v", got)
	}
}

func TestSearchResultDecode(t *testing.T) {
	payload := `{"AppID": 620, "Name": "Portal 2", "price": 9.99, "ImageURL": "img",
		"SteamURL": "https://store.steampowered.com/app/620", "similarity": 0.87,
		"genres": ["Puzzle", "Action"], "year": "2011", "playtime": 600,
		"breakdown": {"visual": 10, "genre": 80, "gameplay": 70, "theme": 5, "price": 50, "popularity": 90},
		"explanation": "same puzzle loop"}`
	var r SearchResult
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID != 620 || r.Name != "Portal 2" || r.Year != 2011 || r.PlaytimeMinutes != 600 {
		t.Errorf("decoded = %+v", r)
	}
	if r.Breakdown.Genre != 80 || r.Breakdown.Popularity != 90 {
		t.Errorf("breakdown = %+v", r.Breakdown)
	}
	if r.Key() != "620" {
		t.Errorf("Key = %q", r.Key())
	}

	var blank SearchResult
	if err := json.Unmarshal([]byte(`{"AppID": 1, "Name": "x", "year": ""}`), &blank); err != nil {
		t.Fatal(err)
	}
	if blank.Year != 0 {
		t.Errorf("empty year should decode to 0, got %d", blank.Year)
	}
}

func TestSnapshotJSONKeys(t *testing.T) {
	s := SearchResult{ID: 7, Name: "n", Price: 1.5, SteamURL: "s", ImageURL: "i"}.Snapshot()
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"appid", "name", "price", "steamUrl", "header_image"} {
		if _, ok := m[k]; !ok {
			t.Errorf("snapshot JSON missing %q: %s", k, data)
		}
	}
}
