package game

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterSet narrows a search. Every field is optional; nil bounds are not sent.
// Playtime bounds are in hours.
type FilterSet struct {
	GenreInclude []string
	GenreExclude []string
	YearMin      *int
	YearMax      *int
	PlaytimeMin  *int
	PlaytimeMax  *int
}

// Clamped returns a copy with negative bounds raised to zero and genre lists
// trimmed of blanks.
func (f FilterSet) Clamped() FilterSet {
	return FilterSet{
		GenreInclude: cleanList(f.GenreInclude),
		GenreExclude: cleanList(f.GenreExclude),
		YearMin:      clamp(f.YearMin),
		YearMax:      clamp(f.YearMax),
		PlaytimeMin:  clamp(f.PlaytimeMin),
		PlaytimeMax:  clamp(f.PlaytimeMax),
	}
}

// IsZero reports whether no filter is set.
func (f FilterSet) IsZero() bool {
	return len(f.GenreInclude) == 0 && len(f.GenreExclude) == 0 &&
		f.YearMin == nil && f.YearMax == nil &&
		f.PlaytimeMin == nil && f.PlaytimeMax == nil
}

// Encode adds the present filter fields to v using the API's parameter names.
// Callers are expected to pass a clamped set.
func (f FilterSet) Encode(v url.Values) {
	if len(f.GenreInclude) > 0 {
		v.Set("genres", strings.Join(f.GenreInclude, ","))
	}
	if len(f.GenreExclude) > 0 {
		v.Set("exclude", strings.Join(f.GenreExclude, ","))
	}
	setInt(v, "year_min", f.YearMin)
	setInt(v, "year_max", f.YearMax)
	setInt(v, "playtime_min", f.PlaytimeMin)
	setInt(v, "playtime_max", f.PlaytimeMax)
}

// ParseList splits a comma-separated genre field.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return cleanList(strings.Split(s, ","))
}

// ParseBound reads an optional integer bound from a text field. Blank or
// non-numeric input means "unset".
func ParseBound(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func setInt(v url.Values, key string, p *int) {
	if p != nil {
		v.Set(key, strconv.Itoa(*p))
	}
}

func clamp(p *int) *int {
	if p == nil {
		return nil
	}
	n := *p
	if n < 0 {
		n = 0
	}
	return &n
}

func cleanList(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
