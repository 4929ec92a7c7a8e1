package game

import "math"

// Card is a result placed on screen with its display position.
type Card struct {
	Result SearchResult
	// Index runs across both groups; it drives the staggered entrance.
	Index int
}

// Classified is a result list after the noise floor, split into groups.
type Classified struct {
	Similar []Card
	Other   []Card
}

// Len is the number of displayable results.
func (c Classified) Len() int {
	return len(c.Similar) + len(c.Other)
}

// Empty reports whether nothing survived the noise floor.
func (c Classified) Empty() bool {
	return c.Len() == 0
}

// Cards returns both groups in display order.
func (c Classified) Cards() []Card {
	out := make([]Card, 0, c.Len())
	out = append(out, c.Similar...)
	return append(out, c.Other...)
}

// Displayable reports whether r clears the noise floor.
func Displayable(r SearchResult) bool {
	return r.Name != "" && r.Similarity > NoiseFloor
}

// Percent is the similarity as a whole-number percentage.
func Percent(similarity float64) int {
	return int(math.Round(similarity * 100))
}

// Classify drops noise and partitions the rest into similar and other,
// keeping the API's order within each group.
func Classify(results []SearchResult) Classified {
	var similar, other []SearchResult
	for _, r := range results {
		if !Displayable(r) {
			continue
		}
		if r.Similarity*100 >= SimilarCutoff {
			similar = append(similar, r)
		} else {
			other = append(other, r)
		}
	}

	var c Classified
	idx := 0
	for _, r := range similar {
		c.Similar = append(c.Similar, Card{Result: r, Index: idx})
		idx++
	}
	for _, r := range other {
		c.Other = append(c.Other, Card{Result: r, Index: idx})
		idx++
	}
	return c
}

// Shelf keeps at most n displayable results for the fallback shelf, in order,
// as a single ungrouped run.
func Shelf(results []SearchResult, n int) []Card {
	var cards []Card
	for _, r := range results {
		if len(cards) >= n {
			break
		}
		if Displayable(r) {
			cards = append(cards, Card{Result: r, Index: len(cards)})
		}
	}
	return cards
}
