package game

import (
	"fmt"
	"math"
	"strconv"
)

// MaxCardGenres is how many genre tags a card shows.
const MaxCardGenres = 3

// Tier buckets a similarity percentage for the badge color ramp.
type Tier int

const (
	TierLow Tier = iota
	TierFair
	TierGood
	TierGreat
)

// TierFor maps a percentage to its tier: >=80, >=60, >=40, else low.
func TierFor(percent int) Tier {
	switch {
	case percent >= 80:
		return TierGreat
	case percent >= 60:
		return TierGood
	case percent >= 40:
		return TierFair
	default:
		return TierLow
	}
}

// PriceLabel returns free when price is exactly zero, otherwise a dollar
// amount with two decimals. Rounding is that of %.2f on the binary value, so
// 19.999 gives "$20.00" and 19.995 (stored just below the tie) gives "$19.99".
func PriceLabel(price float64, free string) string {
	if price == 0 {
		return free
	}
	return fmt.Sprintf("$%.2f", price)
}

// PlaytimeLabel renders minutes as rounded hours, or N/A when unknown.
func PlaytimeLabel(minutes int) string {
	if minutes <= 0 {
		return "N/A"
	}
	return strconv.Itoa(int(math.Round(float64(minutes)/60))) + "h"
}

// YearLabel renders a release year, or N/A when unknown.
func YearLabel(year int) string {
	if year <= 0 {
		return "N/A"
	}
	return strconv.Itoa(year)
}

// TopGenres returns at most MaxCardGenres genres.
func TopGenres(genres []string) []string {
	if len(genres) > MaxCardGenres {
		return genres[:MaxCardGenres]
	}
	return genres
}
