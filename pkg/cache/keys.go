package cache

import (
	"fmt"
	"strings"
)

// street suffixes folded into their postal abbreviations for key building.
var suffixAbbreviations = map[string]string{
	"drive":     "dr",
	"street":    "st",
	"avenue":    "ave",
	"road":      "rd",
	"boulevard": "blvd",
	"lane":      "ln",
	"circle":    "cir",
	"court":     "ct",
	"terrace":   "ter",
	"place":     "pl",
	"highway":   "hwy",
}

// normalize address text by lowercasing, collapsing whitespace and
// abbreviating common street suffixes, so equivalent queries share a key.
func NormalizeAddressComponent(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if i == 0 {
			continue
		}
		trimmed := strings.TrimRight(w, ",")
		if abbr, ok := suffixAbbreviations[trimmed]; ok {
			words[i] = abbr + w[len(trimmed):]
		}
	}
	return strings.Join(words, " ")
}

// cache key for a place-detail record.
func PlaceKey(placeID string) string {
	return fmt.Sprintf("place:%s", placeID)
}

// cache key for the suggestions returned for a query in a country.
func SuggestionsKey(country, query string) string {
	return fmt.Sprintf("suggestions:%s:%s", strings.ToLower(country), NormalizeAddressComponent(query))
}
