package tmdb

import (
	"sort"
	"strings"
)

// genreIDs maps the friendly genre names used by the frontend to TMDb
// with_genres values. Combined entries are comma separated.
var genreIDs = map[string]string{
	"thriller":         "53",
	"drama":            "18",
	"family":           "10751",
	"action":           "28",
	"adventure":        "12",
	"action_adventure": "28,12",
	"comedy":           "35",
	"horror":           "27",
	"romance":          "10749",
	"animation":        "16",
	"mystery":          "9648",
}

// LookupGenre resolves a genre name case-insensitively.
func LookupGenre(name string) (string, bool) {
	ids, ok := genreIDs[strings.ToLower(strings.TrimSpace(name))]
	return ids, ok
}

// SupportedGenres lists the known genre names in sorted order.
func SupportedGenres() []string {
	names := make([]string, 0, len(genreIDs))
	for name := range genreIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
