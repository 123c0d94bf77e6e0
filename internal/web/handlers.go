package web

import "strings"

// listResponse wraps list endpoint results with their count.
type listResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// apiActor is the attribution stamped into created_by/updated_by for
// records written through the API; ingested rows carry their dataset
// attribution instead.
func apiActor() *string {
	actor := "api"
	return &actor
}

// joinGenres flattens a submitted genre list into the comma-joined
// storage convention, dropping empty entries.
func joinGenres(genres []string) string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return strings.Join(out, ", ")
}
