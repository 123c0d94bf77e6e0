package ingest

import (
	"context"
	"errors"

	"github.com/mediashelf/entertainment/internal/store"
)

// imdb_movies.csv: names -> title, date_x -> premiere, genre -> genres,
// budget_x -> budget. The status column is dropped. Scores arrive on a
// 0-100 scale and are stored as 0-10.
var moviesSource = source{
	Key:         "movies",
	File:        "imdb_movies.csv",
	Attribution: "www.kaggle.com - ashpalsingh1525",
	Normalize:   normalizeMovie,
	Insert: func(ctx context.Context, st *store.Store, rec any) error {
		return st.CreateMovie(ctx, rec.(*store.Movie))
	},
}

var (
	errMissingTitle    = errors.New("missing title")
	errMissingPremiere = errors.New("missing or unparseable premiere date")
	errMissingGenres   = errors.New("missing genres")
)

func normalizeMovie(row []string, idx headerIndex, attribution string) (any, string, error) {
	title := cell(row, idx, "names")
	if title == "" {
		return nil, "", errMissingTitle
	}

	// Source dates are MM/DD/YYYY.
	premiere, ok := toDate(cell(row, idx, "date_x"))
	if !ok {
		return nil, "", errMissingPremiere
	}

	genres := cell(row, idx, "genre")
	if genres == "" {
		return nil, "", errMissingGenres
	}

	m := &store.Movie{
		Title:     title,
		Premiere:  premiere,
		Genres:    genres,
		Overview:  optional(cell(row, idx, "overview")),
		OrigTitle: optional(cell(row, idx, "orig_title")),
		OrigLang:  optional(cell(row, idx, "orig_lang")),
		Budget:    toFloat(cell(row, idx, "budget_x")),
		Revenue:   toFloat(cell(row, idx, "revenue")),
		Country:   optional(cell(row, idx, "country")),
		CreatedBy: &attribution,
	}

	// IMDB scores are 0-100 in the raw dataset.
	if score := toFloat(cell(row, idx, "score")); score != nil {
		scaled := round2(*score / 10)
		m.Score = &scaled
	}

	// Crew credits are frequently absent for animated titles; keep the
	// dataset's placeholder convention instead of NULL.
	crew := cell(row, idx, "crew")
	if crew == "" {
		crew = "---"
	}
	m.Crew = &crew

	return m, dedupeKey(title, premiere), nil
}
