package ingest

import (
	"context"
	"errors"

	"github.com/mediashelf/entertainment/internal/store"
)

// goodreads_data.csv: Book -> title, Author -> author, Avg_Rating ->
// avg_rating, Num_Ratings -> rating_reviews. The URL and unnamed index
// columns are dropped. Genres arrive as a Python-style list literal and
// are flattened to a comma-joined string.
var booksSource = source{
	Key:         "books",
	File:        "goodreads_data.csv",
	Attribution: "www.kaggle.com - ishikajohari",
	Normalize:   normalizeBook,
	Insert: func(ctx context.Context, st *store.Store, rec any) error {
		return st.CreateBook(ctx, rec.(*store.Book))
	},
}

var errMissingBookFields = errors.New("missing title or author")

func normalizeBook(row []string, idx headerIndex, attribution string) (any, string, error) {
	title := cell(row, idx, "book")
	author := cell(row, idx, "author")
	if title == "" || author == "" {
		return nil, "", errMissingBookFields
	}

	// "[]" and "['A', 'B']" both come from the source language's repr.
	genres := stripListLiteral(cell(row, idx, "genres"))
	if genres == "" {
		return nil, "", errMissingGenres
	}

	b := &store.Book{
		Title:         title,
		Author:        author,
		Description:   optional(cell(row, idx, "description")),
		Genres:        genres,
		AvgRating:     toFloat(cell(row, idx, "avg_rating")),
		RatingReviews: toInt(cell(row, idx, "num_ratings")),
		CreatedBy:     &attribution,
	}

	return b, dedupeKey(title, author), nil
}
