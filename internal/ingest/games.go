package ingest

import (
	"context"
	"errors"
	"strings"

	"github.com/mediashelf/entertainment/internal/store"
)

// inrToEUR is the fixed conversion rate applied to the dataset's INR
// prices.
const inrToEUR = 0.011

// games_data.csv is Windows-1252 encoded. release_date -> premiere,
// overall_review -> review_overall, detailed_review -> review_detailed,
// percent_positive -> reviews_positive, multiplayer_or_singleplayer ->
// game_type, price -> price_eur, dc_price -> price_discounted_eur,
// reviews -> reviews_number. The win/mac/lin support columns are dropped.
// Semicolon-separated developer, publisher, genre and type lists become
// comma-joined strings.
var gamesSource = source{
	Key:         "games",
	File:        "games_data.csv",
	Attribution: "www.kaggle.com - rahuldabholkar",
	Windows1252: true,
	Normalize:   normalizeGame,
	Insert: func(ctx context.Context, st *store.Store, rec any) error {
		return st.CreateGame(ctx, rec.(*store.Game))
	},
}

var (
	errJunkTitle       = errors.New("corrupted title")
	errMissingDev      = errors.New("missing developer")
	errNoReviews       = errors.New("no review columns")
	errShiftedReview   = errors.New("misaligned review column")
	errMissingGameDate = errors.New("missing or unparseable release date")
)

func normalizeGame(row []string, idx headerIndex, attribution string) (any, string, error) {
	title := cell(row, idx, "title")
	if title == "" {
		return nil, "", errMissingTitle
	}
	// Titles full of replacement question marks are mojibake from the
	// source encoding.
	if strings.Contains(title, "???") {
		return nil, "", errJunkTitle
	}

	premiere, ok := toDate(cell(row, idx, "release_date"))
	if !ok {
		return nil, "", errMissingGameDate
	}

	developer := joinList(cell(row, idx, "developer"))
	if developer == "" {
		return nil, "", errMissingDev
	}

	genres := joinList(cell(row, idx, "genres"))
	if genres == "" {
		return nil, "", errMissingGenres
	}

	overall := cell(row, idx, "overall_review")
	detailed := cell(row, idx, "detailed_review")
	if overall == "" && detailed == "" {
		return nil, "", errNoReviews
	}
	// Some source rows have price data shifted into the review column.
	if overall != "" && (overall[0] >= '0' && overall[0] <= '9' || overall == "Free to play") {
		return nil, "", errShiftedReview
	}

	g := &store.Game{
		Title:           title,
		Premiere:        premiere,
		Developer:       developer,
		Publisher:       optional(joinList(cell(row, idx, "publisher"))),
		Genres:          genres,
		GameType:        optional(joinList(cell(row, idx, "multiplayer_or_singleplayer"))),
		ReviewOverall:   optional(overall),
		ReviewDetailed:  optional(detailed),
		ReviewsNumber:   toInt(cell(row, idx, "reviews")),
		ReviewsPositive: optional(cell(row, idx, "percent_positive")),
		CreatedBy:       &attribution,
	}

	if price := toFloat(cell(row, idx, "price")); price != nil {
		eur := round2(*price * inrToEUR)
		g.PriceEUR = &eur
	}
	if price := toFloat(cell(row, idx, "dc_price")); price != nil {
		eur := round2(*price * inrToEUR)
		g.PriceDiscountedEUR = &eur
	}

	return g, dedupeKey(title, premiere, developer), nil
}
