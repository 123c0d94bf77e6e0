package ingest

import (
	"errors"
	"testing"

	"github.com/mediashelf/entertainment/internal/store"
)

const testAttribution = "www.kaggle.com - tester"

func movieIdx() headerIndex {
	return makeHeaderIndex([]string{
		"names", "date_x", "score", "genre", "overview", "crew",
		"orig_title", "status", "orig_lang", "budget_x", "revenue", "country",
	})
}

func TestNormalizeMovie(t *testing.T) {
	row := []string{
		"Creed III", "03/02/2023", "73", "Drama, Action",
		"After dominating the boxing world...", "Michael B. Jordan, Adonis Creed",
		"Creed III", "Released", "en", "75,000,000", "271616668", "AU",
	}

	rec, key, err := normalizeMovie(row, movieIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeMovie: %v", err)
	}
	m := rec.(*store.Movie)

	if m.Title != "Creed III" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.Premiere != "2023-03-02" {
		t.Errorf("Premiere = %q, want 2023-03-02", m.Premiere)
	}
	if m.Score == nil || *m.Score != 7.3 {
		t.Errorf("Score = %v, want 7.3", m.Score)
	}
	if m.Budget == nil || *m.Budget != 75000000 {
		t.Errorf("Budget = %v", m.Budget)
	}
	if m.CreatedBy == nil || *m.CreatedBy != testAttribution {
		t.Errorf("CreatedBy = %v", m.CreatedBy)
	}
	if key != "creed iii|2023-03-02" {
		t.Errorf("key = %q", key)
	}
}

func TestNormalizeMovie_KeyCaseInsensitive(t *testing.T) {
	lower := []string{"Creed III", "03/02/2023", "73", "Drama", "", "", "", "", "", "", "", ""}
	upper := []string{"CREED III", "03/02/2023", "73", "Drama", "", "", "", "", "", "", "", ""}

	_, k1, err := normalizeMovie(lower, movieIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeMovie: %v", err)
	}
	_, k2, err := normalizeMovie(upper, movieIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeMovie: %v", err)
	}
	if k1 != k2 {
		t.Errorf("keys differ for case-variant titles: %q vs %q", k1, k2)
	}
}

func TestNormalizeMovie_MissingMandatory(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want error
	}{
		{
			"no title",
			[]string{"", "03/02/2023", "73", "Drama", "", "", "", "", "", "", "", ""},
			errMissingTitle,
		},
		{
			"bad date",
			[]string{"Creed III", "soon", "73", "Drama", "", "", "", "", "", "", "", ""},
			errMissingPremiere,
		},
		{
			"no genres",
			[]string{"Creed III", "03/02/2023", "73", "", "", "", "", "", "", "", "", ""},
			errMissingGenres,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := normalizeMovie(tt.row, movieIdx(), testAttribution)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNormalizeMovie_CrewPlaceholder(t *testing.T) {
	row := []string{"Toy Tale", "06/01/1999", "80", "Animation", "", "", "", "", "", "", "", ""}
	rec, _, err := normalizeMovie(row, movieIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeMovie: %v", err)
	}
	m := rec.(*store.Movie)
	if m.Crew == nil || *m.Crew != "---" {
		t.Errorf("Crew = %v, want ---", m.Crew)
	}
}

func songIdx() headerIndex {
	return makeHeaderIndex([]string{
		"track_id", "track_name", "track_artist", "track_popularity",
		"track_album_id", "track_album_name", "track_album_release_date",
		"playlist_name", "playlist_genre", "playlist_subgenre",
		"danceability", "energy", "duration_ms",
	})
}

func TestNormalizeSong(t *testing.T) {
	row := []string{
		"6f807x0ima9a1j3VPbc7VN", "I Don't Care", "Ed Sheeran", "66",
		"2oCs0DGTsRO98Gh5ZSl2Cx", "I Don't Care (with Justin Bieber)", "2019-06-14",
		"Pop Remix", "pop", "dance pop",
		"0.748", "0.916", "194754",
	}

	rec, key, err := normalizeSong(row, songIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeSong: %v", err)
	}
	s := rec.(*store.Song)

	if s.Title != "I Don't Care" || s.Artist != "Ed Sheeran" {
		t.Errorf("Title/Artist = %q/%q", s.Title, s.Artist)
	}
	if s.AlbumPremiere == nil || *s.AlbumPremiere != "2019-06-14" {
		t.Errorf("AlbumPremiere = %v", s.AlbumPremiere)
	}
	if s.DurationMS == nil || *s.DurationMS != 194754 {
		t.Errorf("DurationMS = %v", s.DurationMS)
	}
	if key != "i don't care|ed sheeran|i don't care (with justin bieber)|194754" {
		t.Errorf("key = %q", key)
	}
}

func TestNormalizeSong_KeyIncludesDuration(t *testing.T) {
	short := []string{"id1", "Song", "Artist", "50", "al1", "Album", "2013", "", "", "", "", "", "194754"}
	long := []string{"id2", "Song", "Artist", "50", "al2", "Album", "2013", "", "", "", "", "", "201000"}

	_, k1, err := normalizeSong(short, songIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeSong: %v", err)
	}
	_, k2, err := normalizeSong(long, songIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeSong: %v", err)
	}
	// Two cuts of the same track with different durations are distinct.
	if k1 == k2 {
		t.Errorf("keys identical for different durations: %q", k1)
	}
}

func TestNormalizeSong_YearOnlyRelease(t *testing.T) {
	row := []string{
		"id1", "Song", "Artist", "50", "al1", "Album", "2013",
		"", "", "", "", "", "",
	}
	rec, _, err := normalizeSong(row, songIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeSong: %v", err)
	}
	s := rec.(*store.Song)
	if s.AlbumPremiere == nil || *s.AlbumPremiere != "2013-01-01" {
		t.Errorf("AlbumPremiere = %v, want 2013-01-01", s.AlbumPremiere)
	}
}

func TestNormalizeSong_MissingMandatory(t *testing.T) {
	row := []string{"id1", "Song", "", "50", "al1", "Album", "2013", "", "", "", "", "", ""}
	if _, _, err := normalizeSong(row, songIdx(), testAttribution); !errors.Is(err, errMissingSongFields) {
		t.Errorf("err = %v, want %v", err, errMissingSongFields)
	}
}

func bookIdx() headerIndex {
	return makeHeaderIndex([]string{
		"unnamed: 0", "book", "author", "description", "genres",
		"avg_rating", "num_ratings", "url",
	})
}

func TestNormalizeBook(t *testing.T) {
	row := []string{
		"4", "Dune", "Frank Herbert", "Set on the desert planet Arrakis...",
		"['Science Fiction', 'Fiction', 'Fantasy']", "4.25", "1,171,016",
		"https://www.goodreads.com/book/show/44767458-dune",
	}

	rec, key, err := normalizeBook(row, bookIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeBook: %v", err)
	}
	b := rec.(*store.Book)

	if b.Title != "Dune" || b.Author != "Frank Herbert" {
		t.Errorf("Title/Author = %q/%q", b.Title, b.Author)
	}
	if b.Genres != "Science Fiction, Fiction, Fantasy" {
		t.Errorf("Genres = %q", b.Genres)
	}
	if b.AvgRating == nil || *b.AvgRating != 4.25 {
		t.Errorf("AvgRating = %v", b.AvgRating)
	}
	if b.RatingReviews == nil || *b.RatingReviews != 1171016 {
		t.Errorf("RatingReviews = %v", b.RatingReviews)
	}
	if key != "dune|frank herbert" {
		t.Errorf("key = %q", key)
	}
}

func TestNormalizeBook_EmptyGenreLiteral(t *testing.T) {
	row := []string{"9", "Untagged", "Somebody", "", "[]", "3.5", "10", ""}
	if _, _, err := normalizeBook(row, bookIdx(), testAttribution); !errors.Is(err, errMissingGenres) {
		t.Errorf("err = %v, want %v", err, errMissingGenres)
	}
}

func gameIdx() headerIndex {
	return makeHeaderIndex([]string{
		"title", "release_date", "developer", "publisher", "genres",
		"multiplayer_or_singleplayer", "price", "dc_price",
		"overall_review", "detailed_review", "reviews", "percent_positive",
		"win_support", "mac_support", "lin_support",
	})
}

func TestNormalizeGame(t *testing.T) {
	row := []string{
		"Counter-Strike 2", "Aug 21, 2012", "Valve;Hidden Path Entertainment", "Valve",
		"Action;Free to Play", "Multi-player;PvP", "1,000", "529",
		"Very Positive", "Very Positive(85% of 7,642,084)", "7,642,084", "85%",
		"yes", "no", "yes",
	}

	rec, key, err := normalizeGame(row, gameIdx(), testAttribution)
	if err != nil {
		t.Fatalf("normalizeGame: %v", err)
	}
	g := rec.(*store.Game)

	if g.Premiere != "2012-08-21" {
		t.Errorf("Premiere = %q", g.Premiere)
	}
	if g.Developer != "Valve, Hidden Path Entertainment" {
		t.Errorf("Developer = %q", g.Developer)
	}
	if g.Genres != "Action, Free to Play" {
		t.Errorf("Genres = %q", g.Genres)
	}
	// 1000 INR at the fixed conversion rate.
	if g.PriceEUR == nil || *g.PriceEUR != 11 {
		t.Errorf("PriceEUR = %v, want 11", g.PriceEUR)
	}
	if g.PriceDiscountedEUR == nil || *g.PriceDiscountedEUR != 5.82 {
		t.Errorf("PriceDiscountedEUR = %v, want 5.82", g.PriceDiscountedEUR)
	}
	if g.ReviewsNumber == nil || *g.ReviewsNumber != 7642084 {
		t.Errorf("ReviewsNumber = %v", g.ReviewsNumber)
	}
	if key != "counter-strike 2|2012-08-21|valve, hidden path entertainment" {
		t.Errorf("key = %q", key)
	}
}

func TestNormalizeGame_JunkRows(t *testing.T) {
	base := func() []string {
		return []string{
			"Portal 2", "Apr 18, 2011", "Valve", "Valve", "Puzzle", "Single-player",
			"500", "", "Overwhelmingly Positive", "Overwhelmingly Positive(98%)",
			"100", "98%", "yes", "yes", "yes",
		}
	}

	tests := []struct {
		name   string
		mutate func(row []string)
		want   error
	}{
		{"mojibake title", func(r []string) { r[0] = "???????? Edition" }, errJunkTitle},
		{"no release date", func(r []string) { r[1] = "" }, errMissingGameDate},
		{"no developer", func(r []string) { r[2] = "" }, errMissingDev},
		{"no reviews at all", func(r []string) { r[8], r[9] = "", "" }, errNoReviews},
		{"numeric review column", func(r []string) { r[8] = "499" }, errShiftedReview},
		{"free to play in review column", func(r []string) { r[8] = "Free to play" }, errShiftedReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := base()
			tt.mutate(row)
			_, _, err := normalizeGame(row, gameIdx(), testAttribution)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
