package web

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/mediashelf/entertainment/internal/config"
	"github.com/mediashelf/entertainment/internal/store"
)

func setupServer(t *testing.T) *Server {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Init(context.Background()))

	cfg := &config.Config{}
	cfg.Server.RequestTimeout = 60 * time.Second
	cfg.Rate.Enabled = false

	return NewServer(st, cfg)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	s := setupServer(t)
	rec := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBookLifecycle(t *testing.T) {
	s := setupServer(t)

	create := map[string]any{
		"title":          "Dune",
		"author":         "Frank Herbert",
		"description":    "Set on the desert planet Arrakis.",
		"genres":         []string{"Science Fiction", "Fiction"},
		"avg_rating":     4.25,
		"rating_reviews": 1171016,
	}
	rec := doJSON(t, s, http.MethodPost, "/api/books", create)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[store.Book](t, rec)
	require.Positive(t, created.ID)
	require.Equal(t, "Dune", created.Title)
	require.Equal(t, "Science Fiction, Fiction", created.Genres)
	require.NotNil(t, created.CreatedBy)
	require.Equal(t, "api", *created.CreatedBy)

	id := strconv.FormatInt(created.ID, 10)

	rec = doJSON(t, s, http.MethodGet, "/api/books/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[store.Book](t, rec)
	require.Equal(t, "Frank Herbert", got.Author)

	create["avg_rating"] = 4.3
	rec = doJSON(t, s, http.MethodPut, "/api/books/"+id, create)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[store.Book](t, rec)
	require.NotNil(t, updated.AvgRating)
	require.Equal(t, 4.3, *updated.AvgRating)
	require.NotNil(t, updated.UpdatedBy)
	require.Equal(t, "api", *updated.UpdatedBy)

	rec = doJSON(t, s, http.MethodDelete, "/api/books/"+id, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/books/"+id, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	errResp := decode[errorResponse](t, rec)
	require.Equal(t, codeNotFound, errResp.Code)
}

func TestCreateBook_Duplicate(t *testing.T) {
	s := setupServer(t)

	body := map[string]any{
		"title":  "Dune",
		"author": "Frank Herbert",
		"genres": []string{"Science Fiction"},
	}
	rec := doJSON(t, s, http.MethodPost, "/api/books", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Re-posting the same natural key is a client error, and the driver's
	// constraint message must not leak into the response.
	rec = doJSON(t, s, http.MethodPost, "/api/books", body)
	require.Equal(t, http.StatusConflict, rec.Code)
	errResp := decode[errorResponse](t, rec)
	require.Equal(t, codeConflict, errResp.Code)
	require.Equal(t, "record already exists", errResp.Error)
}

func TestUpdateBook_DuplicateKey(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/books", map[string]any{
		"title":  "Dune",
		"author": "Frank Herbert",
		"genres": []string{"Science Fiction"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/books", map[string]any{
		"title":  "Dune Messiah",
		"author": "Frank Herbert",
		"genres": []string{"Science Fiction"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	other := decode[store.Book](t, rec)

	rec = doJSON(t, s, http.MethodPut, "/api/books/"+strconv.FormatInt(other.ID, 10), map[string]any{
		"title":  "Dune",
		"author": "Frank Herbert",
		"genres": []string{"Science Fiction"},
	})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateBook_ValidationError(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/books", map[string]any{
		"title":  "Dune",
		"genres": []string{"Science Fiction"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errResp := decode[errorResponse](t, rec)
	require.Equal(t, codeValidationFailed, errResp.Code)
	require.Contains(t, errResp.Fields, "author")
}

func TestCreateMovie_BadPremiereFormat(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/movies", map[string]any{
		"title":    "Dune",
		"premiere": "10/22/2021",
		"genres":   []string{"Science Fiction"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errResp := decode[errorResponse](t, rec)
	require.Contains(t, errResp.Fields, "premiere")
}

func TestMalformedJSON(t *testing.T) {
	s := setupServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decode[errorResponse](t, rec)
	require.Equal(t, codeBadRequest, errResp.Code)
}

func TestNonNumericID(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/movies/abc", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/api/songs/-1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMissingRecord(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPut, "/api/games/999", map[string]any{
		"title":     "Portal 2",
		"premiere":  "2011-04-18",
		"developer": "Valve",
		"genres":    []string{"Puzzle"},
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMovies(t *testing.T) {
	s := setupServer(t)

	movies := []map[string]any{
		{"title": "Dune", "premiere": "2021-10-22", "score": 7.8, "genres": []string{"Science Fiction"}},
		{"title": "Dune: Part Two", "premiere": "2024-02-27", "score": 8.3, "genres": []string{"Science Fiction"}},
		{"title": "Amélie", "premiere": "2001-04-25", "score": 7.9, "genres": []string{"Romance", "Comedy"}},
	}
	for _, m := range movies {
		rec := doJSON(t, s, http.MethodPost, "/api/movies", m)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, s, http.MethodGet, "/api/movies?title=dune", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[listResponse[store.Movie]](t, rec)
	require.Equal(t, 2, list.Count)

	rec = doJSON(t, s, http.MethodGet, "/api/movies?score_ge=8", nil)
	list = decode[listResponse[store.Movie]](t, rec)
	require.Equal(t, 1, list.Count)
	require.Equal(t, "Dune: Part Two", list.Results[0].Title)

	rec = doJSON(t, s, http.MethodGet, "/api/movies?premiere_before=2010-01-01", nil)
	list = decode[listResponse[store.Movie]](t, rec)
	require.Equal(t, 1, list.Count)
	require.Equal(t, "Amélie", list.Results[0].Title)

	rec = doJSON(t, s, http.MethodGet, "/api/movies?limit=2", nil)
	list = decode[listResponse[store.Movie]](t, rec)
	require.Equal(t, 2, list.Count)

	rec = doJSON(t, s, http.MethodGet, "/api/movies?limit=2&offset=2", nil)
	list = decode[listResponse[store.Movie]](t, rec)
	require.Equal(t, 1, list.Count)
}

func TestSongCreateAndFilter(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/songs", map[string]any{
		"title":          "I Don't Care",
		"artist":         "Ed Sheeran",
		"album_name":     "I Don't Care (with Justin Bieber)",
		"album_premiere": "2019-06-14",
		"playlist_genre": "pop",
		"duration_ms":    194754,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/songs?artist=sheeran", nil)
	list := decode[listResponse[store.Song]](t, rec)
	require.Equal(t, 1, list.Count)

	rec = doJSON(t, s, http.MethodGet, "/api/songs?artist=nobody", nil)
	list = decode[listResponse[store.Song]](t, rec)
	require.Equal(t, 0, list.Count)
}

func TestGenresEndpoint(t *testing.T) {
	s := setupServer(t)

	for _, m := range []map[string]any{
		{"title": "A", "premiere": "2020-01-01", "genres": []string{"Drama", "Action"}},
		{"title": "B", "premiere": "2020-01-02", "genres": []string{"Action", "Thriller"}},
	} {
		rec := doJSON(t, s, http.MethodPost, "/api/movies", m)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, s, http.MethodGet, "/api/movies/genres", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	genres := decode[[]string](t, rec)
	require.Equal(t, []string{"action", "drama", "thriller"}, genres)
}

func TestGamePriceFilter(t *testing.T) {
	s := setupServer(t)

	for _, g := range []map[string]any{
		{"title": "Counter-Strike 2", "premiere": "2012-08-21", "developer": "Valve", "genres": []string{"Action"}, "price_eur": 11.0},
		{"title": "Portal 2", "premiere": "2011-04-18", "developer": "Valve", "genres": []string{"Puzzle"}, "price_eur": 5.5},
	} {
		rec := doJSON(t, s, http.MethodPost, "/api/games", g)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, s, http.MethodGet, "/api/games?price_le=6", nil)
	list := decode[listResponse[store.Game]](t, rec)
	require.Equal(t, 1, list.Count)
	require.Equal(t, "Portal 2", list.Results[0].Title)
}

func TestSecurityHeaders(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
