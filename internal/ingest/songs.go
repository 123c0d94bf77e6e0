package ingest

import (
	"context"
	"errors"

	"github.com/mediashelf/entertainment/internal/store"
)

// spotify_songs.csv: track_* columns are renamed to their catalog names
// and the eleven audio-feature columns (danceability, energy, key,
// loudness, mode, speechiness, acousticness, instrumentalness, liveness,
// valence, tempo) are dropped.
var songsSource = source{
	Key:         "songs",
	File:        "spotify_songs.csv",
	Attribution: "www.kaggle.com - joebeachcapital",
	Normalize:   normalizeSong,
	Insert: func(ctx context.Context, st *store.Store, rec any) error {
		return st.CreateSong(ctx, rec.(*store.Song))
	},
}

var errMissingSongFields = errors.New("missing title, artist or album name")

func normalizeSong(row []string, idx headerIndex, attribution string) (any, string, error) {
	title := cell(row, idx, "track_name")
	artist := cell(row, idx, "track_artist")
	album := cell(row, idx, "track_album_name")
	if title == "" || artist == "" || album == "" {
		return nil, "", errMissingSongFields
	}

	s := &store.Song{
		SpotifyID:        optional(cell(row, idx, "track_id")),
		Title:            title,
		Artist:           artist,
		SongPopularity:   toInt(cell(row, idx, "track_popularity")),
		AlbumID:          optional(cell(row, idx, "track_album_id")),
		AlbumName:        album,
		PlaylistName:     optional(cell(row, idx, "playlist_name")),
		PlaylistGenre:    optional(cell(row, idx, "playlist_genre")),
		PlaylistSubgenre: optional(cell(row, idx, "playlist_subgenre")),
		DurationMS:       toInt(cell(row, idx, "duration_ms")),
		CreatedBy:        &attribution,
	}

	// Album release dates are sometimes just a year or year-month.
	if premiere, ok := toDate(cell(row, idx, "track_album_release_date")); ok {
		s.AlbumPremiere = &premiere
	}

	return s, dedupeKey(title, artist, album, cell(row, idx, "duration_ms")), nil
}
