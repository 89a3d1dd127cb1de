// Package library groups a flat catalog into artists and albums for page
// export.
//
// Grouping is a view over the catalog, recomputed per build: albums take
// their year and genre from the first track seen, tracks keep catalog
// order within an album, albums sort by year then title, and artists sort
// with Unicode collation so index pages read naturally.
package library

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"liner/internal/catalog"
	"liner/internal/track"
)

// Album is one artist's album with its tracks in catalog order.
type Album struct {
	Title  string
	Artist string
	Year   int
	Genre  string
	Tracks []*track.Track
}

// TrackCount reports the number of tracks on the album.
func (a *Album) TrackCount() int {
	return len(a.Tracks)
}

// Artist owns the albums grouped under one artist name.
type Artist struct {
	Name   string
	Albums []*Album
}

// Library is the grouped view over one build's catalog.
type Library struct {
	artists []*Artist
	albums  int
	tracks  int
}

// Build groups every catalog track under its artist and album.
func Build(c *catalog.Catalog) *Library {
	byArtist := make(map[string]*Artist)
	byAlbum := make(map[string]*Album)
	var order []string

	for trk := range c.All() {
		artist, ok := byArtist[trk.Artist]
		if !ok {
			artist = &Artist{Name: trk.Artist}
			byArtist[trk.Artist] = artist
			order = append(order, trk.Artist)
		}

		albumKey := trk.Artist + "\x00" + trk.Album
		album, ok := byAlbum[albumKey]
		if !ok {
			album = &Album{
				Title:  trk.Album,
				Artist: trk.Artist,
				Year:   trk.Year,
				Genre:  trk.Genre,
			}
			byAlbum[albumKey] = album
			artist.Albums = append(artist.Albums, album)
		}
		album.Tracks = append(album.Tracks, trk)
	}

	lib := &Library{albums: len(byAlbum), tracks: c.Len()}

	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(order, func(i, j int) bool {
		return collator.CompareString(order[i], order[j]) < 0
	})
	for _, name := range order {
		artist := byArtist[name]
		sort.SliceStable(artist.Albums, func(i, j int) bool {
			a, b := artist.Albums[i], artist.Albums[j]
			if a.Year != b.Year {
				return a.Year < b.Year
			}
			return collator.CompareString(a.Title, b.Title) < 0
		})
		lib.artists = append(lib.artists, artist)
	}
	return lib
}

// Artists returns every artist in collated order.
func (l *Library) Artists() []*Artist {
	return l.artists
}

// ArtistCount reports the number of distinct artists.
func (l *Library) ArtistCount() int {
	return len(l.artists)
}

// AlbumCount reports the number of distinct artist/album pairs.
func (l *Library) AlbumCount() int {
	return l.albums
}

// TrackCount reports the number of tracks across the whole library.
func (l *Library) TrackCount() int {
	return l.tracks
}
