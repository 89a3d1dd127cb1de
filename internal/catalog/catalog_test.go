package catalog

import (
	"errors"
	"testing"

	"liner/internal/track"
)

func derivedTrack(title, artist, album, url string) *track.Track {
	return &track.Track{
		Title:   title,
		Artist:  artist,
		Album:   album,
		Year:    2006,
		Format:  "FLAC",
		Bitrate: "746kbps",
		Length:  "6:15",
		Genre:   "Folk",
		URL:     url,
	}
}

func TestInsertAndGet(t *testing.T) {
	c := New()
	trk := derivedTrack("Pontchartrain", "Vienna Teng", "Dreaming Through the Noise", "/tracks/pontchartrain")
	if err := c.Insert(trk); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := c.Get("/tracks/pontchartrain")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != trk {
		t.Error("Get() returned a different track")
	}

	if _, err := c.Get("/tracks/absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(absent) error = %v, want ErrNotFound", err)
	}
}

func TestInsertRejectsUnderivedTrack(t *testing.T) {
	c := New()
	if err := c.Insert(derivedTrack("X", "Y", "Z", "")); !errors.Is(err, ErrNotDerived) {
		t.Errorf("Insert(underived) error = %v, want ErrNotDerived", err)
	}
}

func TestInsertDuplicateURL(t *testing.T) {
	c := New()
	first := derivedTrack("Pontchartrain", "Vienna Teng", "Dreaming Through the Noise", "/tracks/pontchartrain")
	second := derivedTrack("Pontchartrain", "Someone Else", "Other Album", "/tracks/pontchartrain")

	if err := c.Insert(first); err != nil {
		t.Fatalf("Insert(first) error = %v", err)
	}
	err := c.Insert(second)
	if !errors.Is(err, ErrDuplicateURL) {
		t.Fatalf("Insert(second) error = %v, want ErrDuplicateURL", err)
	}
	var dup *DuplicateURLError
	if !errors.As(err, &dup) {
		t.Fatalf("Insert(second) error = %T, want *DuplicateURLError", err)
	}
	if dup.Existing != "Pontchartrain" || dup.Incoming != "Pontchartrain" {
		t.Errorf("DuplicateURLError = %+v", dup)
	}

	// The catalog still contains only the first track.
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	got, err := c.Get("/tracks/pontchartrain")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != first {
		t.Error("duplicate insert displaced the original track")
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	c := New()
	urls := []string{"/tracks/c", "/tracks/a", "/tracks/b"}
	for _, url := range urls {
		if err := c.Insert(derivedTrack(url, "Artist", "Album", url)); err != nil {
			t.Fatalf("Insert(%s) error = %v", url, err)
		}
	}

	var got []string
	for trk := range c.All() {
		got = append(got, trk.URL)
	}
	if len(got) != len(urls) {
		t.Fatalf("All() yielded %d tracks, want %d", len(got), len(urls))
	}
	for i, url := range urls {
		if got[i] != url {
			t.Errorf("All()[%d] = %s, want %s", i, got[i], url)
		}
	}
}

func TestAllIsRestartable(t *testing.T) {
	c := New()
	for _, url := range []string{"/tracks/a", "/tracks/b"} {
		if err := c.Insert(derivedTrack(url, "Artist", "Album", url)); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	count := func() int {
		n := 0
		for range c.All() {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != 2 || second != 2 {
		t.Errorf("All() counts = %d, %d, want 2, 2", first, second)
	}
}

func TestByAlbumAndByArtist(t *testing.T) {
	c := New()
	inserts := []*track.Track{
		derivedTrack("Pontchartrain", "Vienna Teng", "Dreaming Through the Noise", "/tracks/pontchartrain"),
		derivedTrack("Recessional", "Vienna Teng", "Dreaming Through the Noise", "/tracks/recessional"),
		derivedTrack("Elsewhere", "Other Artist", "Other Album", "/tracks/elsewhere"),
	}
	for _, trk := range inserts {
		if err := c.Insert(trk); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	var byAlbum []string
	for trk := range c.ByAlbum("Dreaming Through the Noise") {
		byAlbum = append(byAlbum, trk.Title)
	}
	if len(byAlbum) != 2 || byAlbum[0] != "Pontchartrain" || byAlbum[1] != "Recessional" {
		t.Errorf("ByAlbum() = %v, want ordered pair", byAlbum)
	}

	var byArtist []string
	for trk := range c.ByArtist("Other Artist") {
		byArtist = append(byArtist, trk.Title)
	}
	if len(byArtist) != 1 || byArtist[0] != "Elsewhere" {
		t.Errorf("ByArtist() = %v", byArtist)
	}

	// Case-sensitive exact match.
	for range c.ByArtist("vienna teng") {
		t.Fatal("ByArtist() matched case-insensitively")
	}
}

func TestRemove(t *testing.T) {
	c := New()
	trk := derivedTrack("Pontchartrain", "Vienna Teng", "Dreaming Through the Noise", "/tracks/pontchartrain")
	if err := c.Insert(trk); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	removed, err := c.Remove("/tracks/pontchartrain")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if removed != trk {
		t.Error("Remove() returned a different track")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after remove, want 0", c.Len())
	}
	if _, err := c.Remove("/tracks/pontchartrain"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove() error = %v, want ErrNotFound", err)
	}

	// Remove-then-insert is the update path.
	updated := derivedTrack("Pontchartrain", "Vienna Teng", "Dreaming Through the Noise (Live)", "/tracks/pontchartrain")
	if err := c.Insert(updated); err != nil {
		t.Fatalf("re-Insert() error = %v", err)
	}
	got, err := c.Get("/tracks/pontchartrain")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Album != "Dreaming Through the Noise (Live)" {
		t.Errorf("Album = %q after update", got.Album)
	}
}
