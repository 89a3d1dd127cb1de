// Package catalog holds the ordered, deduplicated set of tracks for one
// build, keyed by URL.
//
// Insertion order is preserved so iteration is reproducible across runs.
// Tracks are never mutated after insertion; an update is a Remove followed
// by an Insert, and the caller is responsible for detaching the removed
// track's references from the search index at the same time.
package catalog

import (
	"iter"

	"liner/internal/track"
)

// Catalog is an insertion-ordered mapping from URL to Track. The zero value
// is not usable; call New.
type Catalog struct {
	order []string
	byURL map[string]*track.Track
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{byURL: make(map[string]*track.Track)}
}

// Len reports the number of tracks held.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Insert adds a derived track. A track whose URL is already present is
// rejected with *DuplicateURLError and the catalog is left unchanged; a
// colliding slug hides a real title collision and must never be silently
// overwritten.
func (c *Catalog) Insert(t *track.Track) error {
	if t.URL == "" {
		return ErrNotDerived
	}
	if existing, ok := c.byURL[t.URL]; ok {
		return &DuplicateURLError{URL: t.URL, Existing: existing.Title, Incoming: t.Title}
	}
	c.byURL[t.URL] = t
	c.order = append(c.order, t.URL)
	return nil
}

// Get returns the track at the given URL, or ErrNotFound.
func (c *Catalog) Get(url string) (*track.Track, error) {
	t, ok := c.byURL[url]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

// Remove deletes the track at the given URL and returns it, or ErrNotFound.
func (c *Catalog) Remove(url string) (*track.Track, error) {
	t, ok := c.byURL[url]
	if !ok {
		return nil, ErrNotFound
	}
	delete(c.byURL, url)
	for i, existing := range c.order {
		if existing == url {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return t, nil
}

// All yields every track in insertion order. The sequence is restartable;
// each range recomputes from the current contents.
func (c *Catalog) All() iter.Seq[*track.Track] {
	return func(yield func(*track.Track) bool) {
		for _, url := range c.order {
			if !yield(c.byURL[url]) {
				return
			}
		}
	}
}

// ByAlbum yields tracks whose album matches exactly, case-sensitive, in
// insertion order.
func (c *Catalog) ByAlbum(album string) iter.Seq[*track.Track] {
	return c.filter(func(t *track.Track) bool { return t.Album == album })
}

// ByArtist yields tracks whose artist matches exactly, case-sensitive, in
// insertion order.
func (c *Catalog) ByArtist(artist string) iter.Seq[*track.Track] {
	return c.filter(func(t *track.Track) bool { return t.Artist == artist })
}

func (c *Catalog) filter(keep func(*track.Track) bool) iter.Seq[*track.Track] {
	return func(yield func(*track.Track) bool) {
		for _, url := range c.order {
			t := c.byURL[url]
			if !keep(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}
