// Package search builds a lightweight inverted index over catalog tracks.
//
// The index maps normalized tokens to sets of track URLs. It never owns
// track data; entries are back-references into the catalog, so removing a
// track from the catalog must be paired with Remove here. Both structures
// are immutable once a build completes, so no synchronization is needed
// within a build.
package search

import (
	"errors"
	"sort"
	"strings"

	"liner/internal/catalog"
	"liner/internal/textutil"
	"liner/internal/track"
)

// ErrInvalidQuery is returned for empty or unusable queries. A caller
// error, never a crash.
var ErrInvalidQuery = errors.New("invalid query")

// Index is an inverted mapping from token to the set of track URLs whose
// search content contains it.
type Index struct {
	postings map[string]map[string]struct{}
}

// Build indexes every track in the catalog. Tokens come from the track's
// search content, split on Unicode whitespace, lowercased, and stripped of
// surrounding punctuation. Duplicate tokens within one track contribute a
// single reference.
func Build(c *catalog.Catalog) *Index {
	idx := &Index{postings: make(map[string]map[string]struct{})}
	for trk := range c.All() {
		idx.Add(trk)
	}
	return idx
}

// Add indexes a single track. Used by Build and by the remove-then-insert
// update path.
func (i *Index) Add(t *track.Track) {
	for _, token := range textutil.Tokenize(t.SearchContent) {
		set, ok := i.postings[token]
		if !ok {
			set = make(map[string]struct{})
			i.postings[token] = set
		}
		set[t.URL] = struct{}{}
	}
}

// Remove detaches every reference to the given URL. Tokens left with no
// references are dropped entirely.
func (i *Index) Remove(url string) {
	for token, set := range i.postings {
		if _, ok := set[url]; !ok {
			continue
		}
		delete(set, url)
		if len(set) == 0 {
			delete(i.postings, token)
		}
	}
}

// Lookup returns the sorted URLs referenced by an exact token match. The
// query is normalized the same way indexed tokens are. An unknown token
// yields an empty result, never an error.
func (i *Index) Lookup(token string) []string {
	normalized := textutil.NormalizeToken(token)
	if normalized == "" {
		return nil
	}
	return sortedURLs(i.postings[normalized])
}

// PrefixSearch returns the sorted union of references for every token
// starting with the given prefix. An empty prefix is rejected with
// ErrInvalidQuery.
func (i *Index) PrefixSearch(prefix string) ([]string, error) {
	normalized := strings.ToLower(strings.TrimSpace(prefix))
	if normalized == "" {
		return nil, ErrInvalidQuery
	}
	union := make(map[string]struct{})
	for token, set := range i.postings {
		if !strings.HasPrefix(token, normalized) {
			continue
		}
		for url := range set {
			union[url] = struct{}{}
		}
	}
	return sortedURLs(union), nil
}

// Tokens returns every indexed token in sorted order.
func (i *Index) Tokens() []string {
	tokens := make([]string, 0, len(i.postings))
	for token := range i.postings {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// TokenCount reports the number of distinct tokens.
func (i *Index) TokenCount() int {
	return len(i.postings)
}

func sortedURLs(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	urls := make([]string, 0, len(set))
	for url := range set {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}
