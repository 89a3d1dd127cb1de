package search

import (
	"errors"
	"reflect"
	"testing"

	"liner/internal/catalog"
	"liner/internal/derive"
	"liner/internal/track"
)

func buildTestIndex(t *testing.T) (*catalog.Catalog, *Index) {
	t.Helper()

	c := catalog.New()
	tracks := []*track.Track{
		{
			Title: "Pontchartrain", Artist: "Vienna Teng", Album: "Dreaming Through the Noise",
			Year: 2006, Format: "FLAC", Bitrate: "746kbps", Length: "6:15", Genre: "Folk",
		},
		{
			Title: "Recessional", Artist: "Vienna Teng", Album: "Dreaming Through the Noise",
			Year: 2006, Format: "FLAC", Bitrate: "711kbps", Length: "4:05", Genre: "Folk",
		},
	}
	for i, trk := range tracks {
		if _, err := derive.Apply(trk.Title, trk); err != nil {
			t.Fatalf("derive.Apply(%d) error = %v", i, err)
		}
		if err := c.Insert(trk); err != nil {
			t.Fatalf("Insert(%d) error = %v", i, err)
		}
	}
	return c, Build(c)
}

func TestLookup(t *testing.T) {
	_, idx := buildTestIndex(t)

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"shared artist token", "teng", []string{"/tracks/pontchartrain", "/tracks/recessional"}},
		{"unique title token", "pontchartrain", []string{"/tracks/pontchartrain"}},
		{"case-insensitive", "TENG", []string{"/tracks/pontchartrain", "/tracks/recessional"}},
		{"unknown token", "zeppelin", nil},
		{"empty token", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Lookup(tt.token)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lookup(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestPrefixSearch(t *testing.T) {
	_, idx := buildTestIndex(t)

	got, err := idx.PrefixSearch("rec")
	if err != nil {
		t.Fatalf("PrefixSearch() error = %v", err)
	}
	want := []string{"/tracks/recessional"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrefixSearch(%q) = %v, want %v", "rec", got, want)
	}

	got, err = idx.PrefixSearch("vien")
	if err != nil {
		t.Fatalf("PrefixSearch() error = %v", err)
	}
	want = []string{"/tracks/pontchartrain", "/tracks/recessional"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrefixSearch(%q) = %v, want %v", "vien", got, want)
	}
}

func TestPrefixSearchEmptyPrefix(t *testing.T) {
	_, idx := buildTestIndex(t)

	for _, prefix := range []string{"", "   "} {
		if _, err := idx.PrefixSearch(prefix); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("PrefixSearch(%q) error = %v, want ErrInvalidQuery", prefix, err)
		}
	}
}

func TestDuplicateTokensContributeOnce(t *testing.T) {
	c := catalog.New()
	trk := &track.Track{
		Title: "Noise Noise", Artist: "Noise", Album: "Noise",
		Year: 2006, Format: "FLAC", Bitrate: "746kbps", Length: "6:15", Genre: "Noise",
	}
	if _, err := derive.Apply(trk.Title, trk); err != nil {
		t.Fatalf("derive.Apply() error = %v", err)
	}
	if err := c.Insert(trk); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	idx := Build(c)
	got := idx.Lookup("noise")
	if len(got) != 1 {
		t.Errorf("Lookup(noise) = %v, want a single reference", got)
	}
}

func TestRemoveDetachesReferences(t *testing.T) {
	c, idx := buildTestIndex(t)

	if _, err := c.Remove("/tracks/recessional"); err != nil {
		t.Fatalf("catalog.Remove() error = %v", err)
	}
	idx.Remove("/tracks/recessional")

	if got := idx.Lookup("recessional"); got != nil {
		t.Errorf("Lookup(recessional) = %v after removal, want nil", got)
	}
	want := []string{"/tracks/pontchartrain"}
	if got := idx.Lookup("teng"); !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup(teng) = %v after removal, want %v", got, want)
	}
}

func TestTokensSorted(t *testing.T) {
	_, idx := buildTestIndex(t)

	tokens := idx.Tokens()
	if len(tokens) == 0 {
		t.Fatal("Tokens() empty")
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i-1] >= tokens[i] {
			t.Fatalf("Tokens() not strictly sorted at %d: %q >= %q", i, tokens[i-1], tokens[i])
		}
	}
	if idx.TokenCount() != len(tokens) {
		t.Errorf("TokenCount() = %d, want %d", idx.TokenCount(), len(tokens))
	}
}
