package textutil

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single word", "Pontchartrain", "pontchartrain"},
		{"multi word", "Dreaming Through the Noise", "dreaming-through-the-noise"},
		{"punctuation run", "Hello, World!", "hello-world"},
		{"apostrophe", "Don't Stop", "don-t-stop"},
		{"digits", "Track 99", "track-99"},
		{"leading and trailing junk", "  --Intro--  ", "intro"},
		{"only punctuation", "???", ""},
		{"empty", "", ""},
		{"unicode letters", "Éponine", "éponine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
