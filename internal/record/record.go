package record

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"

	"liner/internal/track"
)

// delimiter separates front matter from the record body.
const delimiter = "+++"

// frontMatter mirrors the keys a record may carry. Year is decoded loosely
// because the corpus stores it both as a TOML integer and as a 4-digit
// string. The url and search_content keys are advisory copies of derived
// fields; the deriver recomputes and cross-checks them.
type frontMatter struct {
	Title         string `toml:"title"`
	Artist        string `toml:"artist"`
	Album         string `toml:"album"`
	Year          any    `toml:"year"`
	Format        string `toml:"format"`
	Bitrate       string `toml:"bitrate"`
	Length        string `toml:"length"`
	Genre         string `toml:"genre"`
	URL           string `toml:"url"`
	SearchContent string `toml:"search_content"`
}

// Parse validates one raw record and returns the Track it describes. The
// record name is only used for error reporting. Parse has no side effects;
// identical input always yields an identical Track.
func Parse(name string, data []byte) (*track.Track, error) {
	if !utf8.Valid(data) {
		return nil, &MalformedError{Record: name, Reason: ReasonInvalidEncoding}
	}

	matter, body, err := splitFrontMatter(string(data))
	if err != nil {
		return nil, &MalformedError{Record: name, Reason: ReasonInvalidFrontMatter, Err: err}
	}

	var fm frontMatter
	if err := toml.Unmarshal([]byte(matter), &fm); err != nil {
		return nil, &MalformedError{Record: name, Reason: ReasonInvalidFrontMatter, Err: err}
	}

	required := []struct {
		field string
		value string
	}{
		{"title", fm.Title},
		{"artist", fm.Artist},
		{"album", fm.Album},
		{"format", fm.Format},
		{"bitrate", fm.Bitrate},
		{"length", fm.Length},
		{"genre", fm.Genre},
	}
	for _, req := range required {
		if strings.TrimSpace(req.value) == "" {
			return nil, &MalformedError{Record: name, Field: req.field, Reason: ReasonMissingField}
		}
	}
	if fm.Year == nil {
		return nil, &MalformedError{Record: name, Field: "year", Reason: ReasonMissingField}
	}

	year, err := coerceYear(fm.Year)
	if err != nil {
		return nil, &MalformedError{Record: name, Field: "year", Reason: ReasonInvalidYear, Err: err}
	}
	if err := track.ValidateYear(year); err != nil {
		return nil, &MalformedError{Record: name, Field: "year", Reason: ReasonInvalidYear, Err: err}
	}
	if _, err := track.ParseBitrate(strings.TrimSpace(fm.Bitrate)); err != nil {
		return nil, &MalformedError{Record: name, Field: "bitrate", Reason: ReasonInvalidBitrate, Err: err}
	}
	if _, err := track.ParseLength(strings.TrimSpace(fm.Length)); err != nil {
		return nil, &MalformedError{Record: name, Field: "length", Reason: ReasonInvalidLength, Err: err}
	}

	return &track.Track{
		Title:         clean(fm.Title),
		Artist:        clean(fm.Artist),
		Album:         clean(fm.Album),
		Year:          year,
		Format:        clean(fm.Format),
		Bitrate:       strings.TrimSpace(fm.Bitrate),
		Length:        strings.TrimSpace(fm.Length),
		Genre:         clean(fm.Genre),
		Comments:      strings.TrimSpace(body),
		URL:           clean(fm.URL),
		SearchContent: clean(fm.SearchContent),
	}, nil
}

// clean trims whitespace and normalizes canonical text to NFC so that
// visually identical titles produce identical slugs and tokens.
func clean(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}

// splitFrontMatter separates the TOML front matter from the body. The
// document must open with a "+++" line and contain a matching closing line.
func splitFrontMatter(text string) (matter string, body string, err error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return "", "", fmt.Errorf("document does not open with %q", delimiter)
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			matter = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return matter, body, nil
		}
	}
	return "", "", fmt.Errorf("front matter never closed with %q", delimiter)
}

func coerceYear(value any) (int, error) {
	switch v := value.(type) {
	case int64:
		return int(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if len(trimmed) != 4 {
			return 0, fmt.Errorf("year %q is not a 4-digit string", v)
		}
		year, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("year %q: %w", v, err)
		}
		return year, nil
	default:
		return 0, fmt.Errorf("year has unsupported type %T", value)
	}
}
