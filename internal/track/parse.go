package track

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// minYear is the earliest plausible recording year accepted on ingest.
const minYear = 1900

var (
	bitratePattern = regexp.MustCompile(`^([0-9]+)kbps$`)
	lengthPattern  = regexp.MustCompile(`^([0-9]+):([0-5][0-9])$`)
)

// ParseBitrate parses a "<digits>kbps" bitrate string into a positive kbps
// value.
func ParseBitrate(value string) (int, error) {
	match := bitratePattern.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("bitrate %q does not match <digits>kbps", value)
	}
	kbps, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("bitrate %q: %w", value, err)
	}
	if kbps <= 0 {
		return 0, fmt.Errorf("bitrate %q must be positive", value)
	}
	return kbps, nil
}

// ParseLength parses an "M+:SS" length string (minutes unbounded, seconds
// 00-59) into total seconds.
func ParseLength(value string) (int, error) {
	match := lengthPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("length %q does not match M+:SS with seconds 00-59", value)
	}
	minutes, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("length %q: %w", value, err)
	}
	seconds, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, fmt.Errorf("length %q: %w", value, err)
	}
	return minutes*60 + seconds, nil
}

// ValidateYear checks that a year falls in the plausible range from 1900
// through next year.
func ValidateYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < minYear || year > maxYear {
		return fmt.Errorf("year %d outside plausible range %d-%d", year, minYear, maxYear)
	}
	return nil
}
