package track

// Track is one validated catalog entry. The canonical fields come straight
// from the record; URL and SearchContent are derived and overwritten by the
// deriver before the track enters the catalog.
type Track struct {
	Title    string
	Artist   string
	Album    string
	Year     int
	Format   string
	Bitrate  string
	Length   string
	Genre    string
	Comments string

	// Derived fields. Stored values from the source record are advisory
	// only; derivation always recomputes them.
	URL           string
	SearchContent string
}

// BitrateKbps returns the numeric bitrate in kbps. The field is validated at
// parse time, so a zero return only happens for a Track that never went
// through the record parser.
func (t *Track) BitrateKbps() int {
	kbps, err := ParseBitrate(t.Bitrate)
	if err != nil {
		return 0
	}
	return kbps
}

// LengthSeconds returns the track length in whole seconds.
func (t *Track) LengthSeconds() int {
	seconds, err := ParseLength(t.Length)
	if err != nil {
		return 0
	}
	return seconds
}
