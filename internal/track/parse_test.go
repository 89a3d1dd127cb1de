package track

import "testing"

func TestParseBitrate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"typical flac", "746kbps", 746, false},
		{"typical mp3", "320kbps", 320, false},
		{"zero", "0kbps", 0, true},
		{"missing unit", "746", 0, true},
		{"wrong unit", "746kbit", 0, true},
		{"leading junk", "x746kbps", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBitrate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBitrate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseBitrate(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"six fifteen", "6:15", 375, false},
		{"four oh five", "4:05", 245, false},
		{"long form", "123:00", 7380, false},
		{"invalid seconds", "6:75", 0, true},
		{"single digit seconds", "6:5", 0, true},
		{"no colon", "615", 0, true},
		{"negative", "-6:15", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLength(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseLength(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateYear(t *testing.T) {
	if err := ValidateYear(2006); err != nil {
		t.Errorf("ValidateYear(2006) = %v, want nil", err)
	}
	if err := ValidateYear(1899); err == nil {
		t.Error("ValidateYear(1899) = nil, want error")
	}
	if err := ValidateYear(9999); err == nil {
		t.Error("ValidateYear(9999) = nil, want error")
	}
}

func TestTrackDerivedNumbers(t *testing.T) {
	trk := Track{Bitrate: "746kbps", Length: "6:15"}
	if got := trk.BitrateKbps(); got != 746 {
		t.Errorf("BitrateKbps() = %d, want 746", got)
	}
	if got := trk.LengthSeconds(); got != 375 {
		t.Errorf("LengthSeconds() = %d, want 375", got)
	}
}
