package model

import "testing"

func TestTranscript(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{"empty", nil, ""},
		{"single", []Segment{{Text: "Hey Omi"}}, "Hey Omi"},
		{"joins and trims", []Segment{{Text: " Hey Omi "}, {Text: ""}, {Text: "what time is it?"}}, "Hey Omi what time is it?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transcript(tt.segments); got != tt.want {
				t.Errorf("Transcript() = %q, want %q", got, tt.want)
			}
		})
	}
}
