package model

import "strings"

// Segment is one chunk of transcribed speech in a webhook payload.
type Segment struct {
	Text      string   `json:"text"`
	Start     *float64 `json:"start,omitempty"`
	End       *float64 `json:"end,omitempty"`
	Speaker   string   `json:"speaker,omitempty"`
	SpeakerID *int     `json:"speaker_id,omitempty"`
	IsUser    *bool    `json:"is_user,omitempty"`
}

// Transcript joins segment texts with single spaces.
func Transcript(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
