package trigger

import (
	"strings"
	"unicode"

	"omi-relay/internal/model"
)

// Extract returns the question that follows the wake phrase.
// It returns ErrNoQuestion when a phrase is present but nothing usable follows,
// and also when no segment holds a wake phrase at all.
func (d *detector) Extract(segments []model.Segment) (string, error) {
	if d.cfg.Extraction == ExtractTranscript {
		return d.extractFromTranscript(segments)
	}
	return d.extractFromSegments(segments)
}

// extractFromSegments stops at the first segment holding any variant.
// Variants are tried in priority order within that segment.
func (d *detector) extractFromSegments(segments []model.Segment) (string, error) {
	for i, seg := range segments {
		end, ok := d.firstVariant(seg.Text)
		if !ok {
			continue
		}

		if q := cleanQuestion(seg.Text[end:]); q != "" {
			return q, nil
		}

		if q := cleanQuestion(model.Transcript(segments[i+1:])); q != "" {
			return q, nil
		}
		return "", ErrNoQuestion
	}
	return "", ErrNoQuestion
}

func (d *detector) extractFromTranscript(segments []model.Segment) (string, error) {
	text := model.Transcript(segments)
	end, ok := d.firstVariant(text)
	if !ok {
		return "", ErrNoQuestion
	}
	if q := cleanQuestion(text[end:]); q != "" {
		return q, nil
	}
	return "", ErrNoQuestion
}

// firstVariant returns the end offset of the highest priority variant found in text.
func (d *detector) firstVariant(text string) (int, bool) {
	for _, v := range d.cfg.WakePhrases {
		if _, end, ok := find(text, v, d.cfg.MatchPolicy); ok {
			return end, true
		}
	}
	return 0, false
}

func cleanQuestion(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(leadingSeparators, r)
	})
	return strings.TrimSpace(s)
}
