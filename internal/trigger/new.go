package trigger

import (
	"fmt"
	"sort"
	"strings"

	"omi-relay/internal/model"
)

// Detector finds wake phrases and help intent and extracts the question.
type Detector interface {
	Detect(transcript string) Detection
	Extract(segments []model.Segment) (string, error)
	Config() Config
}

type detector struct {
	cfg Config
}

var _ Detector = (*detector)(nil)

// New validates cfg, fills defaults and orders wake phrases longest first.
func New(cfg Config) (*detector, error) {
	if cfg.MatchPolicy == "" {
		cfg.MatchPolicy = MatchWordBoundary
	}
	if cfg.Extraction == "" {
		cfg.Extraction = ExtractSegment
	}

	switch cfg.MatchPolicy {
	case MatchWordBoundary, MatchSubstring:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMatchPolicy, cfg.MatchPolicy)
	}
	switch cfg.Extraction {
	case ExtractSegment, ExtractTranscript:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExtraction, cfg.Extraction)
	}

	if len(cfg.WakePhrases) == 0 {
		cfg.WakePhrases = DefaultWakePhrases
	}
	if cfg.HelpKeywords == nil {
		cfg.HelpKeywords = DefaultHelpKeywords
	}

	cfg.WakePhrases = normalize(cfg.WakePhrases)
	if len(cfg.WakePhrases) == 0 {
		return nil, ErrNoWakePhrases
	}
	cfg.HelpKeywords = normalize(cfg.HelpKeywords)

	// Longer variants win so "hey omi," consumes its comma.
	sort.SliceStable(cfg.WakePhrases, func(i, j int) bool {
		return len(cfg.WakePhrases[i]) > len(cfg.WakePhrases[j])
	})

	return &detector{cfg: cfg}, nil
}

// Config returns the effective configuration.
func (d *detector) Config() Config {
	out := d.cfg
	out.WakePhrases = append([]string(nil), d.cfg.WakePhrases...)
	out.HelpKeywords = append([]string(nil), d.cfg.HelpKeywords...)
	return out
}

func normalize(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	seen := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
