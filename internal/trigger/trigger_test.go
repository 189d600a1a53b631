package trigger

import (
	"errors"
	"testing"

	"omi-relay/internal/model"
)

func newDetector(t *testing.T, cfg Config) Detector {
	t.Helper()
	d, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func segs(texts ...string) []model.Segment {
	out := make([]model.Segment, len(texts))
	for i, s := range texts {
		out[i] = model.Segment{Text: s}
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		d := newDetector(t, Config{})
		cfg := d.Config()
		if cfg.MatchPolicy != MatchWordBoundary || cfg.Extraction != ExtractSegment {
			t.Errorf("policy = %q extraction = %q", cfg.MatchPolicy, cfg.Extraction)
		}
		if cfg.WakePhrases[0] != "hey, omi," || cfg.WakePhrases[len(cfg.WakePhrases)-1] != "hey omi" {
			t.Errorf("wake phrases = %v", cfg.WakePhrases)
		}
		if len(cfg.HelpKeywords) != len(DefaultHelpKeywords) {
			t.Errorf("help keywords = %v", cfg.HelpKeywords)
		}
	})

	t.Run("orders custom phrases longest first", func(t *testing.T) {
		d := newDetector(t, Config{WakePhrases: []string{"Omi", " Hey Omi "}})
		if got := d.Config().WakePhrases; got[0] != "hey omi" || got[1] != "omi" {
			t.Errorf("wake phrases = %v", got)
		}
	})

	t.Run("invalid policy", func(t *testing.T) {
		if _, err := New(Config{MatchPolicy: "fuzzy"}); !errors.Is(err, ErrInvalidMatchPolicy) {
			t.Errorf("err = %v, want ErrInvalidMatchPolicy", err)
		}
	})

	t.Run("invalid extraction", func(t *testing.T) {
		if _, err := New(Config{Extraction: "llm"}); !errors.Is(err, ErrInvalidExtraction) {
			t.Errorf("err = %v, want ErrInvalidExtraction", err)
		}
	})

	t.Run("blank wake phrases", func(t *testing.T) {
		if _, err := New(Config{WakePhrases: []string{"  "}}); !errors.Is(err, ErrNoWakePhrases) {
			t.Errorf("err = %v, want ErrNoWakePhrases", err)
		}
	})
}

func TestDetect(t *testing.T) {
	d := newDetector(t, Config{})

	tests := []struct {
		name       string
		transcript string
		want       Detection
	}{
		{"plain chatter", "just chatting about lunch", Detection{}},
		{"wake phrase", "Hey Omi, what's 2+2?", Detection{Triggered: true}},
		{"wake phrase upper case", "HEY, OMI what's up", Detection{Triggered: true}},
		{"help only", "can you help me", Detection{HelpRequested: true}},
		{"help phrase", "What can you do exactly", Detection{HelpRequested: true}},
		{"both", "hey omi help", Detection{Triggered: true, HelpRequested: true}},
		{"glued word is not a wake phrase", "hey omicron variant", Detection{}},
		{"glued word is not help", "that was helpful", Detection{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.transcript)
			if got != tt.want {
				t.Errorf("Detect(%q) = %+v, want %+v", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestDetect_SubstringPolicy(t *testing.T) {
	d := newDetector(t, Config{MatchPolicy: MatchSubstring})

	got := d.Detect("hey omicron variant")
	if !got.Triggered {
		t.Error("substring policy should trigger on glued word")
	}
	if !d.Detect("that was helpful").HelpRequested {
		t.Error("substring policy should find help inside helpful")
	}
}

func TestDetection(t *testing.T) {
	if !(Detection{}).Ignored() {
		t.Error("empty detection should be ignored")
	}
	if !(Detection{HelpRequested: true}).HelpOnly() {
		t.Error("help without trigger should be help only")
	}
	if (Detection{HelpRequested: true, Triggered: true}).HelpOnly() {
		t.Error("triggered help is not help only")
	}
}

func TestExtract_Segment(t *testing.T) {
	d := newDetector(t, Config{})

	tests := []struct {
		name     string
		segments []model.Segment
		want     string
		wantErr  error
	}{
		{
			name:     "remainder of matched segment",
			segments: segs("Hey Omi, what's 2+2?"),
			want:     "what's 2+2?",
		},
		{
			name:     "later segments when remainder is empty",
			segments: segs("Hey Omi", "what's the capital of France?"),
			want:     "what's the capital of France?",
		},
		{
			name:     "joins all later segments",
			segments: segs("so anyway", "hey, omi,", " tell me ", "a joke "),
			want:     "tell me a joke",
		},
		{
			name:     "keeps original case",
			segments: segs("HEY OMI Who Wrote Hamlet"),
			want:     "Who Wrote Hamlet",
		},
		{
			name:     "strips leading separators",
			segments: segs("hey omi: ; remind me"),
			want:     "remind me",
		},
		{
			name:     "keeps leading minus sign",
			segments: segs("Hey Omi, -5 times 3 is what?"),
			want:     "-5 times 3 is what?",
		},
		{
			name:     "keeps leading dot",
			segments: segs("Hey Omi, .NET or Java?"),
			want:     ".NET or Java?",
		},
		{
			name:     "stops at first matching segment",
			segments: segs("hey omi first", "hey omi second"),
			want:     "first",
		},
		{
			name:     "nothing after wake phrase",
			segments: segs("hey omi,", "   "),
			wantErr:  ErrNoQuestion,
		},
		{
			name:     "no wake phrase",
			segments: segs("just chatting about lunch"),
			wantErr:  ErrNoQuestion,
		},
		{
			name:     "non ascii before the match",
			segments: segs("Ça va? Hey Omi, quelle heure est-il?"),
			want:     "quelle heure est-il?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Extract(tt.segments)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract_Transcript(t *testing.T) {
	d := newDetector(t, Config{Extraction: ExtractTranscript})

	got, err := d.Extract(segs("well hey", "omi, what is the time", "in Tokyo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "what is the time in Tokyo" {
		t.Errorf("Extract() = %q", got)
	}

	if _, err := d.Extract(segs("hey omi")); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("err = %v, want ErrNoQuestion", err)
	}
}
