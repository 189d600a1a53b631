package trigger

// MatchPolicy decides how a phrase must sit in the text to count as present.
type MatchPolicy string

const (
	// MatchWordBoundary rejects matches glued to a letter or digit.
	MatchWordBoundary MatchPolicy = "word_boundary"
	// MatchSubstring accepts any case-insensitive containment.
	MatchSubstring MatchPolicy = "substring"
)

// ExtractionStrategy decides where the question is read from.
type ExtractionStrategy string

const (
	// ExtractSegment reads the remainder of the first matching segment,
	// then the segments after it.
	ExtractSegment ExtractionStrategy = "segment"
	// ExtractTranscript reads everything after the first match in the joined transcript.
	ExtractTranscript ExtractionStrategy = "transcript"
)

// Config selects phrases and policies.
type Config struct {
	WakePhrases  []string
	HelpKeywords []string
	MatchPolicy  MatchPolicy
	Extraction   ExtractionStrategy
}

// Detection is the result of scanning a transcript.
type Detection struct {
	Triggered     bool
	HelpRequested bool
}

// Ignored reports whether the transcript needs no further processing.
func (d Detection) Ignored() bool {
	return !d.Triggered && !d.HelpRequested
}

// HelpOnly reports whether only the help intent was found.
func (d Detection) HelpOnly() bool {
	return d.HelpRequested && !d.Triggered
}
