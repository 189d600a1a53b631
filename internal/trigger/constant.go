package trigger

// Default wake phrase variants, longest first.
var DefaultWakePhrases = []string{
	"hey, omi,",
	"hey omi,",
	"hey, omi",
	"hey omi",
}

// Default help-intent keywords.
var DefaultHelpKeywords = []string{
	"help",
	"what can you do",
	"how do i use",
	"how does this work",
	"instructions",
}

// Separators stripped from the start of an extracted question. Signs and
// dots stay because they can belong to the question ("-5", ".NET").
const leadingSeparators = ",;:"
