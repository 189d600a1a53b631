package relay

// Outcome statuses of POST /omi-webhook.
const (
	StatusIgnored     = "ignored"
	StatusHelp        = "help"
	StatusAnswered    = "answered"
	StatusRemembered  = "remembered"
	StatusRateLimited = "rate_limited"
)

// OutcomeError is observed when a valid webhook fails downstream.
const OutcomeError = "error"

// Reasons attached to an ignored outcome.
const (
	ReasonNoTrigger  = "no_trigger"
	ReasonNoQuestion = "no_question"
)

// RememberCommand prefixes a question that should be stored, not answered.
const RememberCommand = "remember"

const (
	HelpMessage = `Say "Hey Omi" followed by your question, for example "Hey Omi, what's the capital of France?". ` +
		`The answer arrives as a notification.`
	RateLimitedMessage = "You are asking too quickly. Please wait a moment and try again."
	RememberedTemplate = "Got it, I'll remember: %s"
)
