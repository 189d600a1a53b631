package completion

// Log prefixes
const (
	LogPrefixComplete = "internal.completion.Complete"
)

// Defaults
const (
	DefaultSystemPrompt = `You are Omi, a voice assistant. The user spoke to you through a wearable device and your reply is delivered as a short phone notification.
Answer directly in one to three sentences. Do not use markdown.
If a web search tool is available, use it for recent events or facts you are unsure about.`
	DefaultMaxTokens    = 300
	DefaultTemperature  = 0.7
	DefaultMaxToolSteps = 3
)

// Prompt section headers
const (
	memoriesHeader = "Things you remember about the user:\n"
	contextHeader  = "Previous conversation:\n"
	questionPrefix = "Question: "
)

// Log messages
const (
	LogMsgStep            = "Completion step %d/%d"
	LogMsgCallingTool     = "Calling tool: %s with args: %+v"
	LogMsgToolFailed      = "Tool %s failed: %v"
	LogMsgAssistantFallbk = "Assistant run failed, falling back to chat completion: %v"
	LogMsgMaxToolSteps    = "Tool step limit (%d) reached, asking for a final answer"
)
