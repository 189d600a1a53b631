package conversation

const (
	DefaultMaxTurns    = 5
	DefaultMaxSessions = 10000
)

// Config bounds the store.
type Config struct {
	MaxTurns    int // turns kept per session, oldest evicted first
	MaxSessions int // sessions kept in memory, least recently used evicted first
}
