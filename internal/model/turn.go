package model

import "time"

// Turn is one question/answer pair kept in a session's context.
type Turn struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}
