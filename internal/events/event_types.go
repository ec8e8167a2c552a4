package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded EventType = "login_succeeded"
	EventLoginFailed    EventType = "login_failed"
	EventLoggedOut      EventType = "logged_out"
	EventSessionRevoked EventType = "session_revoked"
)

// Event represents a session-lifecycle event emitted by the auth service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LoginPayload accompanies login attempts.
type LoginPayload struct {
	Email string `json:"email"`
}

// RevokedPayload accompanies a forced logout after the backend rejected the
// token.
type RevokedPayload struct {
	Status int `json:"status"`
}
