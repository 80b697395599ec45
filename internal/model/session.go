package model

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionSubmitted SessionStatus = "submitted"
)

// Session holds one respondent's in-progress answers, keyed by question
// identity. It lives in the session cache for the duration of the visit and
// is not restored across restarts.
type Session struct {
	ID          string            `json:"id"`
	Status      SessionStatus     `json:"status"`
	Answers     map[string]Answer `json:"answers"`
	StartedAt   time.Time         `json:"startedAt"`
	SubmittedAt *time.Time        `json:"submittedAt,omitempty"`
}
