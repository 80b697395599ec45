package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT payload identifying a respondent session.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// StartSessionResponse is returned when a new session is opened.
type StartSessionResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	Scale     int    `json:"scale"`
}
