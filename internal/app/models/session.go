package models

import "time"

// Session is the server-side record behind one issued dashboard token. The
// upstream bearer token never leaves this struct's Redis copy; clients only
// ever hold the session JWT.
type Session struct {
	SessionID     string    `json:"session_id"`
	MenteeID      string    `json:"mentee_id"`
	MenteeName    string    `json:"mentee_name"`
	Email         string    `json:"email"`
	UpstreamToken string    `json:"upstream_token"`
	ExpiresAt     time.Time `json:"expires_at"`
}
