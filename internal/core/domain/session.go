package domain

import "time"

// Session is the server-side record behind a session cookie.
type Session struct {
	ID        string    `json:"-"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}
