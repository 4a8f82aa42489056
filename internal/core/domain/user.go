package domain

import "time"

// User models a registered campus member.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	StudentID    string    `json:"studentId"`
	CreatedAt    time.Time `json:"created_at"`
}
