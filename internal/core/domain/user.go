package domain

import "time"

// User models a registered account. PasswordHash is the bcrypt digest of the
// login password; the plaintext is never persisted or logged.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	JoinDate     time.Time `json:"joinDate"`
}

// Claims are the identity attributes embedded in a session token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
