package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName joins first and last name, tolerating either being empty.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type PasswordResetToken struct {
	ID        string
	Token     string
	Email     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// Consumable reports whether the token can still be redeemed at the given
// instant. A token expiring exactly now is already expired.
func (t *PasswordResetToken) Consumable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

// Identity is the minimal authenticated-user projection handed to callers
// after a successful verification. It is never persisted.
type Identity struct {
	Email       string
	Role        string
	DisplayName string
}
