package interfaces

import "time"

// ISessionManager issues and validates admin session credentials.
type ISessionManager interface {
	Issue() (token string, expiresAt time.Time, err error)
	Validate(token string) error
}

type IPasswordGate interface {
	CheckPassword(candidate string) bool
}
