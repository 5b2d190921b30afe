// Package auth checks the shared admin password.
package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"hometheater_quote/internal/usecase/interfaces"
)

var _ interfaces.IPasswordGate = (*PasswordGate)(nil)

var ErrEmptyPassword = errors.New("password must not be empty")

// PasswordGate compares candidates against a bcrypt hash when one is
// configured, otherwise against the plain password in constant time.
type PasswordGate struct {
	plain []byte
	hash  []byte
}

func NewPasswordGate(plain, hash string) *PasswordGate {
	return &PasswordGate{plain: []byte(plain), hash: []byte(hash)}
}

func (g *PasswordGate) CheckPassword(candidate string) bool {
	if len(g.hash) > 0 {
		return bcrypt.CompareHashAndPassword(g.hash, []byte(candidate)) == nil
	}
	if len(g.plain) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(g.plain, []byte(candidate)) == 1
}

// HashPassword produces a value for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
