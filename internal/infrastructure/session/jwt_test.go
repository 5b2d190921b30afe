package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager_IssueAndValidate(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	token, exp, err := m.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if !exp.Equal(fixed.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %v", exp)
	}
	if err := m.Validate(token); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	other, _, _ := m.Issue()
	if other == token {
		t.Fatalf("expected a distinct token per session")
	}
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return start }
	token, _, err := m.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	m.now = func() time.Time { return start.Add(2 * time.Hour) }
	if err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	forged, _, _ := NewJWTManager("other", time.Hour).Issue()
	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   Subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	wrongSub, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))

	for name, token := range map[string]string{
		"empty":         "",
		"garbage":       "not-a-token",
		"wrong secret":  forged,
		"none alg":      noneAlg,
		"wrong subject": wrongSub,
	} {
		if err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
