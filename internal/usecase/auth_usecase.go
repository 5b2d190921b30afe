package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"hometheater_quote/internal/infrastructure/metrics"
	"hometheater_quote/internal/usecase/interfaces"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")
)

// IAuthUseCase gates the admin area behind a shared password.
type IAuthUseCase interface {
	Login(ctx context.Context, password string) (Session, error)
	Authorize(token string) error
}

type Session struct {
	Token     string
	ExpiresAt time.Time
}

type AuthUseCase struct {
	gate     interfaces.IPasswordGate
	sessions interfaces.ISessionManager
	logger   *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(gate interfaces.IPasswordGate, sessions interfaces.ISessionManager, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{gate: gate, sessions: sessions, logger: logger}
}

// Login issues a fresh session credential for the correct password. There
// is no lockout after repeated failures.
func (u *AuthUseCase) Login(_ context.Context, password string) (Session, error) {
	if !u.gate.CheckPassword(password) {
		metrics.AdminLogins.WithLabelValues(metrics.OutcomeInvalid).Inc()
		u.logger.Info("admin login rejected")
		return Session{}, ErrInvalidPassword
	}

	token, expiresAt, err := u.sessions.Issue()
	if err != nil {
		metrics.AdminLogins.WithLabelValues(metrics.OutcomeFailure).Inc()
		u.logger.Error("failed to issue admin session", zap.Error(err))
		return Session{}, err
	}
	metrics.AdminLogins.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return Session{Token: token, ExpiresAt: expiresAt}, nil
}

func (u *AuthUseCase) Authorize(token string) error {
	if err := u.sessions.Validate(token); err != nil {
		u.logger.Debug("admin session rejected", zap.Error(err))
		return ErrUnauthorized
	}
	return nil
}
