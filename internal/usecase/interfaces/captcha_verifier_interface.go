package interfaces

import (
	"context"
	"errors"
)

// ICaptchaVerifier checks a human-verification token. It returns
// ErrCaptchaMissing or ErrCaptchaRejected for a bad token and any other
// error when the check itself could not run.
type ICaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

var (
	ErrCaptchaMissing  = errors.New("captcha token is missing")
	ErrCaptchaRejected = errors.New("captcha token was rejected")
)
