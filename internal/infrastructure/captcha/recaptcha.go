// Package captcha verifies the human-verification token sent with a quote.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"hometheater_quote/internal/usecase/interfaces"
)

var (
	ErrMissingToken = interfaces.ErrCaptchaMissing
	ErrRejected     = interfaces.ErrCaptchaRejected
)

var (
	_ interfaces.ICaptchaVerifier = PresenceVerifier{}
	_ interfaces.ICaptchaVerifier = (*RecaptchaVerifier)(nil)
)

// PresenceVerifier only checks that a token was sent. It is used when no
// reCAPTCHA secret is configured.
type PresenceVerifier struct{}

func (PresenceVerifier) Verify(_ context.Context, token, _ string) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}
	return nil
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// RecaptchaVerifier checks tokens against the reCAPTCHA siteverify endpoint.
type RecaptchaVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
	logger    *zap.Logger
}

func NewRecaptchaVerifier(secret, verifyURL string, timeout time.Duration, logger *zap.Logger) *RecaptchaVerifier {
	return &RecaptchaVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// Verify posts the token once. A transport failure is returned as-is; a
// negative answer from the endpoint is ErrRejected.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("call siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var body siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode siteverify response: %w", err)
	}
	if !body.Success {
		v.logger.Info("captcha rejected", zap.Strings("error_codes", body.ErrorCodes))
		return ErrRejected
	}
	return nil
}
