package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/domain/quote"
	"hometheater_quote/internal/infrastructure/metrics"
	"hometheater_quote/internal/usecase/interfaces"
)

var ErrCaptchaUnavailable = errors.New("captcha verification unavailable")

// IQuoteUseCase exposes the customer-facing quote flow: catalog, wizard
// transitions, running preview and final submission.
type IQuoteUseCase interface {
	Catalog() *entities.PriceCatalog
	Transition(step quote.Step, action quote.Action, draft entities.QuoteDraft) (quote.TransitionResult, error)
	Preview(draft entities.QuoteDraft) quote.Quote
	Submit(ctx context.Context, cmd SubmitCommand) (SubmissionOutcome, error)
}

type SubmitCommand struct {
	Draft        entities.QuoteDraft
	CaptchaToken string
	RemoteIP     string
	UserAgent    string
}

type PersistenceReport struct {
	ID  int64
	Err error
}

type NotificationReport struct {
	Channel string
	Target  string
	Err     error
}

// SubmissionOutcome reports the two side effects of a submission
// separately. Neither one is rolled back when the other fails.
type SubmissionOutcome struct {
	Submission    entities.QuoteSubmission
	Persistence   PersistenceReport
	Notifications []NotificationReport
}

func (o SubmissionOutcome) Persisted() bool {
	return o.Persistence.Err == nil
}

// Link returns the target reported by channel, or "" when it failed.
func (o SubmissionOutcome) Link(channel string) string {
	for _, n := range o.Notifications {
		if n.Channel == channel && n.Err == nil {
			return n.Target
		}
	}
	return ""
}

type QuoteUseCase struct {
	builder   *quote.Builder
	repo      interfaces.IServiceRequestRepository
	captcha   interfaces.ICaptchaVerifier
	notifiers []interfaces.INotifier
	logger    *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	catalog *entities.PriceCatalog,
	repo interfaces.IServiceRequestRepository,
	captcha interfaces.ICaptchaVerifier,
	notifiers []interfaces.INotifier,
	logger *zap.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{
		builder:   quote.NewBuilder(catalog),
		repo:      repo,
		captcha:   captcha,
		notifiers: notifiers,
		logger:    logger,
	}
}

func (u *QuoteUseCase) Catalog() *entities.PriceCatalog {
	return u.builder.Catalog()
}

func (u *QuoteUseCase) Transition(step quote.Step, action quote.Action, draft entities.QuoteDraft) (quote.TransitionResult, error) {
	w, err := quote.WizardAt(step)
	if err != nil {
		return quote.TransitionResult{}, err
	}
	return w.Apply(action, draft)
}

func (u *QuoteUseCase) Preview(draft entities.QuoteDraft) quote.Quote {
	return u.builder.Preview(draft)
}

// Submit validates the draft and the captcha, then stores the request and
// runs every notifier. A returned error means nothing was attempted; a
// failed side effect is reported in the outcome instead.
func (u *QuoteUseCase) Submit(ctx context.Context, cmd SubmitCommand) (SubmissionOutcome, error) {
	submission, err := u.builder.BuildSubmission(cmd.Draft, cmd.CaptchaToken)
	if err != nil {
		metrics.QuoteSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return SubmissionOutcome{}, err
	}

	if err := u.captcha.Verify(ctx, cmd.CaptchaToken, cmd.RemoteIP); err != nil {
		metrics.QuoteSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		switch {
		case errors.Is(err, interfaces.ErrCaptchaMissing):
			return SubmissionOutcome{}, quote.NewValidationError(quote.FieldCaptcha, quote.MsgCaptchaRequired)
		case errors.Is(err, interfaces.ErrCaptchaRejected):
			return SubmissionOutcome{}, quote.NewValidationError(quote.FieldCaptcha, quote.MsgCaptchaRejected)
		default:
			u.logger.Error("captcha verification failed", zap.Error(err))
			return SubmissionOutcome{}, fmt.Errorf("%w: %v", ErrCaptchaUnavailable, err)
		}
	}

	out := SubmissionOutcome{Submission: submission}

	id, err := u.repo.Insert(ctx, submission)
	if err != nil {
		u.logger.Error("failed to save service request",
			zap.String("phone", submission.Phone),
			zap.Int64("total_price", submission.TotalPrice),
			zap.Error(err),
		)
		out.Persistence = PersistenceReport{Err: err}
		metrics.QuoteSubmissions.WithLabelValues(metrics.OutcomeFailure).Inc()
	} else {
		u.logger.Info("service request saved", zap.Int64("id", id), zap.Int64("total_price", submission.TotalPrice))
		out.Persistence = PersistenceReport{ID: id}
		metrics.QuoteSubmissions.WithLabelValues(metrics.OutcomeSuccess).Inc()
		metrics.QuoteSubmissionTotal.Observe(float64(submission.TotalPrice))
	}

	out.Notifications = u.notify(ctx, entities.Notification{Summary: submission.Summary, UserAgent: cmd.UserAgent})
	return out, nil
}

func (u *QuoteUseCase) notify(ctx context.Context, n entities.Notification) []NotificationReport {
	reports := make([]NotificationReport, 0, len(u.notifiers))
	for _, notifier := range u.notifiers {
		receipt, err := notifier.Notify(ctx, n)
		report := NotificationReport{Channel: notifier.Channel(), Target: receipt.Target, Err: err}
		if err != nil {
			u.logger.Warn("notification failed", zap.String("channel", report.Channel), zap.Error(err))
			metrics.Notifications.WithLabelValues(report.Channel, metrics.OutcomeFailure).Inc()
		} else {
			metrics.Notifications.WithLabelValues(report.Channel, metrics.OutcomeSuccess).Inc()
		}
		reports = append(reports, report)
	}
	return reports
}
