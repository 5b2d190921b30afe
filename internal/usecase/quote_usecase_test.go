package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/domain/quote"
	"hometheater_quote/internal/usecase/interfaces"
	mock_interfaces "hometheater_quote/internal/usecase/interfaces/mocks"
)

func validDraft() entities.QuoteDraft {
	d := entities.QuoteDraft{Name: "John Smith", Phone: "98765"}
	d.Select(entities.CategoryAVR, "MARANTZ CINEMA 50")
	d.Select(entities.CategorySeating, "Recliner Two Seater (Powered)")
	return d
}

type quoteMocks struct {
	repo     *mock_interfaces.MockIServiceRequestRepository
	captcha  *mock_interfaces.MockICaptchaVerifier
	whatsapp *mock_interfaces.MockINotifier
	sns      *mock_interfaces.MockINotifier
}

func newQuoteUseCase(t *testing.T) (*QuoteUseCase, quoteMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		repo:     mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		captcha:  mock_interfaces.NewMockICaptchaVerifier(ctrl),
		whatsapp: mock_interfaces.NewMockINotifier(ctrl),
		sns:      mock_interfaces.NewMockINotifier(ctrl),
	}
	m.whatsapp.EXPECT().Channel().Return("whatsapp").AnyTimes()
	m.sns.EXPECT().Channel().Return("sns").AnyTimes()
	uc := NewQuoteUseCase(entities.DefaultCatalog(), m.repo, m.captcha,
		[]interfaces.INotifier{m.whatsapp, m.sns}, zap.NewNop())
	return uc, m
}

func TestQuoteUseCase_Transition(t *testing.T) {
	uc, _ := newQuoteUseCase(t)

	t.Run("contact step blocks without name and phone", func(t *testing.T) {
		res, err := uc.Transition(quote.StepContactInfo, quote.ActionNext, entities.QuoteDraft{Name: "  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Moved || res.To != quote.StepContactInfo || res.Reason != quote.ReasonValidationFailed {
			t.Fatalf("unexpected result: %+v", res)
		}
		if len(res.Validation.Fields) != 2 {
			t.Fatalf("expected both fields reported, got %v", res.Validation.Fields)
		}
	})

	t.Run("select step has no guard", func(t *testing.T) {
		res, err := uc.Transition(quote.StepSelectServices, quote.ActionNext, entities.QuoteDraft{})
		if err != nil || !res.Moved || res.To != quote.StepVerifyAndSubmit {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("invalid step", func(t *testing.T) {
		_, err := uc.Transition(quote.Step(7), quote.ActionNext, entities.QuoteDraft{})
		if !errors.Is(err, quote.ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}
	})

	t.Run("invalid action", func(t *testing.T) {
		_, err := uc.Transition(quote.StepContactInfo, quote.Action("jump"), entities.QuoteDraft{})
		if !errors.Is(err, quote.ErrInvalidAction) {
			t.Fatalf("expected ErrInvalidAction, got %v", err)
		}
	})
}

func TestQuoteUseCase_Preview(t *testing.T) {
	uc, _ := newQuoteUseCase(t)
	q := uc.Preview(validDraft())
	if q.TotalPrice != 220000+53000 {
		t.Fatalf("unexpected total %d", q.TotalPrice)
	}
	if len(q.Items) != 2 || q.Items[0].Category != entities.CategoryAVR {
		t.Fatalf("unexpected items %+v", q.Items)
	}
}

func TestQuoteUseCase_Submit(t *testing.T) {
	t.Run("missing token is a validation error with no side effects", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		_, err := uc.Submit(context.Background(), SubmitCommand{Draft: validDraft()})
		var verr *quote.ValidationError
		if !errors.As(err, &verr) || verr.Fields[quote.FieldCaptcha] == "" {
			t.Fatalf("expected captcha validation error, got %v", err)
		}
	})

	t.Run("missing contact is a validation error", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		_, err := uc.Submit(context.Background(), SubmitCommand{Draft: entities.QuoteDraft{}, CaptchaToken: "tok"})
		var verr *quote.ValidationError
		if !errors.As(err, &verr) || verr.Fields[quote.FieldName] != quote.MsgNameRequired {
			t.Fatalf("expected contact validation error, got %v", err)
		}
	})

	t.Run("rejected captcha", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.captcha.EXPECT().Verify(gomock.Any(), "tok", "1.2.3.4").Return(interfaces.ErrCaptchaRejected)

		_, err := uc.Submit(context.Background(), SubmitCommand{Draft: validDraft(), CaptchaToken: "tok", RemoteIP: "1.2.3.4"})
		var verr *quote.ValidationError
		if !errors.As(err, &verr) || verr.Fields[quote.FieldCaptcha] != quote.MsgCaptchaRejected {
			t.Fatalf("expected captcha rejected, got %v", err)
		}
	})

	t.Run("captcha transport failure", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.captcha.EXPECT().Verify(gomock.Any(), "tok", "").Return(errors.New("timeout"))

		_, err := uc.Submit(context.Background(), SubmitCommand{Draft: validDraft(), CaptchaToken: "tok"})
		if !errors.Is(err, ErrCaptchaUnavailable) {
			t.Fatalf("expected ErrCaptchaUnavailable, got %v", err)
		}
	})

	t.Run("success persists and notifies", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.captcha.EXPECT().Verify(gomock.Any(), "tok", gomock.Any()).Return(nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteSubmission{})).DoAndReturn(
			func(_ context.Context, s entities.QuoteSubmission) (int64, error) {
				if s.TotalPrice != 273000 || s.Name != "John Smith" || s.CaptchaToken != "tok" {
					t.Fatalf("unexpected submission: %+v", s)
				}
				return 42, nil
			},
		)
		m.whatsapp.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.NotificationReceipt, error) {
				if n.UserAgent != "Mobile" || !strings.HasPrefix(n.Summary, "Name: John Smith\n") {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return entities.NotificationReceipt{Channel: "whatsapp", Target: "whatsapp://send?phone=1&text=x"}, nil
			},
		)
		m.sns.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(entities.NotificationReceipt{Channel: "sns", Target: "msg-1"}, nil)

		out, err := uc.Submit(context.Background(), SubmitCommand{Draft: validDraft(), CaptchaToken: "tok", UserAgent: "Mobile"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Persisted() || out.Persistence.ID != 42 {
			t.Fatalf("unexpected persistence report: %+v", out.Persistence)
		}
		if len(out.Notifications) != 2 || out.Link("whatsapp") != "whatsapp://send?phone=1&text=x" {
			t.Fatalf("unexpected notifications: %+v", out.Notifications)
		}
	})

	t.Run("persistence failure still notifies", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.captcha.EXPECT().Verify(gomock.Any(), "tok", gomock.Any()).Return(nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
		m.whatsapp.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(entities.NotificationReceipt{Channel: "whatsapp", Target: "link"}, nil)
		m.sns.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(entities.NotificationReceipt{Channel: "sns"}, errors.New("sns down"))

		out, err := uc.Submit(context.Background(), SubmitCommand{Draft: validDraft(), CaptchaToken: "tok"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Persisted() {
			t.Fatalf("expected persistence failure")
		}
		if out.Link("whatsapp") != "link" {
			t.Fatalf("expected whatsapp link despite persistence failure")
		}
		if out.Notifications[1].Err == nil || out.Link("sns") != "" {
			t.Fatalf("expected sns failure to be reported: %+v", out.Notifications[1])
		}
	})
}
