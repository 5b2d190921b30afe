package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"hometheater_quote/internal/adapter/http/handlers/mocks"
	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/domain/quote"
	"hometheater_quote/internal/usecase"
	"hometheater_quote/pkg"
)

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc, zap.NewNop())

	r := gin.New()
	r.GET("/v1/catalog", h.GetCatalog)
	r.POST("/v1/quotes/wizard", h.Transition)
	r.POST("/v1/quotes/preview", h.Preview)
	r.POST("/v1/submit-form", h.SubmitForm)
	return r, uc
}

func postJSON(r http.Handler, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_GetCatalog(t *testing.T) {
	r, uc := newQuoteRouter(t)
	uc.EXPECT().Catalog().Return(entities.DefaultCatalog())

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Currency   string `json:"currency"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Currency != "₹" || len(body.Categories) != 9 || body.Categories[8].Name != "ACCESSORIES" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestQuoteHandler_Transition(t *testing.T) {
	t.Run("invalid action", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := postJSON(r, "/v1/quotes/wizard", `{"step":0,"action":"jump"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("refused transition is reported", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Transition(quote.StepContactInfo, quote.ActionNext, gomock.Any()).Return(quote.TransitionResult{
			From:       quote.StepContactInfo,
			To:         quote.StepContactInfo,
			Reason:     quote.ReasonValidationFailed,
			Validation: quote.NewValidationError(quote.FieldPhone, quote.MsgPhoneRequired),
		}, nil)

		w := postJSON(r, "/v1/quotes/wizard", `{"step":0,"action":"next","draft":{"name":"A"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["moved"] != false || body["reason"] != "validation_failed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid step", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Transition(quote.Step(9), quote.ActionPrevious, gomock.Any()).Return(quote.TransitionResult{}, quote.ErrInvalidStep)

		w := postJSON(r, "/v1/quotes/wizard", `{"step":9,"action":"previous"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Preview(t *testing.T) {
	r, uc := newQuoteRouter(t)
	uc.EXPECT().Catalog().Return(entities.DefaultCatalog())
	uc.EXPECT().Preview(gomock.Any()).DoAndReturn(func(d entities.QuoteDraft) quote.Quote {
		if d.Selections[entities.CategoryAVR] != "MARANTZ CINEMA 50" {
			t.Fatalf("unexpected draft: %+v", d)
		}
		return quote.Quote{TotalPrice: 220000, Summary: "s"}
	})

	w := postJSON(r, "/v1/quotes/preview", `{"selections":{"AVR":"MARANTZ CINEMA 50"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"totalPrice":220000`)) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestQuoteHandler_SubmitForm(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := postJSON(r, "/v1/submit-form", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error lists fields", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmissionOutcome{},
			&quote.ValidationError{Fields: map[string]string{"name": quote.MsgNameRequired, "phone": quote.MsgPhoneRequired}})

		w := postJSON(r, "/v1/submit-form", `{"captchaToken":"tok"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Error.Code != "VALIDATION_FAILED" || body.Error.Fields["phone"] != quote.MsgPhoneRequired {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("success returns id and link", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.SubmitCommand) (usecase.SubmissionOutcome, error) {
				if cmd.CaptchaToken != "tok" || cmd.UserAgent != "Mobile Safari" || cmd.Draft.Name != "John" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return usecase.SubmissionOutcome{
					Submission:    entities.QuoteSubmission{TotalPrice: 250},
					Persistence:   usecase.PersistenceReport{ID: 11},
					Notifications: []usecase.NotificationReport{{Channel: "whatsapp", Target: "whatsapp://send?phone=1&text=x"}},
				}, nil
			},
		)

		w := postJSON(r, "/v1/submit-form", `{"name":"John","phone":"1","captchaToken":"tok","totalPrice":1}`, "User-Agent", "Mobile Safari")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Success      bool   `json:"success"`
			ID           int64  `json:"id"`
			TotalPrice   int64  `json:"totalPrice"`
			WhatsAppLink string `json:"whatsappLink"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Success || body.ID != 11 || body.TotalPrice != 250 || body.WhatsAppLink != "whatsapp://send?phone=1&text=x" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("persistence failure returns 500 with both reports", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmissionOutcome{
			Persistence:   usecase.PersistenceReport{Err: errors.New("db")},
			Notifications: []usecase.NotificationReport{{Channel: "whatsapp", Target: "https://wa.me/1?text=x"}},
		}, nil)

		w := postJSON(r, "/v1/submit-form", `{"name":"John","phone":"1","captchaToken":"tok"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body struct {
			Success      bool              `json:"success"`
			WhatsAppLink string            `json:"whatsappLink"`
			Error        pkg.HTTPErrorBody `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Success || body.WhatsAppLink != "https://wa.me/1?text=x" || body.Error.Code != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("captcha unavailable", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmissionOutcome{}, usecase.ErrCaptchaUnavailable)

		w := postJSON(r, "/v1/submit-form", `{"name":"John","phone":"1","captchaToken":"tok"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
