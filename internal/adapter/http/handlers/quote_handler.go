package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "hometheater_quote/internal/adapter/http/dto/request"
	response "hometheater_quote/internal/adapter/http/dto/response"
	"hometheater_quote/internal/domain/quote"
	"hometheater_quote/internal/infrastructure/notify"
	"hometheater_quote/internal/usecase"
	"hometheater_quote/pkg"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errValidationFailed    = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusBadRequest)
	errPersistenceFailed   = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Failed to save service request", http.StatusInternalServerError)
)

// QuoteHandler serves the customer-facing quote wizard.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	logger  *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{usecase: uc, logger: logger}
}

// GetCatalog godoc
// @Summary      Price catalog
// @Description  Categories and options in declaration order, with prices.
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /catalog [get]
func (h *QuoteHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Catalog()))
}

// Transition godoc
// @Summary      Move the wizard
// @Description  Applies next or previous to the given step. A refused move returns 200 with moved=false.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.WizardRequest  true  "Wizard state"
// @Success      200   {object}  response.WizardResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes/wizard [post]
func (h *QuoteHandler) Transition(c *gin.Context) {
	var payload request.WizardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Transition(quote.Step(payload.Step), quote.Action(payload.Action), payload.Draft.ToDraft())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res))
}

// Preview godoc
// @Summary      Price a draft
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.QuoteDraftRequest  true  "Draft"
// @Success      200   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes/preview [post]
func (h *QuoteHandler) Preview(c *gin.Context) {
	var payload request.QuoteDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	q := h.usecase.Preview(payload.ToDraft())
	c.JSON(http.StatusOK, response.FromQuote(h.usecase.Catalog().Currency(), q))
}

// SubmitForm godoc
// @Summary      Submit a quote
// @Description  Stores the request and hands the summary off to messaging. Both outcomes are reported.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubmitFormRequest  true  "Submission"
// @Success      200   {object}  response.SubmitResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  response.SubmitResponse
// @Router       /submit-form [post]
func (h *QuoteHandler) SubmitForm(c *gin.Context) {
	var payload request.SubmitFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	out, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitCommand{
		Draft:        payload.ToDraft(),
		CaptchaToken: payload.CaptchaToken,
		RemoteIP:     c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payload.TotalPrice != nil && *payload.TotalPrice != out.Submission.TotalPrice {
		h.logger.Warn("client total differs from catalog total",
			zap.Int64("client_total", *payload.TotalPrice),
			zap.Int64("total_price", out.Submission.TotalPrice),
		)
	}

	res := response.FromSubmissionOutcome(out, notify.ChannelWhatsApp)
	if !out.Persisted() {
		body := errPersistenceFailed.ToHTTPError().Error
		res.Error = &body
		c.JSON(errPersistenceFailed.HTTPStatus, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapQuoteError(err error) *pkg.AppError {
	var verr *quote.ValidationError
	switch {
	case errors.As(err, &verr):
		return errValidationFailed.WithFields(verr.Fields)
	case errors.Is(err, quote.ErrInvalidStep), errors.Is(err, quote.ErrInvalidAction):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaptchaUnavailable):
		return pkg.NewDomainError("CAPTCHA_UNAVAILABLE", "Could not verify the CAPTCHA, please retry", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
