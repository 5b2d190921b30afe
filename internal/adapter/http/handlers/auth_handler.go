package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "hometheater_quote/internal/adapter/http/dto/request"
	response "hometheater_quote/internal/adapter/http/dto/response"
	"hometheater_quote/internal/usecase"
	"hometheater_quote/pkg"
)

var errInvalidPassword = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid password", http.StatusUnauthorized)

// CookieSettings describes the admin session cookie.
type CookieSettings struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	cookie  CookieSettings
}

func NewAuthHandler(uc usecase.IAuthUseCase, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{usecase: uc, cookie: cookie}
}

// Login godoc
// @Summary      Admin login
// @Description  Sets an httpOnly session cookie on success.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Password"
// @Success      200   {object}  response.LoginResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /admin-login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, session.Token, int(h.cookie.MaxAge.Seconds()), "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, response.LoginResponse{Success: true, ExpiresAt: session.ExpiresAt})
}

// Logout godoc
// @Summary      Admin logout
// @Tags         admin
// @Success      204
// @Router       /admin-logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPassword):
		return errInvalidPassword
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
