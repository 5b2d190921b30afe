package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hometheater_quote/internal/adapter/http/handlers"
	"hometheater_quote/internal/adapter/http/middleware"
	"hometheater_quote/internal/infrastructure/auth"
	"hometheater_quote/internal/infrastructure/session"
	"hometheater_quote/internal/usecase"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	authUseCase := usecase.NewAuthUseCase(
		auth.NewPasswordGate("secret", ""),
		session.NewJWTManager("session-secret", time.Hour),
		zap.NewNop(),
	)
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addAdminRoutes(v1,
		handlers.NewAuthHandler(authUseCase, handlers.CookieSettings{Name: session.CookieName, MaxAge: time.Hour}),
		handlers.NewServiceRequestHandler(nil),
		middleware.AdminRequired(authUseCase, session.CookieName, "/login"),
	)
	return r
}

func TestPingRoute(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/v1/admin/requests", "/v1/admin/requests/export?format=csv"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %d", path, w.Code)
		}
	}

	forged, _, _ := session.NewJWTManager("other-secret", time.Hour).Issue()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/requests", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: forged})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("expected forged token to be redirected, got %d", w.Code)
	}
}
