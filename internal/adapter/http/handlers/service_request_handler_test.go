package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"hometheater_quote/internal/adapter/http/handlers/mocks"
	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/domain/records"
	"hometheater_quote/internal/usecase"
)

func newServiceRequestRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceRequestUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceRequestUseCase(ctrl)
	h := NewServiceRequestHandler(uc)

	r := gin.New()
	r.GET("/v1/admin/requests", h.List)
	r.GET("/v1/admin/requests/export", h.Export)
	return r, uc
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServiceRequestHandler_List(t *testing.T) {
	t.Run("defaults page to 1", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().List(gomock.Any(), usecase.ListQuery{Search: "john", Page: 1, PageSize: 10}).Return(records.View{
			Items:      []entities.ServiceRequest{{ID: 1, Name: "John Smith", CreatedAt: time.Now()}},
			Matched:    1,
			Page:       1,
			PageSize:   10,
			TotalPages: 1,
			Sort:       records.DefaultSortState(),
		}, nil)

		w := get(r, "/v1/admin/requests?q=john")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items []struct {
				Name string `json:"name"`
			} `json:"items"`
			Sort  string `json:"sort"`
			Order string `json:"order"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Items) != 1 || body.Items[0].Name != "John Smith" || body.Sort != "created_at" || body.Order != "desc" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("passes sort and page", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().List(gomock.Any(), usecase.ListQuery{Sort: "name", Order: "asc", Page: 3, PageSize: 10}).Return(records.View{}, nil)

		if w := get(r, "/v1/admin/requests?sort=name&order=asc&page=3"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("passes column toggle", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().List(gomock.Any(), usecase.ListQuery{Sort: "name", Order: "asc", Toggle: "name", Page: 1, PageSize: 10}).Return(records.View{
			Sort: records.SortState{Field: records.SortByName, Order: records.Descending},
		}, nil)

		w := get(r, "/v1/admin/requests?sort=name&order=asc&toggle=name")
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"order":"desc"`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("non-numeric page", func(t *testing.T) {
		r, _ := newServiceRequestRouter(t)
		if w := get(r, "/v1/admin/requests?page=abc"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid sort field", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(records.View{}, usecase.ErrInvalidSortField)

		if w := get(r, "/v1/admin/requests?sort=password"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(records.View{}, errors.New("db"))

		w := get(r, "/v1/admin/requests")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("INTERNAL_ERROR")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceRequestHandler_Export(t *testing.T) {
	t.Run("csv attachment", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().Export(gomock.Any(), usecase.ExportQuery{Format: "csv", Search: "x"}).Return(usecase.ExportFile{
			FileName:    "service_requests.csv",
			ContentType: "text/csv; charset=utf-8",
			Data:        []byte("Id,Name\n"),
		}, nil)

		w := get(r, "/v1/admin/requests/export?q=x")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="service_requests.csv"` {
			t.Fatalf("unexpected disposition %q", got)
		}
		if w.Header().Get("Content-Type") != "text/csv; charset=utf-8" || w.Body.String() != "Id,Name\n" {
			t.Fatalf("unexpected response %q %q", w.Header().Get("Content-Type"), w.Body.String())
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(usecase.ExportFile{}, usecase.ErrInvalidExportFormat)

		if w := get(r, "/v1/admin/requests/export?format=pdf"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
