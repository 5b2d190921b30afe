package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "hometheater_quote/internal/adapter/http/dto/request"
	response "hometheater_quote/internal/adapter/http/dto/response"
	"hometheater_quote/internal/domain/records"
	"hometheater_quote/internal/usecase"
	"hometheater_quote/pkg"
)

// ServiceRequestHandler serves the admin list and exports.
type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// List godoc
// @Summary      List service requests
// @Description  Filtered, sorted and paginated (10 per page). Defaults to newest first.
// @Tags         admin
// @Produce      json
// @Param        q      query     string  false  "Search text"
// @Param        sort   query     string  false  "Sort field"  Enums(id, name, phone, email, selections, notes, total_price, created_at)
// @Param        order  query     string  false  "Sort order"  Enums(asc, desc)
// @Param        toggle query     string  false  "Column clicked: flips order on the current sort field, otherwise sorts by it ascending"
// @Param        page   query     int     false  "Page, 1-based"  default(1)
// @Success      200    {object}  response.ServiceRequestListResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /admin/requests [get]
func (h *ServiceRequestHandler) List(c *gin.Context) {
	var q request.ListServiceRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	view, err := h.usecase.List(c.Request.Context(), usecase.ListQuery{
		Search:   q.Q,
		Sort:     q.Sort,
		Order:    q.Order,
		Toggle:   q.Toggle,
		Page:     q.Page,
		PageSize: records.DefaultPageSize,
	})
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromView(view))
}

// Export godoc
// @Summary      Export service requests
// @Description  Every request matching the search, in list order, as CSV or XLSX.
// @Tags         admin
// @Produce      octet-stream
// @Param        format  query     string  false  "File format"  Enums(csv, xlsx)  default(csv)
// @Param        q       query     string  false  "Search text"
// @Param        sort    query     string  false  "Sort field"
// @Param        order   query     string  false  "Sort order"
// @Success      200     {file}    file
// @Failure      400     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /admin/requests/export [get]
func (h *ServiceRequestHandler) Export(c *gin.Context) {
	var q request.ExportServiceRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	file, err := h.usecase.Export(c.Request.Context(), usecase.ExportQuery{
		Format: q.Format,
		Search: q.Q,
		Sort:   q.Sort,
		Order:  q.Order,
	})
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func mapServiceRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSortField):
		return pkg.NewDomainError("INVALID_SORT_FIELD", "Unknown sort field", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSortOrder):
		return pkg.NewDomainError("INVALID_SORT_ORDER", "Sort order must be asc or desc", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExportFormat):
		return pkg.NewDomainError("INVALID_EXPORT_FORMAT", "Export format must be csv or xlsx", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
