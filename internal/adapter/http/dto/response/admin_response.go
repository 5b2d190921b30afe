package response

import (
	"time"

	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/domain/records"
)

type LoginResponse struct {
	Success   bool      `json:"success"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ServiceRequestResponse struct {
	ID         int64                  `json:"id"`
	Name       string                 `json:"name"`
	Phone      string                 `json:"phone"`
	Email      *string                `json:"email"`
	Selections entities.SelectionList `json:"selections"`
	Notes      *string                `json:"notes"`
	TotalPrice int64                  `json:"total_price"`
	CreatedAt  time.Time              `json:"created_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	sel := r.Selections
	if sel == nil {
		sel = entities.SelectionList{}
	}
	return ServiceRequestResponse{
		ID:         r.ID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Selections: sel,
		Notes:      r.Notes,
		TotalPrice: r.TotalPrice,
		CreatedAt:  r.CreatedAt,
	}
}

type ServiceRequestListResponse struct {
	Items      []ServiceRequestResponse `json:"items"`
	Matched    int                      `json:"matched"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"pageSize"`
	TotalPages int                      `json:"totalPages"`
	Sort       string                   `json:"sort"`
	Order      string                   `json:"order"`
}

func FromView(v records.View) ServiceRequestListResponse {
	items := make([]ServiceRequestResponse, 0, len(v.Items))
	for _, r := range v.Items {
		items = append(items, FromServiceRequest(r))
	}
	return ServiceRequestListResponse{
		Items:      items,
		Matched:    v.Matched,
		Page:       v.Page,
		PageSize:   v.PageSize,
		TotalPages: v.TotalPages,
		Sort:       string(v.Sort.Field),
		Order:      string(v.Sort.Order),
	}
}
