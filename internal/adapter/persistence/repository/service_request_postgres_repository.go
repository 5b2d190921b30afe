package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/usecase/interfaces"
)

const (
	insertServiceRequestSQL = `INSERT INTO service_requests (name, phone, email, selections, notes, total_price)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	selectServiceRequestsSQL = `SELECT id, name, phone, email, selections, notes, total_price, created_at
FROM service_requests
ORDER BY created_at DESC`
)

// ServiceRequestPostgresRepository stores requests in the service_requests
// table. Selections are kept as a JSON object string.
type ServiceRequestPostgresRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestPostgresRepository)(nil)

func NewServiceRequestPostgresRepository(db *sql.DB, logger *zap.Logger) *ServiceRequestPostgresRepository {
	return &ServiceRequestPostgresRepository{db: db, logger: logger}
}

func (r *ServiceRequestPostgresRepository) Insert(ctx context.Context, s entities.QuoteSubmission) (int64, error) {
	selections, err := json.Marshal(s.SelectionList())
	if err != nil {
		return 0, fmt.Errorf("encode selections: %w", err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, insertServiceRequestSQL,
		s.Name,
		s.Phone,
		nullString(s.Email),
		string(selections),
		nullString(s.Notes),
		s.TotalPrice,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert service request: %w", err)
	}
	return id, nil
}

func (r *ServiceRequestPostgresRepository) SelectAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	rows, err := r.db.QueryContext(ctx, selectServiceRequestsSQL)
	if err != nil {
		return nil, fmt.Errorf("select service requests: %w", err)
	}
	defer rows.Close()

	var out []entities.ServiceRequest
	for rows.Next() {
		var (
			sr         entities.ServiceRequest
			email      sql.NullString
			notes      sql.NullString
			selections sql.NullString
		)
		if err := rows.Scan(&sr.ID, &sr.Name, &sr.Phone, &email, &selections, &notes, &sr.TotalPrice, &sr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service request: %w", err)
		}
		sr.Selections = decodeSelections(r.logger, sr.ID, selections)
		sr.Email = fromNullString(email)
		sr.Notes = fromNullString(notes)
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service requests: %w", err)
	}
	return out, nil
}
