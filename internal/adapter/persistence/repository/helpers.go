package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"hometheater_quote/internal/domain/entities"
)

// nullString stores blank optional form fields as SQL NULL.
func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

// decodeSelections reads a stored selections snapshot. Missing or unreadable
// snapshots come back empty so one bad row cannot hide the rest of the table.
func decodeSelections(logger *zap.Logger, id int64, raw sql.NullString) entities.SelectionList {
	if !raw.Valid || raw.String == "" {
		logger.Warn("service request has no selections", zap.Int64("id", id))
		return entities.SelectionList{}
	}
	var out entities.SelectionList
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		logger.Warn("service request has unreadable selections", zap.Int64("id", id), zap.Error(err))
		return entities.SelectionList{}
	}
	if out == nil {
		out = entities.SelectionList{}
	}
	return out
}

// parseCreatedAt reads a stored RFC 3339 timestamp. Unparseable values are
// logged and yield the zero time, which sorts as oldest.
func parseCreatedAt(logger *zap.Logger, id int64, raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		logger.Warn("service request has an invalid created_at",
			zap.Int64("id", id),
			zap.String("created_at", raw),
			zap.Error(err),
		)
		return time.Time{}
	}
	return t
}
