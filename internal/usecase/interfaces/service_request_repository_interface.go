package interfaces

import (
	"context"

	"hometheater_quote/internal/domain/entities"
)

// IServiceRequestRepository abstracts persistence of submitted quotes.
//
// Implementations assign the identifier and creation time; SelectAll
// returns every record ordered by created_at descending.
type IServiceRequestRepository interface {
	Insert(ctx context.Context, s entities.QuoteSubmission) (int64, error)
	SelectAll(ctx context.Context) ([]entities.ServiceRequest, error)
}
