package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hometheater_quote/internal/domain/records"
	"hometheater_quote/internal/infrastructure/export"
	"hometheater_quote/internal/infrastructure/metrics"
	"hometheater_quote/internal/usecase/interfaces"
)

var (
	ErrInvalidSortField    = errors.New("invalid sort field")
	ErrInvalidSortOrder    = errors.New("invalid sort order")
	ErrInvalidExportFormat = errors.New("invalid export format")
)

// IServiceRequestUseCase exposes the admin views over stored requests.
type IServiceRequestUseCase interface {
	List(ctx context.Context, q ListQuery) (records.View, error)
	Export(ctx context.Context, q ExportQuery) (ExportFile, error)
}

// ListQuery is the raw list state as received from a caller. Empty Sort
// selects the default (created_at desc); a Sort with no Order is ascending.
// Toggle is a column click applied on top of Sort/Order.
type ListQuery struct {
	Search   string
	Sort     string
	Order    string
	Toggle   string
	Page     int
	PageSize int
}

type ExportQuery struct {
	Format string
	Search string
	Sort   string
	Order  string
}

type ExportFile struct {
	FileName    string
	ContentType string
	Rows        int
	Data        []byte
}

type ServiceRequestUseCase struct {
	repo   interfaces.IServiceRequestRepository
	logger *zap.Logger
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(repo interfaces.IServiceRequestRepository, logger *zap.Logger) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{repo: repo, logger: logger}
}

func (u *ServiceRequestUseCase) List(ctx context.Context, q ListQuery) (records.View, error) {
	state, err := parseSortState(q.Sort, q.Order)
	if err != nil {
		return records.View{}, err
	}
	if q.Toggle != "" {
		f, err := records.ParseSortField(q.Toggle)
		if err != nil {
			return records.View{}, fmt.Errorf("%w: %q", ErrInvalidSortField, q.Toggle)
		}
		state = state.Toggle(f)
	}

	all, err := u.repo.SelectAll(ctx)
	if err != nil {
		u.logger.Error("failed to load service requests", zap.Error(err))
		return records.View{}, err
	}

	return records.Apply(all, records.Query{
		Search:   q.Search,
		Sort:     state,
		Page:     q.Page,
		PageSize: q.PageSize,
	}), nil
}

// Export renders every record matching the search, in list order and
// without pagination.
func (u *ServiceRequestUseCase) Export(ctx context.Context, q ExportQuery) (ExportFile, error) {
	format, err := export.ParseFormat(q.Format)
	if err != nil {
		return ExportFile{}, fmt.Errorf("%w: %q", ErrInvalidExportFormat, q.Format)
	}
	state, err := parseSortState(q.Sort, q.Order)
	if err != nil {
		return ExportFile{}, err
	}

	all, err := u.repo.SelectAll(ctx)
	if err != nil {
		u.logger.Error("failed to load service requests", zap.Error(err))
		return ExportFile{}, err
	}

	rows := records.Flatten(records.Select(all, q.Search, state))
	data, err := export.Render(format, rows)
	if err != nil {
		u.logger.Error("failed to render export", zap.String("format", string(format)), zap.Error(err))
		return ExportFile{}, err
	}
	metrics.Exports.WithLabelValues(string(format)).Inc()

	return ExportFile{
		FileName:    format.FileName(),
		ContentType: format.ContentType(),
		Rows:        len(rows),
		Data:        data,
	}, nil
}

func parseSortState(field, order string) (records.SortState, error) {
	if field == "" {
		if order == "" {
			return records.DefaultSortState(), nil
		}
		field = string(records.DefaultSortState().Field)
	}

	f, err := records.ParseSortField(field)
	if err != nil {
		return records.SortState{}, fmt.Errorf("%w: %q", ErrInvalidSortField, field)
	}
	o := records.Ascending
	if order != "" {
		if o, err = records.ParseSortOrder(order); err != nil {
			return records.SortState{}, fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
		}
	}
	return records.SortState{Field: f, Order: o}, nil
}
