package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hometheater_quote/internal/infrastructure/config"
	"hometheater_quote/internal/infrastructure/database"
	"hometheater_quote/internal/usecase/interfaces"
)

// NewServiceRequestRepository connects the configured storage driver and
// returns the repository with a function releasing its resources.
func NewServiceRequestRepository(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (interfaces.IServiceRequestRepository, func() error, error) {
	switch cfg.Driver {
	case config.StorageDriverPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("using postgres storage")
		return NewServiceRequestPostgresRepository(db, logger), db.Close, nil

	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using dynamodb storage",
			zap.String("table", cfg.DynamoDB.Table),
			zap.String("endpoint", cfg.DynamoDB.Endpoint),
		)
		return NewServiceRequestDynamoRepository(ddb, cfg.DynamoDB.Table, cfg.DynamoDB.CounterTable, logger), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.Driver)
	}
}
