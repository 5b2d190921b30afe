package repository

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"hometheater_quote/internal/infrastructure/config"
)

func TestNewServiceRequestRepository_UnknownDriver(t *testing.T) {
	_, _, err := NewServiceRequestRepository(context.Background(), config.StorageConfig{Driver: "sqlite"}, zap.NewNop())
	if !errors.Is(err, config.ErrUnknownStorageDriver) {
		t.Fatalf("expected ErrUnknownStorageDriver, got %v", err)
	}
}

func TestNewServiceRequestRepository_DynamoDB(t *testing.T) {
	repo, closeFn, err := NewServiceRequestRepository(context.Background(), config.StorageConfig{
		Driver: config.StorageDriverDynamoDB,
		DynamoDB: config.DynamoDBConfig{
			Region:          "us-east-1",
			Endpoint:        "http://localhost:8000",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
			Table:           "service_requests",
			CounterTable:    "counters",
		},
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.(*ServiceRequestDynamoRepository); !ok {
		t.Fatalf("expected dynamodb repository, got %T", repo)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
