package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/usecase/interfaces"
)

const serviceRequestsCounterName = "service_requests"

type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type serviceRequestItem struct {
	ID         int64   `dynamodbav:"id"`
	Name       string  `dynamodbav:"name"`
	Phone      string  `dynamodbav:"phone"`
	Email      *string `dynamodbav:"email,omitempty"`
	Selections *string `dynamodbav:"selections"`
	Notes      *string `dynamodbav:"notes,omitempty"`
	TotalPrice int64   `dynamodbav:"total_price"`
	CreatedAt  string  `dynamodbav:"created_at"`
}

// ServiceRequestDynamoRepository persists service requests in DynamoDB.
//
// Table requirements:
//   - requests table PK: id (number)
//   - counters table PK: name (string), holding a numeric "value"
//
// Ids come from an atomic ADD on the counter item so they stay sequential
// like the Postgres BIGSERIAL column.
type ServiceRequestDynamoRepository struct {
	ddb          dynamoAPI
	tableName    string
	counterTable string
	logger       *zap.Logger
	now          func() time.Time
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb dynamoAPI, tableName, counterTable string, logger *zap.Logger) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:          ddb,
		tableName:    tableName,
		counterTable: counterTable,
		logger:       logger,
		now:          time.Now,
	}
}

func (r *ServiceRequestDynamoRepository) Insert(ctx context.Context, s entities.QuoteSubmission) (int64, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return 0, err
	}

	selections, err := json.Marshal(s.SelectionList())
	if err != nil {
		return 0, fmt.Errorf("encode selections: %w", err)
	}
	it := serviceRequestItem{
		ID:         id,
		Name:       s.Name,
		Phone:      s.Phone,
		Email:      entities.OptionalString(s.Email),
		Selections: aws.String(string(selections)),
		Notes:      entities.OptionalString(s.Notes),
		TotalPrice: s.TotalPrice,
		CreatedAt:  r.now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return 0, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return 0, fmt.Errorf("put service request %d: %w", id, err)
	}
	return id, nil
}

func (r *ServiceRequestDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.counterTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: serviceRequestsCounterName},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("increment id counter: %w", err)
	}
	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("id counter returned no value")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

// SelectAll scans the whole table and orders it newest first.
func (r *ServiceRequestDynamoRepository) SelectAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	var out []entities.ServiceRequest
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan service requests: %w", err)
		}
		var items []serviceRequestItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, r.fromItem(it))
		}
	}

	slices.SortStableFunc(out, func(a, b entities.ServiceRequest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *ServiceRequestDynamoRepository) fromItem(it serviceRequestItem) entities.ServiceRequest {
	var selections sql.NullString
	if it.Selections != nil {
		selections = sql.NullString{String: *it.Selections, Valid: true}
	}
	return entities.ServiceRequest{
		ID:         it.ID,
		Name:       it.Name,
		Phone:      it.Phone,
		Email:      it.Email,
		Selections: decodeSelections(r.logger, it.ID, selections),
		Notes:      it.Notes,
		TotalPrice: it.TotalPrice,
		CreatedAt:  parseCreatedAt(r.logger, it.ID, it.CreatedAt),
	}
}
