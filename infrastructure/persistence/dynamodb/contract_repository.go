// Package dynamodb implements the repository ports on DynamoDB.
package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	"unicorn-properties/domain/contracts"
	apperrors "unicorn-properties/pkg/errors"
	"unicorn-properties/pkg/observability"
)

// ContractRepository stores contracts in the contracts table, keyed by
// PropertyId.
type ContractRepository struct {
	client    *awsdynamodb.Client
	tableName string
	tracer    *observability.Tracer
	logger    *zap.Logger
}

var _ ports.ContractRepository = (*ContractRepository)(nil)

// NewContractRepository creates a contract repository
func NewContractRepository(
	client *awsdynamodb.Client,
	tableName string,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *ContractRepository {
	return &ContractRepository{
		client:    client,
		tableName: tableName,
		tracer:    tracer,
		logger:    logger,
	}
}

// Create stores a new contract. The conditional expression admits the
// write only when no item exists for the property or the existing
// contract sits in a terminal status.
func (r *ContractRepository) Create(ctx context.Context, c *contracts.Contract) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal contract")
	}

	condition := expression.AttributeNotExists(expression.Name("PropertyId")).
		Or(expression.Name("ContractStatus").In(
			expression.Value(contracts.StatusCancelled),
			expression.Value(contracts.StatusClosed),
			expression.Value(contracts.StatusExpired),
		))

	expr, err := expression.NewBuilder().WithCondition(condition).Build()
	if err != nil {
		return apperrors.Wrap(err, "failed to build condition expression")
	}

	err = r.tracer.Capture(ctx, "ContractRepository.Create", func(ctx context.Context) error {
		_, err := r.client.PutItem(ctx, &awsdynamodb.PutItemInput{
			TableName:                 aws.String(r.tableName),
			Item:                      item,
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		})
		return err
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.NewConflict("an active contract already exists for property " + c.PropertyID)
		}
		errorCode := ""
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			errorCode = apiErr.ErrorCode()
		}
		r.logger.Error("Failed to store contract",
			zap.String("propertyId", c.PropertyID),
			zap.String("errorCode", errorCode),
			zap.Error(err),
		)
		return apperrors.NewInternal("failed to store contract", err)
	}
	return nil
}

// Get loads the contract for a property.
func (r *ContractRepository) Get(ctx context.Context, propertyID string) (*contracts.Contract, error) {
	var out *awsdynamodb.GetItemOutput
	err := r.tracer.Capture(ctx, "ContractRepository.Get", func(ctx context.Context) error {
		var err error
		out, err = r.client.GetItem(ctx, &awsdynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"PropertyId": &types.AttributeValueMemberS{Value: propertyID},
			},
		})
		return err
	})
	if err != nil {
		return nil, apperrors.NewInternal("failed to load contract", err)
	}
	if len(out.Item) == 0 {
		return nil, apperrors.NewNotFound("no contract found for property " + propertyID)
	}

	var contract contracts.Contract
	if err := attributevalue.UnmarshalMap(out.Item, &contract); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal contract")
	}
	return &contract, nil
}

// Save stores the contract unconditionally.
func (r *ContractRepository) Save(ctx context.Context, c *contracts.Contract) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal contract")
	}

	err = r.tracer.Capture(ctx, "ContractRepository.Save", func(ctx context.Context) error {
		_, err := r.client.PutItem(ctx, &awsdynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      item,
		})
		return err
	})
	if err != nil {
		r.logger.Error("Failed to save contract",
			zap.String("propertyId", c.PropertyID),
			zap.Error(err),
		)
		return apperrors.NewInternal("failed to save contract", err)
	}
	return nil
}
