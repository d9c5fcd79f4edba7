package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	"unicorn-properties/domain/approvals"
	apperrors "unicorn-properties/pkg/errors"
	"unicorn-properties/pkg/observability"
)

// ContractStatusRepository stores the mirrored contract status items,
// keyed by PropertyId.
type ContractStatusRepository struct {
	client    *awsdynamodb.Client
	tableName string
	tracer    *observability.Tracer
	logger    *zap.Logger
}

var _ ports.ContractStatusRepository = (*ContractStatusRepository)(nil)

// NewContractStatusRepository creates a contract status repository
func NewContractStatusRepository(
	client *awsdynamodb.Client,
	tableName string,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *ContractStatusRepository {
	return &ContractStatusRepository{
		client:    client,
		tableName: tableName,
		tracer:    tracer,
		logger:    logger,
	}
}

// Get loads the status item for a property.
func (r *ContractStatusRepository) Get(ctx context.Context, propertyID string) (*approvals.ContractStatusItem, error) {
	var out *awsdynamodb.GetItemOutput
	err := r.tracer.Capture(ctx, "ContractStatusRepository.Get", func(ctx context.Context) error {
		var err error
		out, err = r.client.GetItem(ctx, &awsdynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"PropertyId": &types.AttributeValueMemberS{Value: propertyID},
			},
			ConsistentRead: aws.Bool(true),
		})
		return err
	})
	if err != nil {
		return nil, apperrors.NewInternal("failed to load contract status", err)
	}
	if len(out.Item) == 0 {
		return nil, apperrors.NewNotFound("no contract status found for property " + propertyID)
	}

	var item approvals.ContractStatusItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal contract status item")
	}
	return &item, nil
}

// Put upserts the status item.
func (r *ContractStatusRepository) Put(ctx context.Context, item *approvals.ContractStatusItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal contract status item")
	}

	err = r.tracer.Capture(ctx, "ContractStatusRepository.Put", func(ctx context.Context) error {
		_, err := r.client.PutItem(ctx, &awsdynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		return err
	})
	if err != nil {
		r.logger.Error("Failed to store contract status item",
			zap.String("propertyId", item.PropertyID),
			zap.Error(err),
		)
		return apperrors.NewInternal("failed to store contract status item", err)
	}
	return nil
}

// ClearWaitToken removes the wait token, guarded on the stored token
// still matching. The guard makes redeeming a token idempotent across
// replayed stream records.
func (r *ContractStatusRepository) ClearWaitToken(ctx context.Context, propertyID, token string) error {
	update := expression.Remove(expression.Name("SfnWaitApprovedTaskToken"))
	condition := expression.Name("SfnWaitApprovedTaskToken").Equal(expression.Value(token))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(condition).Build()
	if err != nil {
		return apperrors.Wrap(err, "failed to build update expression")
	}

	err = r.tracer.Capture(ctx, "ContractStatusRepository.ClearWaitToken", func(ctx context.Context) error {
		_, err := r.client.UpdateItem(ctx, &awsdynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"PropertyId": &types.AttributeValueMemberS{Value: propertyID},
			},
			UpdateExpression:          expr.Update(),
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		})
		return err
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.NewConflict("wait token already consumed for property " + propertyID)
		}
		return apperrors.NewInternal("failed to clear wait token", err)
	}
	return nil
}
