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
	"unicorn-properties/domain/properties"
	apperrors "unicorn-properties/pkg/errors"
	"unicorn-properties/pkg/observability"
)

// PropertyRepository stores property listing records in the properties
// table under the PK/SK scheme from the properties domain package.
type PropertyRepository struct {
	client    *awsdynamodb.Client
	tableName string
	tracer    *observability.Tracer
	logger    *zap.Logger
}

var _ ports.PropertyRepository = (*PropertyRepository)(nil)

// NewPropertyRepository creates a property repository
func NewPropertyRepository(
	client *awsdynamodb.Client,
	tableName string,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *PropertyRepository {
	return &PropertyRepository{
		client:    client,
		tableName: tableName,
		tracer:    tracer,
		logger:    logger,
	}
}

// Query returns records under the partition key, optionally restricted
// to a sort-key prefix.
func (r *PropertyRepository) Query(ctx context.Context, pk, skPrefix string) ([]properties.PropertyRecord, error) {
	return r.query(ctx, pk, skPrefix, false)
}

// QueryApproved is Query filtered to approved listings.
func (r *PropertyRepository) QueryApproved(ctx context.Context, pk, skPrefix string) ([]properties.PropertyRecord, error) {
	return r.query(ctx, pk, skPrefix, true)
}

func (r *PropertyRepository) query(ctx context.Context, pk, skPrefix string, approvedOnly bool) ([]properties.PropertyRecord, error) {
	keyCondition := expression.Key("PK").Equal(expression.Value(pk))
	if skPrefix != "" {
		keyCondition = keyCondition.And(expression.Key("SK").BeginsWith(skPrefix))
	}

	builder := expression.NewBuilder().WithKeyCondition(keyCondition)
	if approvedOnly {
		builder = builder.WithFilter(
			expression.Name("Status").Equal(expression.Value(properties.StatusApproved)))
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build query expression")
	}

	var records []properties.PropertyRecord
	err = r.tracer.Capture(ctx, "PropertyRepository.Query", func(ctx context.Context) error {
		paginator := awsdynamodb.NewQueryPaginator(r.client, &awsdynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return err
			}
			var pageRecords []properties.PropertyRecord
			if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageRecords); err != nil {
				return err
			}
			records = append(records, pageRecords...)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Property query failed",
			zap.String("pk", pk),
			zap.String("skPrefix", skPrefix),
			zap.Error(err),
		)
		return nil, apperrors.NewInternal("failed to query properties", err)
	}
	return records, nil
}

// Get loads a single record by its full key.
func (r *PropertyRepository) Get(ctx context.Context, pk, sk string) (*properties.PropertyRecord, error) {
	var out *awsdynamodb.GetItemOutput
	err := r.tracer.Capture(ctx, "PropertyRepository.Get", func(ctx context.Context) error {
		var err error
		out, err = r.client.GetItem(ctx, &awsdynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"PK": &types.AttributeValueMemberS{Value: pk},
				"SK": &types.AttributeValueMemberS{Value: sk},
			},
		})
		return err
	})
	if err != nil {
		return nil, apperrors.NewInternal("failed to load property", err)
	}
	if len(out.Item) == 0 {
		return nil, apperrors.NewNotFound("no property found for key " + pk + "/" + sk)
	}

	var record properties.PropertyRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal property record")
	}
	return &record, nil
}

// SetStatus transitions a record's publication status. The write is
// guarded on the record existing and still holding prevStatus; an empty
// prevStatus matches records that never held a status attribute.
func (r *PropertyRepository) SetStatus(ctx context.Context, pk, sk, status, prevStatus string) error {
	update := expression.Set(expression.Name("Status"), expression.Value(status))

	condition := expression.AttributeExists(expression.Name("PK"))
	if prevStatus == "" {
		condition = condition.And(expression.AttributeNotExists(expression.Name("Status")))
	} else {
		condition = condition.And(expression.Name("Status").Equal(expression.Value(prevStatus)))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(condition).Build()
	if err != nil {
		return apperrors.Wrap(err, "failed to build update expression")
	}

	err = r.tracer.Capture(ctx, "PropertyRepository.SetStatus", func(ctx context.Context) error {
		_, err := r.client.UpdateItem(ctx, &awsdynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"PK": &types.AttributeValueMemberS{Value: pk},
				"SK": &types.AttributeValueMemberS{Value: sk},
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
			return apperrors.NewConflict("property status changed concurrently for key " + pk + "/" + sk)
		}
		return apperrors.NewInternal("failed to update property status", err)
	}
	return nil
}
