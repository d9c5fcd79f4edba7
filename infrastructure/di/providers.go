// Package di wires the application together with google/wire.
package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/google/wire"
	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	"unicorn-properties/application/services"
	"unicorn-properties/infrastructure/config"
	dynamodbrepo "unicorn-properties/infrastructure/persistence/dynamodb"
	"unicorn-properties/infrastructure/messaging/eventbridge"
	"unicorn-properties/infrastructure/workflow/stepfunctions"
	"unicorn-properties/pkg/observability"
)

// Container holds the wired application graph. Each entrypoint pulls
// the services it needs from here.
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Tracer  *observability.Tracer
	Metrics *observability.Metrics

	EventPublisher ports.EventPublisher

	ContractService   *services.ContractService
	StatusMirror      *services.StatusMirror
	WaitRegistrar     *services.WaitRegistrar
	ApprovalSyncer    *services.ApprovalSyncer
	ContractChecker   *services.ContractChecker
	ApprovalRequester *services.ApprovalRequester
	EvaluationHandler *services.EvaluationHandler
	SearchService     *services.SearchService
}

// SuperSet is the complete provider set for the application.
var SuperSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideSFNClient,
	ProvideCloudWatchClient,
	ProvideTracer,
	ProvideMetrics,
	ProvideContractRepository,
	ProvideContractStatusRepository,
	ProvidePropertyRepository,
	ProvideEventPublisher,
	ProvideWorkflowCallback,
	services.NewContractService,
	services.NewStatusMirror,
	services.NewWaitRegistrar,
	services.NewApprovalSyncer,
	services.NewContractChecker,
	services.NewApprovalRequester,
	services.NewEvaluationHandler,
	services.NewSearchService,
	wire.Struct(new(Container), "*"),
)

// ProvideConfig loads and validates configuration
func ProvideConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvideLogger creates the zap logger for the configured environment
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig loads the AWS SDK configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
}

// ProvideDynamoDBClient creates the DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates the EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideSFNClient creates the Step Functions client
func ProvideSFNClient(awsCfg aws.Config) *sfn.Client {
	return sfn.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates the CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *cloudwatch.Client {
	return cloudwatch.NewFromConfig(awsCfg)
}

// ProvideTracer creates the tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(cfg.EnableTracing)
}

// ProvideMetrics creates the metrics publisher
func ProvideMetrics(cfg *config.Config, client *cloudwatch.Client) *observability.Metrics {
	return observability.NewMetrics(cfg.ServiceNamespace, client)
}

// ProvideContractRepository creates the contracts table repository
func ProvideContractRepository(
	client *awsdynamodb.Client,
	cfg *config.Config,
	tracer *observability.Tracer,
	logger *zap.Logger,
) ports.ContractRepository {
	return dynamodbrepo.NewContractRepository(client, cfg.ContractsTable, tracer, logger)
}

// ProvideContractStatusRepository creates the contract status mirror repository
func ProvideContractStatusRepository(
	client *awsdynamodb.Client,
	cfg *config.Config,
	tracer *observability.Tracer,
	logger *zap.Logger,
) ports.ContractStatusRepository {
	return dynamodbrepo.NewContractStatusRepository(client, cfg.ContractStatusTable, tracer, logger)
}

// ProvidePropertyRepository creates the properties table repository
func ProvidePropertyRepository(
	client *awsdynamodb.Client,
	cfg *config.Config,
	tracer *observability.Tracer,
	logger *zap.Logger,
) ports.PropertyRepository {
	return dynamodbrepo.NewPropertyRepository(client, cfg.PropertiesTable, tracer, logger)
}

// ProvideEventPublisher creates the EventBridge publisher
func ProvideEventPublisher(
	client *awseventbridge.Client,
	cfg *config.Config,
	logger *zap.Logger,
) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, cfg.EventSource, logger)
}

// ProvideWorkflowCallback creates the Step Functions callback
func ProvideWorkflowCallback(
	client *sfn.Client,
	tracer *observability.Tracer,
	logger *zap.Logger,
) ports.WorkflowCallback {
	return stepfunctions.NewCallback(client, tracer, logger)
}
