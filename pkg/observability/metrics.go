package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric names emitted by the saga handlers.
const (
	MetricNewContracts       = "NewContracts"
	MetricApprovalsRequested = "ApprovalsRequested"
	MetricPropertiesApproved = "PropertiesApproved"
)

// Metrics publishes custom application metrics to CloudWatch
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
}

// NewMetrics creates a new metrics instance. A nil client disables
// publication, which is what the tests use.
func NewMetrics(namespace string, client *cloudwatch.Client) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
	}
}

// AddCount records a count metric. Metric publication is best-effort:
// a failed put must never fail the business operation that emitted it.
func (m *Metrics) AddCount(ctx context.Context, name string, value float64) {
	if m.client == nil {
		return // Skip if no client configured
	}

	datum := types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(value),
		Unit:       types.StandardUnitCount,
		Timestamp:  aws.Time(time.Now()),
	}

	_, _ = m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: []types.MetricDatum{datum},
	})
}
