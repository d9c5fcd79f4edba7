// Package stepfunctions resumes paused workflow executions via the
// task-token callback API.
package stepfunctions

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	apperrors "unicorn-properties/pkg/errors"
	"unicorn-properties/pkg/observability"
)

// Callback implements ports.WorkflowCallback on Step Functions.
type Callback struct {
	client *sfn.Client
	tracer *observability.Tracer
	logger *zap.Logger
}

var _ ports.WorkflowCallback = (*Callback)(nil)

// NewCallback creates a workflow callback
func NewCallback(client *sfn.Client, tracer *observability.Tracer, logger *zap.Logger) *Callback {
	return &Callback{
		client: client,
		tracer: tracer,
		logger: logger,
	}
}

// ResumeSuccess redeems the task token, delivering output as the task
// result. A token that has expired or was already redeemed surfaces as
// an error from the service.
func (c *Callback) ResumeSuccess(ctx context.Context, token string, output []byte) error {
	err := c.tracer.Capture(ctx, "StepFunctions.SendTaskSuccess", func(ctx context.Context) error {
		_, err := c.client.SendTaskSuccess(ctx, &sfn.SendTaskSuccessInput{
			TaskToken: aws.String(token),
			Output:    aws.String(string(output)),
		})
		return err
	})
	if err != nil {
		c.logger.Error("SendTaskSuccess failed", zap.Error(err))
		return apperrors.NewInternal("failed to resume workflow execution", err)
	}
	return nil
}
