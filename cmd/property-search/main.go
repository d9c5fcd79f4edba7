// Lambda entrypoint for the read-only property search over API Gateway.
package main

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"unicorn-properties/infrastructure/di"
	"unicorn-properties/pkg/apigateway"
)

var container *di.Container

func init() {
	var err error
	container, err = di.InitializeContainer(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}
}

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod != http.MethodGet {
		return apigateway.RequestError(http.StatusBadRequest, "Input Invalid")
	}

	params := make(map[string]string, len(request.PathParameters))
	for key, value := range request.PathParameters {
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		params[key] = value
	}

	container.Tracer.AddAnnotation(ctx, "resource", request.Resource)

	dtos, err := container.SearchService.Search(ctx, request.Resource, params)
	if err != nil {
		container.Tracer.RecordError(ctx, err)
		container.Logger.Error("Property search failed",
			zap.String("resource", request.Resource),
			zap.Error(err),
		)
		return apigateway.RequestError(apigateway.StatusCode(err), "Cannot Process Request")
	}
	return apigateway.JSON(http.StatusOK, dtos)
}

func main() {
	lambda.Start(handler)
}
