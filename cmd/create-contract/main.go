// Lambda entrypoint for contract creation over API Gateway.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"unicorn-properties/application/services"
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
	var req services.CreateContractRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return apigateway.Message(http.StatusBadRequest, "Unable to parse event input as JSON")
	}

	container.Tracer.AddAnnotation(ctx, "propertyId", req.PropertyID)

	contract, err := container.ContractService.CreateContract(ctx, &req)
	if err != nil {
		container.Tracer.RecordError(ctx, err)
		return apigateway.FromError(err)
	}
	return apigateway.JSON(http.StatusOK, contract)
}

func main() {
	lambda.Start(handler)
}
