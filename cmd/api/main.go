// Combined REST API entrypoint. Behind API Gateway it serves the proxy
// integration through the chi adapter; locally it runs a plain HTTP
// server on the configured address.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"go.uber.org/zap"

	"unicorn-properties/infrastructure/di"
	"unicorn-properties/interfaces/http/rest"
)

var (
	container  *di.Container
	chiLambda  *chiadapter.ChiLambda
	httpServer *http.Server
)

func init() {
	var err error
	container, err = di.InitializeContainer(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}

	router := rest.NewRouter(
		container.ContractService,
		container.ApprovalRequester,
		container.SearchService,
		container.Logger,
	)
	mux := router.Setup()

	if container.Config.IsLambda {
		chiLambda = chiadapter.New(mux)
	} else {
		httpServer = &http.Server{
			Addr:    container.Config.ServerAddress,
			Handler: mux,
		}
	}
}

func proxyHandler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, request)
}

func main() {
	if container.Config.IsLambda {
		lambda.Start(proxyHandler)
		return
	}

	container.Logger.Info("Starting HTTP server",
		zap.String("address", container.Config.ServerAddress),
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		container.Logger.Fatal("HTTP server failed", zap.Error(err))
	}
}
