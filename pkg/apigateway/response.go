// Package apigateway contains helpers for building API Gateway proxy
// responses shared by the HTTP-fronted Lambda handlers.
package apigateway

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	apperrors "unicorn-properties/pkg/errors"
)

// JSON builds a proxy response with the given status code and a JSON body.
func JSON(statusCode int, body interface{}) (events.APIGatewayProxyResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"message":"failed to serialize response"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}, nil
}

// Message builds a proxy response with a `{"message": ...}` body.
func Message(statusCode int, message string) (events.APIGatewayProxyResponse, error) {
	return JSON(statusCode, map[string]string{"message": message})
}

// RequestError builds the error body shape used by the search surface.
func RequestError(statusCode int, details string) (events.APIGatewayProxyResponse, error) {
	return JSON(statusCode, map[string]string{
		"message":        "ErrorInRequest",
		"requestDetails": details,
	})
}

// StatusCode maps an application error to an HTTP status code.
func StatusCode(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError builds a proxy response for an application error.
func FromError(err error) (events.APIGatewayProxyResponse, error) {
	return Message(StatusCode(err), err.Error())
}
