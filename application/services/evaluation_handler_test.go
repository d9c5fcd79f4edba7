package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"unicorn-properties/domain/properties"
	"unicorn-properties/pkg/observability"
)

func newEvaluationHandler(repo *MockPropertyRepository) *EvaluationHandler {
	return NewEvaluationHandler(repo, observability.NewMetrics("test", nil), zap.NewNop())
}

func TestHandleEvaluationCompleted_Outcomes(t *testing.T) {
	tests := []struct {
		name             string
		evaluationResult string
		expectedStatus   string
	}{
		{"approved uppercase", "APPROVED", properties.StatusApproved},
		{"approved mixed case", "Approved", properties.StatusApproved},
		{"declined uppercase", "DECLINED", properties.StatusDeclined},
		{"declined lowercase", "declined", properties.StatusDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPropertyRepository)
			handler := newEvaluationHandler(repo)

			repo.On("Get", mock.Anything, "property#usa#anytown", "main-street#111").
				Return(&properties.PropertyRecord{
					PK:     "property#usa#anytown",
					SK:     "main-street#111",
					Status: properties.StatusPending,
				}, nil)
			repo.On("SetStatus", mock.Anything, "property#usa#anytown", "main-street#111",
				tt.expectedStatus, properties.StatusPending).Return(nil)

			err := handler.HandleEvaluationCompleted(context.Background(), &properties.PublicationEvaluationCompletedEvent{
				PropertyID:       "usa/anytown/main-street/111",
				EvaluationResult: tt.evaluationResult,
			})

			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestHandleEvaluationCompleted_UnknownResultIsDropped(t *testing.T) {
	repo := new(MockPropertyRepository)
	handler := newEvaluationHandler(repo)

	repo.On("Get", mock.Anything, mock.Anything, mock.Anything).
		Return(&properties.PropertyRecord{Status: properties.StatusPending}, nil)

	err := handler.HandleEvaluationCompleted(context.Background(), &properties.PublicationEvaluationCompletedEvent{
		PropertyID:       "usa/anytown/main-street/111",
		EvaluationResult: "MAYBE",
	})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "SetStatus")
}

func TestHandleEvaluationCompleted_MalformedPropertyID(t *testing.T) {
	repo := new(MockPropertyRepository)
	handler := newEvaluationHandler(repo)

	err := handler.HandleEvaluationCompleted(context.Background(), &properties.PublicationEvaluationCompletedEvent{
		PropertyID:       "not a property id",
		EvaluationResult: "APPROVED",
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Get")
}
