package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"unicorn-properties/domain/properties"
)

func TestEvaluateContentIntegrity(t *testing.T) {
	label := json.RawMessage(`{"Name":"Weapons","Confidence":99.1}`)

	tests := []struct {
		name       string
		evaluation ContentEvaluation
		expected   string
	}{
		{
			name: "clean images and positive sentiment pass",
			evaluation: ContentEvaluation{
				ImageModerations: []ImageModeration{{}, {}},
				ContentSentiment: ContentSentiment{Sentiment: "POSITIVE"},
			},
			expected: properties.ValidationPass,
		},
		{
			name: "any moderation label fails",
			evaluation: ContentEvaluation{
				ImageModerations: []ImageModeration{{}, {ModerationLabels: []json.RawMessage{label}}},
				ContentSentiment: ContentSentiment{Sentiment: "POSITIVE"},
			},
			expected: properties.ValidationFail,
		},
		{
			name: "non-positive sentiment fails",
			evaluation: ContentEvaluation{
				ContentSentiment: ContentSentiment{Sentiment: "NEGATIVE"},
			},
			expected: properties.ValidationFail,
		},
		{
			name:       "missing sentiment fails",
			evaluation: ContentEvaluation{},
			expected:   properties.ValidationFail,
		},
		{
			name: "no images with positive sentiment passes",
			evaluation: ContentEvaluation{
				ContentSentiment: ContentSentiment{Sentiment: "POSITIVE"},
			},
			expected: properties.ValidationPass,
		},
		{
			name: "sentiment case is ignored",
			evaluation: ContentEvaluation{
				ContentSentiment: ContentSentiment{Sentiment: "Positive"},
			},
			expected: properties.ValidationPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EvaluateContentIntegrity(tt.evaluation))
		})
	}
}
