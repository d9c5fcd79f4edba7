package services

import (
	"encoding/json"
	"strings"

	"unicorn-properties/domain/properties"
)

// ImageModeration is the moderation verdict for a single listing image.
type ImageModeration struct {
	ModerationLabels []json.RawMessage `json:"ModerationLabels"`
}

// ContentSentiment is the sentiment verdict for the listing description.
type ContentSentiment struct {
	Sentiment string `json:"Sentiment"`
}

// ContentEvaluation aggregates the per-content verdicts produced by the
// evaluation pipeline for one property listing.
type ContentEvaluation struct {
	ImageModerations []ImageModeration `json:"ImageModerations"`
	ContentSentiment ContentSentiment  `json:"ContentSentiment"`
}

// EvaluateContentIntegrity reduces the verdicts to a single result.
// The listing passes only when no image carries a moderation label and
// the description sentiment is POSITIVE.
func EvaluateContentIntegrity(evaluation ContentEvaluation) string {
	for _, moderation := range evaluation.ImageModerations {
		if len(moderation.ModerationLabels) > 0 {
			return properties.ValidationFail
		}
	}
	if !strings.EqualFold(evaluation.ContentSentiment.Sentiment, "POSITIVE") {
		return properties.ValidationFail
	}
	return properties.ValidationPass
}
