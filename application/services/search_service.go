package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	"unicorn-properties/domain/properties"
	apperrors "unicorn-properties/pkg/errors"
)

// Resource templates the search surface dispatches on. They mirror the
// route shapes registered on the HTTP API.
const (
	ResourceSearchCity    = "/search/{country}/{city}"
	ResourceSearchStreet  = "/search/{country}/{city}/{street}"
	ResourcePropertyByKey = "/properties/{country}/{city}/{street}/{number}"
)

// SearchService serves read-only queries over approved property
// listings.
type SearchService struct {
	propertyRepo ports.PropertyRepository
	logger       *zap.Logger
}

// NewSearchService creates a search service
func NewSearchService(propertyRepo ports.PropertyRepository, logger *zap.Logger) *SearchService {
	return &SearchService{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Search resolves the resource template to a key condition and returns
// the approved listings it matches, projected to the public shape.
func (s *SearchService) Search(ctx context.Context, resource string, params map[string]string) ([]properties.PropertyDto, error) {
	var pk, skPrefix string

	switch strings.ToLower(resource) {
	case ResourceSearchCity:
		pk = properties.PartitionKey(params["country"], params["city"])
	case ResourceSearchStreet:
		pk = properties.PartitionKey(params["country"], params["city"])
		skPrefix = properties.StreetPrefix(params["street"])
	case ResourcePropertyByKey:
		pk = properties.PartitionKey(params["country"], params["city"])
		skPrefix = properties.SortKey(params["street"], params["number"])
	default:
		return nil, apperrors.NewInternal("cannot process search resource "+resource, nil)
	}

	records, err := s.propertyRepo.QueryApproved(ctx, pk, skPrefix)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Property search executed",
		zap.String("resource", resource),
		zap.Int("results", len(records)),
	)

	dtos := make([]properties.PropertyDto, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, properties.ToDto(record))
	}
	return dtos, nil
}
