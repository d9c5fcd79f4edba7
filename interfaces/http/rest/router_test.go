package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"unicorn-properties/application/services"
	"unicorn-properties/domain/contracts"
	"unicorn-properties/domain/events"
	"unicorn-properties/domain/properties"
	apperrors "unicorn-properties/pkg/errors"
	"unicorn-properties/pkg/observability"
)

// In-memory fakes for the repository and publisher ports.

type fakeContractRepo struct {
	byProperty map[string]*contracts.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{byProperty: map[string]*contracts.Contract{}}
}

func (f *fakeContractRepo) Create(_ context.Context, c *contracts.Contract) error {
	if existing, ok := f.byProperty[c.PropertyID]; ok && !contracts.IsTerminal(existing.ContractStatus) {
		return apperrors.NewConflict("an active contract already exists")
	}
	f.byProperty[c.PropertyID] = c
	return nil
}

func (f *fakeContractRepo) Get(_ context.Context, propertyID string) (*contracts.Contract, error) {
	c, ok := f.byProperty[propertyID]
	if !ok {
		return nil, apperrors.NewNotFound("no contract found")
	}
	copied := *c
	return &copied, nil
}

func (f *fakeContractRepo) Save(_ context.Context, c *contracts.Contract) error {
	f.byProperty[c.PropertyID] = c
	return nil
}

type fakePropertyRepo struct {
	records []properties.PropertyRecord
}

func (f *fakePropertyRepo) Query(_ context.Context, pk, skPrefix string) ([]properties.PropertyRecord, error) {
	return f.matching(pk, skPrefix, false), nil
}

func (f *fakePropertyRepo) QueryApproved(_ context.Context, pk, skPrefix string) ([]properties.PropertyRecord, error) {
	return f.matching(pk, skPrefix, true), nil
}

func (f *fakePropertyRepo) Get(_ context.Context, pk, sk string) (*properties.PropertyRecord, error) {
	for _, r := range f.records {
		if r.PK == pk && r.SK == sk {
			return &r, nil
		}
	}
	return nil, apperrors.NewNotFound("no property found")
}

func (f *fakePropertyRepo) SetStatus(_ context.Context, pk, sk, status, _ string) error {
	for i, r := range f.records {
		if r.PK == pk && r.SK == sk {
			f.records[i].Status = status
			return nil
		}
	}
	return apperrors.NewNotFound("no property found")
}

func (f *fakePropertyRepo) matching(pk, skPrefix string, approvedOnly bool) []properties.PropertyRecord {
	var out []properties.PropertyRecord
	for _, r := range f.records {
		if r.PK != pk || !strings.HasPrefix(r.SK, skPrefix) {
			continue
		}
		if approvedOnly && r.Status != properties.StatusApproved {
			continue
		}
		out = append(out, r)
	}
	return out
}

type fakePublisher struct {
	published []events.DomainEvent
}

func (f *fakePublisher) Publish(_ context.Context, event events.DomainEvent) error {
	f.published = append(f.published, event)
	return nil
}

func (f *fakePublisher) PublishBatch(_ context.Context, batch []events.DomainEvent) error {
	f.published = append(f.published, batch...)
	return nil
}

func newTestMux(propertyRepo *fakePropertyRepo) (http.Handler, *fakePublisher) {
	logger := zap.NewNop()
	metrics := observability.NewMetrics("test", nil)
	publisher := &fakePublisher{}

	contractService := services.NewContractService(newFakeContractRepo(), publisher, metrics, logger)
	requester := services.NewApprovalRequester(propertyRepo, publisher, metrics, logger)
	searchService := services.NewSearchService(propertyRepo, logger)

	return NewRouter(contractService, requester, searchService, logger).Setup(), publisher
}

func TestCreateContractRoute(t *testing.T) {
	mux, publisher := newTestMux(&fakePropertyRepo{})

	body := `{"property_id":"usa/anytown/main-street/111","seller_name":"John Stiles","address":{"number":111,"street":"Main Street","city":"Anytown"}}`
	req := httptest.NewRequest(http.MethodPost, "/contracts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var contract contracts.Contract
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contract))
	assert.Equal(t, contracts.StatusDraft, contract.ContractStatus)
	assert.NotEmpty(t, contract.ContractID)
	assert.Len(t, publisher.published, 1)
}

func TestCreateContractRoute_MalformedBody(t *testing.T) {
	mux, _ := newTestMux(&fakePropertyRepo{})

	req := httptest.NewRequest(http.MethodPost, "/contracts", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ErrorInRequest")
}

func TestUpdateContractRoute_MissingContract(t *testing.T) {
	mux, _ := newTestMux(&fakePropertyRepo{})

	req := httptest.NewRequest(http.MethodPut, "/contracts",
		strings.NewReader(`{"property_id":"usa/nowhere/main-street/1"}`))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchRoute_ReturnsOnlyApproved(t *testing.T) {
	propertyRepo := &fakePropertyRepo{records: []properties.PropertyRecord{
		{PK: "property#usa#anytown", SK: "main-street#111", City: "Anytown", Status: properties.StatusApproved},
		{PK: "property#usa#anytown", SK: "main-street#222", City: "Anytown", Status: properties.StatusPending},
	}}
	mux, _ := newTestMux(propertyRepo)

	req := httptest.NewRequest(http.MethodGet, "/search/USA/Anytown", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []properties.PropertyDto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dtos))
	assert.Len(t, dtos, 1)
	assert.Equal(t, properties.StatusApproved, dtos[0].Status)
}

func TestRequestApprovalRoute(t *testing.T) {
	propertyRepo := &fakePropertyRepo{records: []properties.PropertyRecord{
		{
			PK: "property#usa#anytown", SK: "main-street#111",
			Country: "USA", City: "Anytown", Street: "Main Street", PropertyNumber: "111",
			Status: "NEW",
		},
	}}
	mux, publisher := newTestMux(propertyRepo)

	req := httptest.NewRequest(http.MethodPost, "/request_approval",
		strings.NewReader(`{"property_id":"usa/anytown/main-street/111"}`))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Approval Requested")
	assert.Len(t, publisher.published, 1)
	assert.Equal(t, properties.StatusPending, propertyRepo.records[0].Status)
}
