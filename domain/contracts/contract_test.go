package contracts

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusClosed))
	assert.True(t, IsTerminal(StatusExpired))
	assert.False(t, IsTerminal(StatusDraft))
	assert.False(t, IsTerminal(StatusApproved))
}

func TestContractDynamoDBRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	original := Contract{
		PropertyID:             "usa/anytown/main-street/111",
		ContractID:             "25a238b6-3a8c-4ef2-9d0f-2599bbebbbb3",
		ContractStatus:         StatusDraft,
		ContractCreated:        now,
		ContractLastModifiedOn: now,
		SellerName:             "John Stiles",
		Address: &Address{
			Number:  111,
			Street:  "Main Street",
			City:    "Anytown",
			Country: "USA",
		},
	}

	item, err := attributevalue.MarshalMap(original)
	require.NoError(t, err)

	var restored Contract
	require.NoError(t, attributevalue.UnmarshalMap(item, &restored))

	assert.Equal(t, original.PropertyID, restored.PropertyID)
	assert.Equal(t, original.ContractID, restored.ContractID)
	assert.Equal(t, original.ContractStatus, restored.ContractStatus)
	require.NotNil(t, restored.Address)
	assert.Equal(t, *original.Address, *restored.Address)
	assert.True(t, original.ContractCreated.Equal(restored.ContractCreated))
}

func TestNewContractStatusChangedEvent(t *testing.T) {
	modified := time.Now()
	contract := &Contract{
		PropertyID:             "usa/anytown/main-street/111",
		ContractID:             "c-1",
		ContractStatus:         StatusApproved,
		ContractLastModifiedOn: modified,
	}

	event := NewContractStatusChangedEvent(contract)

	assert.Equal(t, "ContractStatusChanged", event.EventType())
	assert.Equal(t, []string{"usa/anytown/main-street/111"}, event.Resources())
	assert.Equal(t, modified, event.OccurredAt())
}
