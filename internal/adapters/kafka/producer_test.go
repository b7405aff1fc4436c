package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_KeyedByAccountNumber(t *testing.T) {
	event := domain.AccountEvent{
		AccountNumber:   "a8098c1a-f86e-11da-bd1a-00112444be1e",
		AccountName:     "My Savings",
		InstitutionName: "First National",
		AccountType:     domain.TypeSavings,
		Status:          domain.StatusOpening,
		Currency:        "USD",
		UserID:          "user-1",
		EventType:       domain.EventAccountCreated,
		Timestamp:       time.Now().UTC(),
	}

	msg, err := buildMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte(event.AccountNumber), msg.Key)
	assert.Equal(t, event.Timestamp, msg.Time)

	var decoded domain.AccountEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestBuildMessage_OmitsUserIDWhenEmpty(t *testing.T) {
	event := domain.AccountEvent{
		AccountNumber: "a8098c1a-f86e-11da-bd1a-00112444be1e",
		Status:        domain.StatusClosing,
		EventType:     domain.EventAccountClosed,
		Timestamp:     time.Now().UTC(),
	}

	msg, err := buildMessage(event)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &raw))
	assert.NotContains(t, raw, "userId")
	assert.Equal(t, string(domain.EventAccountClosed), raw["eventType"])
	assert.Equal(t, string(domain.StatusClosing), raw["accountStatus"])
}
