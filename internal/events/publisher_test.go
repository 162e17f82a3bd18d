package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/financewise/backend/internal/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopPublisher(t *testing.T) {
	p := events.NopPublisher{}

	assert.Nil(t, p.Publish(context.Background(), events.ExpenseEvent{}))
	assert.Nil(t, p.Close())
}

func TestExpenseEventEncoding(t *testing.T) {
	event := events.ExpenseEvent{
		Type:      events.TypeExpenseCreated,
		ID:        uuid.MustParse("10d0db0a-4d07-4541-9c0a-aba9a1a7e385"),
		OwnerID:   uuid.MustParse("9a03899e-9c62-4c0a-8777-5c2d1071bb31"),
		Category:  "Food",
		Amount:    decimal.RequireFromString("271.50"),
		Timestamp: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(event)
	require.Nil(t, err)

	// The amount travels as a string so consumers do not lose precision
	assert.JSONEq(t, `{
		"type": "expense.created",
		"id": "10d0db0a-4d07-4541-9c0a-aba9a1a7e385",
		"ownerId": "9a03899e-9c62-4c0a-8777-5c2d1071bb31",
		"category": "Food",
		"amount": "271.5",
		"timestamp": "2026-08-29T12:00:00Z"
	}`, string(body))
}
