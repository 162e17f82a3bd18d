// Package events publishes expense lifecycle events so downstream
// consumers (exports, notifications) can react without being in the
// request path.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeExpenseCreated = "expense.created"
	TypeExpenseDeleted = "expense.deleted"
)

// ExpenseEvent is the message emitted for every committed expense
// mutation. It intentionally carries the full amount and category: a
// consumer must not need store access to act on it.
type ExpenseEvent struct {
	Type      string          `json:"type"`
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"ownerId"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher emits expense events. Publishing is best-effort: failures
// are logged by implementations and never fail the mutation that
// triggered the event.
type Publisher interface {
	Publish(ctx context.Context, event ExpenseEvent) error
	Close() error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ExpenseEvent) error { return nil }
func (NopPublisher) Close() error                                { return nil }
