package session_test

import (
	"context"
	"testing"

	"github.com/financewise/backend/internal/budgetsync"
	"github.com/financewise/backend/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReusesSessions(t *testing.T) {
	mem := newMemStore()
	registry := session.NewRegistry(mem, budgetsync.New(mem), nil)
	owner := uuid.New()

	first, err := registry.For(context.Background(), owner)
	require.Nil(t, err)
	second, err := registry.For(context.Background(), owner)
	require.Nil(t, err)

	assert.Same(t, first, second)

	other, err := registry.For(context.Background(), uuid.New())
	require.Nil(t, err)
	assert.NotSame(t, first, other)
}

func TestRegistryDoesNotCacheFailedLoads(t *testing.T) {
	mem := newMemStore()
	registry := session.NewRegistry(mem, budgetsync.New(mem), nil)
	owner := uuid.New()

	mem.failExpenses = true
	_, err := registry.For(context.Background(), owner)
	var lErr session.LoadError
	require.ErrorAs(t, err, &lErr)

	// After the store recovers, the next call loads a fresh session
	mem.failExpenses = false
	s, err := registry.For(context.Background(), owner)
	require.Nil(t, err)
	assert.NotNil(t, s)
}
