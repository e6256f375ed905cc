package logging

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetSessionID(ctx))
	assert.Empty(t, GetRoute(ctx))

	ctx = WithSessionID(ctx, "sess-1")
	ctx = WithRoute(ctx, "/grader")

	assert.Equal(t, "sess-1", GetSessionID(ctx))
	assert.Equal(t, "/grader", GetRoute(ctx))

	// Later values shadow earlier ones.
	ctx = WithRoute(ctx, "/")
	assert.Equal(t, "/", GetRoute(ctx))
}
