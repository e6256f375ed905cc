package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := NewHistory("/")
	assert.Equal(t, "/", h.Current())

	h.Push("/grader")
	h.Push("/grader")
	assert.Equal(t, 2, h.Len(), "repeat visit not recorded")

	h.Push("/notes")
	assert.Equal(t, "/notes", h.Current())

	path, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "/grader", path)

	path, ok = h.Back()
	assert.True(t, ok)
	assert.Equal(t, "/", path)

	path, ok = h.Back()
	assert.False(t, ok, "root is never popped")
	assert.Equal(t, "/", path)
	assert.Equal(t, 1, h.Len())
}
