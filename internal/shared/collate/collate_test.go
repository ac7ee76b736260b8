package collate_test

import (
	"testing"

	"catalog-backend/internal/shared/collate"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, collate.Equal("Widget", "widget"))
	assert.True(t, collate.Equal("WIDGET", "widget"))
	assert.True(t, collate.Equal("café", "cafe"))
	assert.False(t, collate.Equal("widget", "widgets"))
	assert.False(t, collate.Equal("widget", "gadget"))
}
