package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextCorrelationValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Empty(t, DocumentIDFromContext(ctx))

	ctx = WithRequestID(ctx, "trace-1")
	ctx = WithDocumentID(ctx, "doc-1")
	assert.Equal(t, "trace-1", RequestIDFromContext(ctx))
	assert.Equal(t, "doc-1", DocumentIDFromContext(ctx))
}
