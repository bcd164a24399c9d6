package contextutil

import (
	"context"
	"testing"

	"optitrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.True(t, GetPrincipal(ctx).IsAnonymous())

	p := domain.Principal{UserID: "u1", Email: "e@x.io", Role: domain.RoleEmployee, EmployeeID: "emp-1"}
	ctx = WithPrincipal(WithRequestID(ctx, "rid-1"), p)

	assert.Equal(t, p, GetPrincipal(ctx))
	assert.Equal(t, Metadata{RequestID: "rid-1", UserEmail: "e@x.io", Role: domain.RoleEmployee}, ExtractMetadata(ctx))
}

func TestGetLoggerFallbacks(t *testing.T) {
	def := zap.NewExample()
	assert.Same(t, def, GetLogger(context.Background(), def))
	assert.NotNil(t, GetLogger(context.Background(), nil))

	scoped := zap.NewExample().Named("req")
	assert.Same(t, scoped, GetLogger(WithLogger(context.Background(), scoped), def))
}
