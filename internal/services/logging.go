package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/requestctx"
)

// loggerFrom prefers the request-scoped logger and falls back to the service logger.
func loggerFrom(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if logger := requestctx.Logger(ctx); logger != requestctx.NoopLogger() {
		return logger
	}
	if fallback == nil {
		return requestctx.NoopLogger()
	}
	return fallback
}
