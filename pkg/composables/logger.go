package composables

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rentora/rentora/pkg/constants"
)

func WithLogger(ctx context.Context, logger *logrus.Logger) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseLogger returns the request-scoped logger, falling back to the standard
// logger so callers never receive nil.
func UseLogger(ctx context.Context) *logrus.Logger {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger.(*logrus.Logger)
}
