package context

import (
	"context"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger falls back to the standard logger when ctx carries none.
func GetLogger(ctx context.Context) *logrus.Entry {
	logger, ok := ctx.Value(loggerKey{}).(*logrus.Entry)
	if !ok || logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}

	return logger
}
