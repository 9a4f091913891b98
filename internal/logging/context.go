package logging

import "context"

type logDataContextKey struct{}

// WithLogData returns a context carrying the LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the request's LogData, or nil when none is attached.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}
