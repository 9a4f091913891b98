package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// HumaMiddleware attaches a fresh LogData to each request context and emits
// one completion entry per request with the accumulated fields and timings.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		next(huma.WithValue(ctx, logDataContextKey{}, logData))

		endTimer()
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)
		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
